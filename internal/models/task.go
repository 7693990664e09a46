package models

import "math"

// Task represents a single tracked unit of work in the backing file
type Task struct {
	ID          int        `json:"id"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	CreatedAt   *Timestamp `json:"createdAt,omitempty"`
	UpdatedAt   *Timestamp `json:"updatedAt,omitempty"`
}

// GetID returns the task ID (used by quiet output mode)
func (t *Task) GetID() int {
	return t.ID
}

// NextID returns the id the next added task receives: one more than the
// largest id in the collection, or 1 for an empty collection.
// Ids freed by deletes are never handed out again while a larger id exists;
// deleting the largest id makes it available to the next add.
// ErrIDSpaceExhausted is returned when the largest id is already math.MaxInt.
func NextID(tasks []Task) (int, error) {
	maxID := FirstTaskID - 1
	for _, t := range tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	if maxID == math.MaxInt {
		return 0, ErrIDSpaceExhausted
	}
	return maxID + 1, nil
}

// IndexOf returns the position of the task with the given id, or -1
func IndexOf(tasks []Task, id int) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
