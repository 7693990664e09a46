package models

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a task
type Status string

// String implements fmt.Stringer
func (s Status) String() string {
	return string(s)
}

// IsDone reports whether the status is the completed state
func (s Status) IsDone() bool {
	return s == StatusDone
}

// ParseOpenStatus validates a value usable as a profile's default status
func ParseOpenStatus(value string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(value))) {
	case StatusTodo:
		return StatusTodo, nil
	case StatusPending:
		return StatusPending, nil
	default:
		return "", fmt.Errorf("%w: %q (must be: %s, %s)", ErrInvalidDefaultStatus, value, StatusTodo, StatusPending)
	}
}

// Profile captures the per-deployment behavior of the tracker.
// Both observed variants of the tool are expressed as a Profile rather than
// separate code paths.
type Profile struct {
	// DefaultStatus is assigned to new tasks (todo or pending)
	DefaultStatus Status
	// RecordTimestamps controls whether createdAt/updatedAt are written
	RecordTimestamps bool
	// OneWayMark restricts marking to the done status only
	OneWayMark bool
}

// DefaultProfile returns the profile used when nothing is configured
func DefaultProfile() Profile {
	return Profile{
		DefaultStatus:    StatusTodo,
		RecordTimestamps: true,
	}
}

// AllowedStatuses returns the statuses MarkTask accepts under this profile
func (p Profile) AllowedStatuses() []Status {
	if p.OneWayMark {
		return []Status{StatusDone}
	}
	return []Status{p.openStatus(), StatusDone}
}

// Allows reports whether status is a valid mark target under this profile
func (p Profile) Allows(status Status) bool {
	for _, s := range p.AllowedStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

func (p Profile) openStatus() Status {
	if p.DefaultStatus == "" {
		return StatusTodo
	}
	return p.DefaultStatus
}

// NewTaskStatus returns the status assigned to freshly added tasks
func (p Profile) NewTaskStatus() Status {
	return p.openStatus()
}

// JoinStatuses renders statuses as a comma separated list for messages
func JoinStatuses(statuses []Status) string {
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
