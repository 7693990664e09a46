package models

// ============================================================================
// STATUS CONSTANTS
// ============================================================================

// Status values understood by the tracker.
// StatusTodo and StatusPending are the two possible "open" defaults; which one
// a deployment uses is chosen by its Profile.
const (
	StatusTodo    Status = "todo"
	StatusPending Status = "pending"
	StatusDone    Status = "done"
)

// ============================================================================
// ID CONSTANTS
// ============================================================================

// FirstTaskID is the id assigned to the first task of an empty collection
const FirstTaskID = 1
