// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Manager lifecycle
	OpInitialize Op = "initialize queue engine"

	// Queue operations
	OpQueueAdd    Op = "add song to queue"
	OpQueueRemove Op = "remove song from queue"
	OpQueueSkip   Op = "skip queue position"
	OpQueueMove   Op = "move song in queue"
	OpQueueRotate Op = "rotate queue window"

	// Popularity index
	OpPriorityUpdate Op = "update song priority"

	// History
	OpUndo Op = "undo last operation"
	OpRedo Op = "redo undone operation"

	// Snapshot persistence (external adapter)
	OpSnapshotSave Op = "save queue snapshot"
	OpSnapshotLoad Op = "load queue snapshot"

	// Configuration
	OpConfigLoad Op = "load configuration"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
