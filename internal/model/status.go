package model

// Status represents the lifecycle of a single tool invocation
type Status string

const (
	// StatusPending means the invocation was recorded but not started
	StatusPending Status = "Pending"

	// StatusRunning means the tool process is running
	StatusRunning Status = "Running"

	// StatusCompleted means the tool process ran to exit, whatever its exit code
	StatusCompleted Status = "Completed"

	// StatusError means the tool process could not be run
	StatusError Status = "Error"
)

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsActive returns true if the invocation is still in progress
func (s Status) IsActive() bool {
	return s == StatusRunning
}

// IsFinished returns true if the invocation completed or failed
func (s Status) IsFinished() bool {
	return s == StatusCompleted || s == StatusError
}
