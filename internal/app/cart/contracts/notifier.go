package contracts

// Severity tags a notification as a success or an error outcome.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is a transient, user-facing message describing the outcome
// of the last cart action.
type Notification struct {
	Message  string
	Severity Severity
}

// Notifier receives exactly one notification per engine operation,
// including a rejected checkout. Implementations must not block the caller;
// display lifecycle (appear, hold, fade, dispose) is entirely theirs.
type Notifier interface {
	Notify(n Notification)
}
