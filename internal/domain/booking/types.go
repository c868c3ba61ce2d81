package booking

type Status string

const (
	StatusPending     Status = "pending"
	StatusPreApproved Status = "pre_approved"
	StatusConfirmed   Status = "confirmed"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPreApproved, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition can leave the status.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// IsCancellable reports whether a booking in this status may still be
// cancelled. Once funds are escrowed at Confirmed, cancellation is closed.
func (s Status) IsCancellable() bool {
	return s == StatusPending || s == StatusPreApproved
}
