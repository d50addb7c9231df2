// Package task holds the ordered task collection and its selection cursor.
package task

// Status is the lifecycle marker of a task. It cycles
// Upcoming -> Active -> Completed -> Upcoming.
type Status int

const (
	Upcoming Status = iota
	Active
	Completed
)

func (s Status) String() string {
	switch s {
	case Upcoming:
		return "Upcoming"
	case Active:
		return "Active"
	case Completed:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Next returns the status that follows s in the cycle.
func (s Status) Next() Status {
	switch s {
	case Upcoming:
		return Active
	case Active:
		return Completed
	default:
		return Upcoming
	}
}

type Task struct {
	Title  string
	Detail string
	Status Status
}
