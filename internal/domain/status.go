package domain

type EventStatus string

const (
	StatusActive    EventStatus = "ACTIVE"
	StatusCancelled EventStatus = "CANCELLED"
)

func (s EventStatus) Valid() bool {
	return s == StatusActive || s == StatusCancelled
}
