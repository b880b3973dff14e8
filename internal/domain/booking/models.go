package booking

import "time"

const (
	StatusReserved  = "RESERVED"
	StatusCancelled = "CANCELLED"
)

// Booking blocks a period of an employee's agenda ahead of the formal
// vacation request. Overlapping active reservations for the same employee are
// rejected.
type Booking struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	VacationID   string    `json:"vacationId,omitempty"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	DaysReserved int       `json:"daysReserved"`
	Status       string    `json:"status"`
	Active       bool      `json:"active"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
