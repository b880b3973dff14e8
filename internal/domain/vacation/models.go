package vacation

import "time"

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

// Vacation is a formal leave request, usually created from an approved
// booking. DaysRequested is an inclusive calendar-day count, unlike booking
// quotas which consume business days.
type Vacation struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employeeId"`
	StartDate       time.Time  `json:"startDate"`
	EndDate         time.Time  `json:"endDate"`
	DaysRequested   int        `json:"daysRequested"`
	Status          string     `json:"status"`
	Active          bool       `json:"active"`
	ApprovedBy      string     `json:"approvedBy,omitempty"`
	ApprovalDate    *time.Time `json:"approvalDate,omitempty"`
	RequestNotes    string     `json:"requestNotes,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// Approve moves a pending request to APPROVED and clears any earlier
// rejection reason.
func (v *Vacation) Approve(approver string, at time.Time) error {
	if v.Status != StatusPending {
		return ErrNotPending
	}
	v.Status = StatusApproved
	v.ApprovedBy = approver
	v.ApprovalDate = &at
	v.RejectionReason = ""
	return nil
}

// Reject records the reviewer and the reason. Requests can be rejected from
// any state, matching the approval workflow's override semantics.
func (v *Vacation) Reject(approver, reason string, at time.Time) {
	v.Status = StatusRejected
	v.ApprovedBy = approver
	v.ApprovalDate = &at
	v.RejectionReason = reason
}

// Cancel withdraws the request and retires it from active queries.
func (v *Vacation) Cancel() error {
	if v.Status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	v.Status = StatusCancelled
	v.Active = false
	return nil
}
