package vacation

import (
	"testing"
	"time"
)

func pendingRequest() Vacation {
	return Vacation{
		ID:         "vac-1",
		EmployeeID: "emp-1",
		StartDate:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
		Status:     StatusPending,
		Active:     true,
	}
}

func TestApprove(t *testing.T) {
	v := pendingRequest()
	v.RejectionReason = "stale reason"
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	if err := v.Approve("hr.lead", at); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Status != StatusApproved {
		t.Fatalf("expected APPROVED, got %s", v.Status)
	}
	if v.ApprovedBy != "hr.lead" {
		t.Fatalf("expected approver recorded, got %q", v.ApprovedBy)
	}
	if v.ApprovalDate == nil || !v.ApprovalDate.Equal(at) {
		t.Fatalf("expected approval date %v, got %v", at, v.ApprovalDate)
	}
	if v.RejectionReason != "" {
		t.Fatal("expected rejection reason cleared on approval")
	}
}

func TestApproveRequiresPending(t *testing.T) {
	v := pendingRequest()
	v.Status = StatusApproved
	if err := v.Approve("hr.lead", time.Now()); err != ErrNotPending {
		t.Fatalf("expected ErrNotPending, got %v", err)
	}

	v.Status = StatusCancelled
	if err := v.Approve("hr.lead", time.Now()); err != ErrNotPending {
		t.Fatalf("expected ErrNotPending, got %v", err)
	}
}

func TestReject(t *testing.T) {
	v := pendingRequest()
	at := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	v.Reject("hr.lead", "period fully booked", at)
	if v.Status != StatusRejected {
		t.Fatalf("expected REJECTED, got %s", v.Status)
	}
	if v.RejectionReason != "period fully booked" {
		t.Fatalf("expected reason recorded, got %q", v.RejectionReason)
	}
	if v.ApprovalDate == nil || !v.ApprovalDate.Equal(at) {
		t.Fatalf("expected review date %v, got %v", at, v.ApprovalDate)
	}
}

func TestCancel(t *testing.T) {
	v := pendingRequest()
	if err := v.Cancel(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Status != StatusCancelled {
		t.Fatalf("expected CANCELLED, got %s", v.Status)
	}
	if v.Active {
		t.Fatal("expected cancelled request to be inactive")
	}

	if err := v.Cancel(); err != ErrAlreadyCancelled {
		t.Fatalf("expected ErrAlreadyCancelled, got %v", err)
	}
}
