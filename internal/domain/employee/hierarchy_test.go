package employee

import "testing"

func mapLookup(parents map[string]string) ManagerLookup {
	return func(id string) (string, error) {
		return parents[id], nil
	}
}

func TestValidateManagerAssignmentSelf(t *testing.T) {
	err := ValidateManagerAssignment("emp-1", "emp-1", mapLookup(nil))
	if err != ErrSelfManager {
		t.Fatalf("expected ErrSelfManager, got %v", err)
	}
}

func TestValidateManagerAssignmentRemoval(t *testing.T) {
	// Removing the manager never needs a walk.
	err := ValidateManagerAssignment("emp-1", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateManagerAssignmentDirectCycle(t *testing.T) {
	// A already manages B; making A report to B closes a loop.
	parents := map[string]string{"b": "a"}
	err := ValidateManagerAssignment("a", "b", mapLookup(parents))
	if err != ErrManagerCycle {
		t.Fatalf("expected ErrManagerCycle, got %v", err)
	}
}

func TestValidateManagerAssignmentDeepCycle(t *testing.T) {
	// a manages b manages c; c must not become a's manager.
	parents := map[string]string{"b": "a", "c": "b"}
	err := ValidateManagerAssignment("a", "c", mapLookup(parents))
	if err != ErrManagerCycle {
		t.Fatalf("expected ErrManagerCycle, got %v", err)
	}
}

func TestValidateManagerAssignmentValidChain(t *testing.T) {
	parents := map[string]string{"b": "a", "c": "b"}
	if err := ValidateManagerAssignment("d", "c", mapLookup(parents)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateManagerAssignmentTerminatesOnCorruptData(t *testing.T) {
	// The stored relation already contains a cycle that does not involve the
	// employee being assigned; the walk must still terminate.
	parents := map[string]string{"c": "d", "d": "c"}
	if err := ValidateManagerAssignment("e", "c", mapLookup(parents)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCanDelete(t *testing.T) {
	if CanDelete(1) {
		t.Fatal("expected deletion blocked with an active subordinate")
	}
	if !CanDelete(0) {
		t.Fatal("expected deletion allowed with no active subordinates")
	}
}
