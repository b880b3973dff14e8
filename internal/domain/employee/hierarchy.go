package employee

// ManagerLookup resolves the manager of an employee. An empty result means
// the employee has no manager.
type ManagerLookup func(employeeID string) (string, error)

// ValidateManagerAssignment checks that giving employeeID the manager
// managerID keeps the reporting relation an acyclic forest. Removing the
// manager (empty managerID) is always valid. The walk keeps a visited set so
// it terminates even when the stored relation already contains a cycle.
func ValidateManagerAssignment(employeeID, managerID string, lookup ManagerLookup) error {
	if managerID == "" {
		return nil
	}
	if managerID == employeeID {
		return ErrSelfManager
	}

	visited := make(map[string]struct{})
	current := managerID
	for current != "" {
		if current == employeeID {
			return ErrManagerCycle
		}
		if _, seen := visited[current]; seen {
			break
		}
		visited[current] = struct{}{}

		parent, err := lookup(current)
		if err != nil {
			return err
		}
		current = parent
	}
	return nil
}

// CanDelete reports whether an employee with the given number of active
// direct subordinates may be deactivated.
func CanDelete(activeSubordinates int64) bool {
	return activeSubordinates == 0
}
