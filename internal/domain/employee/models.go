package employee

import "time"

const (
	EmploymentPermanent      = "PERMANENT"
	EmploymentFixedTerm      = "FIXED_TERM"
	EmploymentTemporary      = "TEMPORARY"
	EmploymentPartTime       = "PART_TIME"
	EmploymentFullTime       = "FULL_TIME"
	EmploymentZeroHours      = "ZERO_HOURS"
	EmploymentFreelance      = "FREELANCE"
	EmploymentInternship     = "INTERNSHIP"
	EmploymentApprenticeship = "APPRENTICESHIP"
)

const (
	RoleEmployee = "EMPLOYEE"
	RoleManager  = "MANAGER"
	RoleHR       = "HR"
	RoleAdmin    = "ADMIN"
)

var EmploymentTypes = []string{
	EmploymentPermanent,
	EmploymentFixedTerm,
	EmploymentTemporary,
	EmploymentPartTime,
	EmploymentFullTime,
	EmploymentZeroHours,
	EmploymentFreelance,
	EmploymentInternship,
	EmploymentApprenticeship,
}

var Roles = []string{RoleEmployee, RoleManager, RoleHR, RoleAdmin}

type Employee struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Surname         string     `json:"surname"`
	FiscalNumber    string     `json:"fiscalNumber,omitempty"`
	FiscalCountry   string     `json:"fiscalNumberCountry,omitempty"`
	SocialNumber    string     `json:"socialNumber,omitempty"`
	DateOfBirth     *time.Time `json:"dateOfBirth,omitempty"`
	EmploymentType  string     `json:"employmentType"`
	Role            string     `json:"role"`
	HireDate        time.Time  `json:"hireDate"`
	TerminationDate *time.Time `json:"terminationDate,omitempty"`
	SalaryBase      *float64   `json:"salaryBase,omitempty"`
	ManagerID       string     `json:"managerId,omitempty"`
	Active          bool       `json:"active"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
