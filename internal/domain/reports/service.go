package reports

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"lbc/internal/domain/employee"
	"lbc/internal/domain/vacation"
)

type Service struct {
	Employees *employee.Service
	Vacations *vacation.Service
	Dir       string
}

func NewService(employees *employee.Service, vacations *vacation.Service, dir string) *Service {
	return &Service{Employees: employees, Vacations: vacations, Dir: dir}
}

// VacationSummaryPDF renders the employee's vacation requests for one year
// and returns the path of the generated file.
func (s *Service) VacationSummaryPDF(ctx context.Context, employeeID string, year int) (string, error) {
	emp, err := s.Employees.Get(ctx, employeeID)
	if err != nil {
		return "", err
	}

	vacations, err := s.Vacations.ListByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(s.Dir, fmt.Sprintf("vacations-%s-%d.pdf", employeeID, year))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Vacation Summary")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s %s", emp.Name, emp.Surname))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Year: %d", year))
	pdf.Ln(10)

	totalDays := 0
	approvedDays := 0
	for _, v := range vacations {
		pdf.Cell(0, 8, fmt.Sprintf("%s to %s  %d days  %s",
			v.StartDate.Format("2006-01-02"), v.EndDate.Format("2006-01-02"), v.DaysRequested, v.Status))
		pdf.Ln(7)
		totalDays += v.DaysRequested
		if v.Status == vacation.StatusApproved {
			approvedDays += v.DaysRequested
		}
	}
	if len(vacations) == 0 {
		pdf.Cell(0, 8, "No vacation requests for this year.")
		pdf.Ln(7)
	}

	pdf.Ln(5)
	pdf.Cell(0, 8, fmt.Sprintf("Requested days: %d", totalDays))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Approved days: %d", approvedDays))

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
