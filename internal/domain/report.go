package domain

import "time"

// ReportRequest selects the condominium and month of a monthly report.
type ReportRequest struct {
	CondominiumID int64 `json:"condominiumId" validate:"gt=0"`
	Month         int   `json:"month" validate:"min=1,max=12"`
	Year          int   `json:"year" validate:"min=2000,max=9999"`
}

// Validate checks the id and the month/year range.
func (r ReportRequest) Validate() error {
	return validateStruct(r)
}

// Contains reports whether t falls in the requested month, in t's own
// location.
func (r ReportRequest) Contains(t time.Time) bool {
	return t.Year() == r.Year && int(t.Month()) == r.Month
}

// MonthlyReport is everything needed to render a monthly report.
type MonthlyReport struct {
	Condominium  string
	Month        time.Month
	Year         int
	GeneratedAt  time.Time
	Maintenances []Maintenance
}

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthName returns the Portuguese name of m.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}
