package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/comdominio/dashboard/internal/domain"
	"github.com/comdominio/dashboard/internal/report"
)

// RenderedReport is a generated monthly report ready for download.
type RenderedReport struct {
	FileName string
	Content  []byte
	Report   domain.MonthlyReport
}

// ReportService builds monthly maintenance reports.
type ReportService struct {
	api ReportBackend
	log *slog.Logger
	loc *time.Location
	now func() time.Time
}

// ReportOption configures a ReportService.
type ReportOption func(*ReportService)

// WithLocation sets the time zone in which completion dates are bucketed
// into months. Defaults to UTC.
func WithLocation(loc *time.Location) ReportOption {
	return func(s *ReportService) { s.loc = loc }
}

// WithClock replaces time.Now as the source of the generation date.
func WithClock(now func() time.Time) ReportOption {
	return func(s *ReportService) { s.now = now }
}

// NewReportService constructs a ReportService.
func NewReportService(api ReportBackend, log *slog.Logger, opts ...ReportOption) *ReportService {
	s := &ReportService{api: api, log: log, loc: time.UTC, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Monthly renders the maintenances of a condominium that were completed in
// the requested month. A maintenance counts as completed in the month its
// last update falls in. Generating a report is recorded in the activity
// feed; a failure to record it does not fail the report.
func (s *ReportService) Monthly(ctx context.Context, sess domain.Session, req domain.ReportRequest) (RenderedReport, error) {
	if err := req.Validate(); err != nil {
		return RenderedReport{}, fmt.Errorf("service.ReportService.Monthly: %w", err)
	}

	condo, err := s.api.GetCondominium(ctx, sess, req.CondominiumID)
	if err != nil {
		return RenderedReport{}, fmt.Errorf("service.ReportService.Monthly: %w", err)
	}
	done, err := s.api.ListMaintenances(ctx, sess, req.CondominiumID, domain.StatusDone)
	if err != nil {
		return RenderedReport{}, fmt.Errorf("service.ReportService.Monthly: %w", err)
	}

	completed := []domain.Maintenance{}
	for _, m := range done {
		// Dates are shown in the same zone that picks the month.
		m.UpdatedAt = m.UpdatedAt.In(s.loc)
		if m.Status == domain.StatusDone && req.Contains(m.UpdatedAt) {
			completed = append(completed, m)
		}
	}

	month := time.Month(req.Month)
	r := domain.MonthlyReport{
		Condominium:  condo.Name,
		Month:        month,
		Year:         req.Year,
		GeneratedAt:  s.now().In(s.loc),
		Maintenances: completed,
	}

	var buf bytes.Buffer
	if err := report.RenderMonthly(&buf, r); err != nil {
		return RenderedReport{}, fmt.Errorf("service.ReportService.Monthly: %w", err)
	}

	err = s.api.LogActivity(ctx, sess, domain.NewActivity{
		Type:        domain.ActivityReportGenerated,
		Description: "Relatório mensal gerado para",
		EntityName:  condo.Name + " - " + domain.MonthName(month) + "/" + strconv.Itoa(req.Year),
	})
	if err != nil {
		s.log.WarnContext(ctx, "failed to log report activity",
			"condominium_id", req.CondominiumID,
			"error", err,
		)
	}

	return RenderedReport{
		FileName: report.FileName(condo.Name, month, req.Year),
		Content:  buf.Bytes(),
		Report:   r,
	}, nil
}
