package handler

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/comdominio/dashboard/internal/domain"
)

// GetMonthlyReport handles GET /api/reports/monthly?condominiumId=&month=&year=.
// The PDF is sent as an attachment named after the condominium and period.
func (s *Server) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	var req domain.ReportRequest
	if !queryParam(w, r, "condominiumId", true, &req.CondominiumID) ||
		!queryParam(w, r, "month", true, &req.Month) ||
		!queryParam(w, r, "year", true, &req.Year) {
		return
	}

	rep, err := s.reports.Monthly(r.Context(), sessionFrom(r), req)
	if err != nil {
		s.writeError(w, r, err, "condominium not found")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": rep.FileName}))
	w.Header().Set("Content-Length", strconv.Itoa(len(rep.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(rep.Content)
}
