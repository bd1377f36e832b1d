package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/luvitbd/attendance-app-go/internal/domain/attendance"
	"github.com/luvitbd/attendance-app-go/internal/domain/report"
	"github.com/luvitbd/attendance-app-go/internal/domain/user"
	"github.com/luvitbd/attendance-app-go/internal/handler/http/response"
	"github.com/luvitbd/attendance-app-go/internal/pkg/validator"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	ExportMonthly(w http.ResponseWriter, r *http.Request)
	Daily(w http.ResponseWriter, r *http.Request)
	UserMonthly(w http.ResponseWriter, r *http.Request)
	PendingLeaveCount(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Monthly implements ReportHandler.
func (h *reportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	req, ok := parseMonthlyRequest(w, r)
	if !ok {
		return
	}

	result, err := h.reportService.MonthlyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportMonthly implements ReportHandler. It streams the workbook as a
// file download instead of the JSON envelope.
func (h *reportHandlerImpl) ExportMonthly(w http.ResponseWriter, r *http.Request) {
	req, ok := parseMonthlyRequest(w, r)
	if !ok {
		return
	}

	blob, filename, err := h.reportService.ExportMonthlyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(blob)
}

// Daily implements ReportHandler.
func (h *reportHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().In(attendance.Location()).Format("2006-01-02")
	}

	result, err := h.reportService.DailyRoster(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UserMonthly implements ReportHandler.
func (h *reportHandlerImpl) UserMonthly(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	month, year, ok := parseMonthParam(w, r)
	if !ok {
		return
	}

	result, err := h.reportService.UserMonthlyReport(r.Context(), userID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PendingLeaveCount implements ReportHandler.
func (h *reportHandlerImpl) PendingLeaveCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.reportService.PendingLeaveRequests(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]int{"pending_count": count})
}

// parseMonthParam reads the optional ?month=YYYY-MM query, defaulting
// to the current month in the canonical timezone.
func parseMonthParam(w http.ResponseWriter, r *http.Request) (month, year int, ok bool) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		now := time.Now().In(attendance.Location())
		return int(now.Month()), now.Year(), true
	}

	parsed, valid := validator.IsValidMonth(raw)
	if !valid {
		response.BadRequest(w, "Query parameter 'month' must be formatted as YYYY-MM", nil)
		return 0, 0, false
	}
	return int(parsed.Month()), parsed.Year(), true
}

func parseMonthlyRequest(w http.ResponseWriter, r *http.Request) (report.MonthlyReportRequest, bool) {
	var req report.MonthlyReportRequest

	month, year, ok := parseMonthParam(w, r)
	if !ok {
		return req, false
	}
	req.Month = month
	req.Year = year

	if role := r.URL.Query().Get("role"); role != "" {
		typed := user.Role(role)
		req.Filter.Role = &typed
	}
	if group := r.URL.Query().Get("group"); group != "" {
		req.Filter.Group = &group
	}
	if zone := r.URL.Query().Get("zone"); zone != "" {
		req.Filter.Zone = &zone
	}

	return req, true
}
