package api

import (
	"net/http"
	"strconv"
	"time"

	"carrental-backend/internal/service"
)

type ReportHandler struct {
	reportSvc    service.ReportService
	dashboardSvc service.DashboardService
}

func NewReportHandler(reportSvc service.ReportService, dashboardSvc service.DashboardService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc, dashboardSvc: dashboardSvc}
}

// period reads year and month query params, defaulting to the current month.
func period(r *http.Request) (int, int) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if y := r.URL.Query().Get("year"); y != "" {
		if v, err := strconv.Atoi(y); err == nil {
			year = v
		}
	}
	if m := r.URL.Query().Get("month"); m != "" {
		if v, err := strconv.Atoi(m); err == nil {
			month = v
		}
	}
	return year, month
}

func (h *ReportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	year, month := period(r)
	report, err := h.reportSvc.MonthlyRevenueReport(r.Context(), year, month)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) CarUtilization(w http.ResponseWriter, r *http.Request) {
	year, month := period(r)
	report, err := h.reportSvc.CarUtilizationReport(r.Context(), year, month)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) CustomerActivity(w http.ResponseWriter, r *http.Request) {
	year, month := period(r)
	report, err := h.reportSvc.CustomerActivityReport(r.Context(), year, month)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) DashboardSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardSvc.Summary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *ReportHandler) RecentRentals(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	rentals, err := h.dashboardSvc.RecentRentals(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *ReportHandler) RecentReturns(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	returns, err := h.dashboardSvc.RecentReturns(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, returns)
}
