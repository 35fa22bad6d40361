package http

import (
	"fmt"
	"net/http"

	"github.com/shiftops/workforce-backend-go/internal/domain/report"
	"github.com/shiftops/workforce-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Aggregated report trees
	EmployeeReport(w http.ResponseWriter, r *http.Request)
	ClientReport(w http.ResponseWriter, r *http.Request)
	ClientSummary(w http.ResponseWriter, r *http.Request)

	// Downloads
	DownloadEmployeePDF(w http.ResponseWriter, r *http.Request)
	DownloadClientPDF(w http.ResponseWriter, r *http.Request)
	DownloadExcel(w http.ResponseWriter, r *http.Request)

	// Mail
	QueueMail(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// parseReportFilter reads the shared report filter from query parameters.
func parseReportFilter(r *http.Request) report.Filter {
	return report.Filter{
		Year:         queryInt(r, "year"),
		Month:        queryString(r, "month"),
		EmployeeIDs:  queryInt64List(r, "employee_ids"),
		LocationID:   queryInt64(r, "location_id"),
		EventID:      queryInt64(r, "event_id"),
		TaskID:       queryInt64(r, "task_id"),
		ClientID:     queryInt64(r, "client_id"),
		Rate:         queryString(r, "rate"),
		RatesPerHour: queryFloatList(r, "rates_per_hour"),
		Page:         getIntQueryParam(r, "page", 1),
		PageSize:     getIntQueryParam(r, "page_size", 10),
	}
}

// writeDownload streams a rendered artifact as a file attachment.
func writeDownload(w http.ResponseWriter, d report.Download) {
	w.Header().Set("Content-Type", d.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", d.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(d.Content)))
	w.Write(d.Content)
}

// EmployeeReport handles GET /reports/employees
func (h *reportHandlerImpl) EmployeeReport(w http.ResponseWriter, r *http.Request) {
	filter := parseReportFilter(r)

	result, err := h.reportService.EmployeeReport(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, response.NewMeta(filter.Page, filter.PageSize, int64(result.TotalCount)))
}

// ClientReport handles GET /reports/clients
func (h *reportHandlerImpl) ClientReport(w http.ResponseWriter, r *http.Request) {
	filter := parseReportFilter(r)

	result, err := h.reportService.ClientReport(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, response.NewMeta(filter.Page, filter.PageSize, int64(result.TotalCount)))
}

// ClientSummary handles GET /reports/clients/summary
func (h *reportHandlerImpl) ClientSummary(w http.ResponseWriter, r *http.Request) {
	filter := parseReportFilter(r)

	result, err := h.reportService.ClientSummary(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, response.NewMeta(filter.Page, filter.PageSize, int64(result.TotalCount)))
}

// DownloadEmployeePDF handles GET /reports/employees/download
func (h *reportHandlerImpl) DownloadEmployeePDF(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.DownloadEmployeePDF(r.Context(), parseReportFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeDownload(w, result)
}

// DownloadClientPDF handles GET /reports/clients/download
func (h *reportHandlerImpl) DownloadClientPDF(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.DownloadClientPDF(r.Context(), parseReportFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeDownload(w, result)
}

// DownloadExcel handles GET /reports/excel
func (h *reportHandlerImpl) DownloadExcel(w http.ResponseWriter, r *http.Request) {
	templateID := queryInt64(r, "template_id")

	result, err := h.reportService.DownloadExcel(r.Context(), parseReportFilter(r), templateID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeDownload(w, result)
}

// QueueMail handles POST /reports/mail. The filter travels in the query
// string like the report endpoints; kind selects the report flavor.
func (h *reportHandlerImpl) QueueMail(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")

	if err := h.reportService.QueueMail(r.Context(), parseReportFilter(r), kind); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Report mail queued", nil)
}
