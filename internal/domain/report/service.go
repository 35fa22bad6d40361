package report

import "context"

// Service defines business logic for report generation and export.
type Service interface {
	EmployeeReport(ctx context.Context, filter Filter) (EmployeeReportResponse, error)

	ClientReport(ctx context.Context, filter Filter) (ClientReportResponse, error)

	ClientSummary(ctx context.Context, filter Filter) (ClientSummaryResponse, error)

	// DownloadEmployeePDF renders one PDF per employee, zipped when the
	// filter matches more than one employee.
	DownloadEmployeePDF(ctx context.Context, filter Filter) (Download, error)

	DownloadClientPDF(ctx context.Context, filter Filter) (Download, error)

	// DownloadExcel flattens the filtered rows into an xlsx workbook using
	// the column template identified by templateID.
	DownloadExcel(ctx context.Context, filter Filter, templateID *int64) (Download, error)

	// QueueMail enqueues a report-mail job: kind is "employee" or "client".
	QueueMail(ctx context.Context, filter Filter, kind string) error
}
