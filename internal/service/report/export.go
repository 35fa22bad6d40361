package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shiftops/workforce-backend-go/internal/domain/master"
	"github.com/shiftops/workforce-backend-go/internal/domain/report"
	"github.com/shiftops/workforce-backend-go/internal/pkg/export"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeZip  = "application/zip"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// shiftTableHeaders is the detail table layout shared by the PDF exports.
var shiftTableHeaders = []string{"Date", "Location", "Event", "Task", "Start", "End", "Hours", "Rate/h", "Cost"}

var shiftTableWidths = []float64{24, 44, 40, 40, 16, 16, 18, 20, 24}

// excelColumns maps template column names onto row value extractors. Keys
// match the column names stored with report templates.
var excelColumns = map[string]func(report.ShiftRow) interface{}{
	"date":          func(r report.ShiftRow) interface{} { return r.Date },
	"username":      func(r report.ShiftRow) interface{} { return r.Username },
	"location":      func(r report.ShiftRow) interface{} { return r.Location },
	"event":         func(r report.ShiftRow) interface{} { return r.Event },
	"task":          func(r report.ShiftRow) interface{} { return r.Task },
	"client":        func(r report.ShiftRow) interface{} { return r.Client },
	"start_time":    func(r report.ShiftRow) interface{} { return r.StartTime },
	"end_time":      func(r report.ShiftRow) interface{} { return r.EndTime },
	"hours":         func(r report.ShiftRow) interface{} { return r.Hours },
	"rate_per_hour": func(r report.ShiftRow) interface{} { return r.RatePerHour },
	"rate":          func(r report.ShiftRow) interface{} { return r.Rate },
	"cost":          func(r report.ShiftRow) interface{} { return r.Cost },
	"year":          func(r report.ShiftRow) interface{} { return r.Year },
	"month":         func(r report.ShiftRow) interface{} { return r.Month },
	"iso_week":      func(r report.ShiftRow) interface{} { return r.ISOWeek },
	"invoiced":      func(r report.ShiftRow) interface{} { return r.Invoiced },
}

// defaultExcelColumns is the column order used when no template is given.
var defaultExcelColumns = []string{
	"date", "username", "location", "event", "task", "client",
	"start_time", "end_time", "hours", "rate_per_hour", "rate", "cost",
}

func encodeFilter(filter report.Filter) ([]byte, error) {
	payload, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report filter: %w", err)
	}
	return payload, nil
}

// DecodeFilter restores a filter stored with a queued report mail.
func DecodeFilter(payload []byte) (report.Filter, error) {
	var filter report.Filter
	if err := json.Unmarshal(payload, &filter); err != nil {
		return report.Filter{}, fmt.Errorf("failed to decode report filter: %w", err)
	}
	return filter, nil
}

func (s *ReportServiceImpl) branding(ctx context.Context) (title, footer string) {
	title = "Shift Report"
	appSettings, err := s.settings.Get(ctx)
	if err != nil {
		return title, ""
	}
	if appSettings.AppTitle != "" {
		title = appSettings.AppTitle + " Shift Report"
	}
	if appSettings.PDFFooter != nil {
		footer = *appSettings.PDFFooter
	}
	return title, footer
}

// DownloadEmployeePDF implements report.Service. One PDF per employee,
// zipped when the filter matches more than one.
func (s *ReportServiceImpl) DownloadEmployeePDF(ctx context.Context, filter report.Filter) (report.Download, error) {
	rows, err := s.repo.Rows(ctx, filter)
	if err != nil {
		return report.Download{}, err
	}
	if len(rows) == 0 {
		return report.Download{}, report.ErrNoRows
	}

	reports, _ := buildEmployeeReports(rows)
	title, footer := s.branding(ctx)
	stamp := time.Now().Format("20060102")

	files := make(map[string][]byte, len(reports))
	for _, employee := range reports {
		content, err := renderEmployeePDF(title, footer, employee)
		if err != nil {
			return report.Download{}, err
		}
		files[fmt.Sprintf("%s-%s.pdf", employee.Username, stamp)] = content
	}

	if len(reports) == 1 {
		name := fmt.Sprintf("%s-%s.pdf", reports[0].Username, stamp)
		return report.Download{
			Filename:    name,
			ContentType: contentTypePDF,
			Content:     files[name],
		}, nil
	}

	archive, err := export.Zip(files)
	if err != nil {
		return report.Download{}, err
	}
	return report.Download{
		Filename:    fmt.Sprintf("employee-reports-%s.zip", stamp),
		ContentType: contentTypeZip,
		Content:     archive,
	}, nil
}

func renderEmployeePDF(title, footer string, employee *report.EmployeeReport) ([]byte, error) {
	pdf := export.NewPDF(title, footer)
	pdf.Heading(employee.Username)

	for _, rateGroup := range employee.Rates {
		pdf.SubHeading(1, fmt.Sprintf("Rate: %s", rateGroup.Rate))
		for _, year := range rateGroup.Years {
			pdf.SubHeading(2, strconv.Itoa(year.Year))
			for _, month := range year.Months {
				pdf.SubHeading(3, month.Month)
				for _, rate := range month.RatesPerHour {
					pdf.Table(shiftTableHeaders, shiftTableWidths, shiftTableRows(rate.Shifts))
					pdf.TotalLine(
						fmt.Sprintf("Subtotal at %.2f/h", rate.RatePerHour),
						rate.Total.Shifts, rate.Total.Hours, rate.Total.Cost,
					)
				}
			}
		}
		pdf.TotalLine("Rate total", rateGroup.Total.Shifts, rateGroup.Total.Hours, rateGroup.Total.Cost)
	}
	pdf.TotalLine("Employee total", employee.Total.Shifts, employee.Total.Hours, employee.Total.Cost)

	return pdf.Bytes()
}

// DownloadClientPDF implements report.Service.
func (s *ReportServiceImpl) DownloadClientPDF(ctx context.Context, filter report.Filter) (report.Download, error) {
	rows, err := s.repo.Rows(ctx, filter)
	if err != nil {
		return report.Download{}, err
	}
	if len(rows) == 0 {
		return report.Download{}, report.ErrNoRows
	}

	reports, grandTotal := buildClientReports(rows)
	title, footer := s.branding(ctx)

	pdf := export.NewPDF(title, footer)
	for _, client := range reports {
		pdf.Heading(client.ClientName)
		for _, location := range client.Locations {
			pdf.SubHeading(1, location.LocationName)
			for _, user := range location.Users {
				pdf.SubHeading(2, user.Username)
				for _, year := range user.Years {
					for _, month := range year.Months {
						pdf.SubHeading(3, fmt.Sprintf("%s %d", month.Month, year.Year))
						for _, rate := range month.RatesPerHour {
							pdf.Table(shiftTableHeaders, shiftTableWidths, shiftTableRows(rate.Shifts))
						}
					}
				}
				pdf.TotalLine("Employee total", user.Total.Shifts, user.Total.Hours, user.Total.Cost)
			}
			pdf.TotalLine("Location total", location.Total.Shifts, location.Total.Hours, location.Total.Cost)
		}
		pdf.TotalLine("Client total", client.Total.Shifts, client.Total.Hours, client.Total.Cost)
	}
	pdf.TotalLine("Grand total", grandTotal.Shifts, grandTotal.Hours, grandTotal.Cost)

	content, err := pdf.Bytes()
	if err != nil {
		return report.Download{}, err
	}
	return report.Download{
		Filename:    fmt.Sprintf("client-report-%s.pdf", time.Now().Format("20060102")),
		ContentType: contentTypePDF,
		Content:     content,
	}, nil
}

func shiftTableRows(shifts []report.ShiftRow) [][]string {
	rows := make([][]string, 0, len(shifts))
	for _, shift := range shifts {
		rows = append(rows, []string{
			shift.Date,
			shift.Location,
			shift.Event,
			shift.Task,
			shift.StartTime,
			shift.EndTime,
			strconv.FormatFloat(shift.Hours, 'f', 2, 64),
			strconv.FormatFloat(shift.RatePerHour, 'f', 2, 64),
			strconv.FormatFloat(shift.Cost, 'f', 2, 64),
		})
	}
	return rows
}

// DownloadExcel implements report.Service. A template narrows and orders
// the exported columns; without one the full default layout is used.
func (s *ReportServiceImpl) DownloadExcel(ctx context.Context, filter report.Filter, templateID *int64) (report.Download, error) {
	rows, err := s.repo.Rows(ctx, filter)
	if err != nil {
		return report.Download{}, err
	}
	if len(rows) == 0 {
		return report.Download{}, report.ErrNoRows
	}

	columns := defaultExcelColumns
	if templateID != nil {
		template, err := s.masters.GetTemplate(ctx, *templateID)
		if err != nil {
			if errors.Is(err, master.ErrNotFound) {
				return report.Download{}, report.ErrTemplateNotFound
			}
			return report.Download{}, err
		}
		if len(template.Columns) > 0 {
			columns = template.Columns
		}
	}

	headers := make([]string, 0, len(columns))
	extractors := make([]func(report.ShiftRow) interface{}, 0, len(columns))
	for _, column := range columns {
		extractor, ok := excelColumns[column]
		if !ok {
			return report.Download{}, fmt.Errorf("%w: %q", report.ErrUnknownColumn, column)
		}
		headers = append(headers, column)
		extractors = append(extractors, extractor)
	}

	records := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		shift := toShiftRow(row)
		record := make([]interface{}, 0, len(extractors))
		for _, extract := range extractors {
			record = append(record, extract(shift))
		}
		records = append(records, record)
	}

	content, err := export.Workbook("Shifts", headers, records)
	if err != nil {
		return report.Download{}, err
	}
	return report.Download{
		Filename:    fmt.Sprintf("shift-report-%s.xlsx", time.Now().Format("20060102")),
		ContentType: contentTypeXLSX,
		Content:     content,
	}, nil
}
