package report

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftops/workforce-backend-go/internal/domain/master"
	"github.com/shiftops/workforce-backend-go/internal/domain/notification"
	"github.com/shiftops/workforce-backend-go/internal/domain/report"
	"github.com/shiftops/workforce-backend-go/internal/domain/settings"
	"github.com/shiftops/workforce-backend-go/internal/domain/timesheet"
	"github.com/shiftops/workforce-backend-go/internal/pkg/jwt"
)

type ReportServiceImpl struct {
	repo          report.Repository
	masters       master.Repository
	settings      settings.Repository
	notifications notification.Repository
}

func NewReportService(
	repo report.Repository,
	masters master.Repository,
	settingsRepo settings.Repository,
	notifications notification.Repository,
) report.Service {
	return &ReportServiceImpl{
		repo:          repo,
		masters:       masters,
		settings:      settingsRepo,
		notifications: notifications,
	}
}

// EmployeeReport implements report.Service.
func (s *ReportServiceImpl) EmployeeReport(ctx context.Context, filter report.Filter) (report.EmployeeReportResponse, error) {
	filter.Normalize()

	rows, err := s.repo.Rows(ctx, filter)
	if err != nil {
		return report.EmployeeReportResponse{}, err
	}

	reports, grandTotal := buildEmployeeReports(rows)

	resp := report.EmployeeReportResponse{
		GrandTotal: grandTotal,
		TotalCount: len(reports),
	}
	resp.Reports = pageOf(reports, filter.Page, filter.PageSize)
	return resp, nil
}

// ClientReport implements report.Service.
func (s *ReportServiceImpl) ClientReport(ctx context.Context, filter report.Filter) (report.ClientReportResponse, error) {
	filter.Normalize()

	rows, err := s.repo.Rows(ctx, filter)
	if err != nil {
		return report.ClientReportResponse{}, err
	}

	reports, grandTotal := buildClientReports(rows)

	resp := report.ClientReportResponse{
		GrandTotal: grandTotal,
		TotalCount: len(reports),
	}
	resp.Reports = pageOf(reports, filter.Page, filter.PageSize)
	return resp, nil
}

// ClientSummary implements report.Service.
func (s *ReportServiceImpl) ClientSummary(ctx context.Context, filter report.Filter) (report.ClientSummaryResponse, error) {
	filter.Normalize()

	rows, err := s.repo.Rows(ctx, filter)
	if err != nil {
		return report.ClientSummaryResponse{}, err
	}

	reports, grandTotal := buildClientSummaries(rows)

	resp := report.ClientSummaryResponse{
		GrandTotal: grandTotal,
		TotalCount: len(reports),
	}
	resp.Reports = pageOf(reports, filter.Page, filter.PageSize)
	return resp, nil
}

// QueueMail implements report.Service. The filter is stored with the job so
// the sweep re-renders the report at send time.
func (s *ReportServiceImpl) QueueMail(ctx context.Context, filter report.Filter, kind string) error {
	if kind != notification.MailKindEmployee && kind != notification.MailKindClient {
		return report.ErrUnknownMailKind
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to extract claims from context: %w", err)
	}
	actorID, err := jwt.UserIDFromClaims(claims)
	if err != nil {
		return err
	}

	payload, err := encodeFilter(filter)
	if err != nil {
		return err
	}

	return s.notifications.CreateMailJob(ctx, notification.MailJob{
		Kind:      kind,
		Filter:    payload,
		CreatedBy: actorID,
	})
}

// pageOf slices one page out of the top-level groups. Totals are computed
// before paging, so they never depend on the page requested.
func pageOf[T any](items []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// ========================================
// TREE BUILDERS
// ========================================

func toShiftRow(e timesheet.Entry) report.ShiftRow {
	return report.ShiftRow{
		ID:          e.ID,
		Date:        e.Date.Format("2006-01-02"),
		Username:    deref(e.Username),
		Location:    deref(e.LocationName),
		Event:       deref(e.EventName),
		Task:        deref(e.TaskName),
		Client:      deref(e.ClientName),
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Hours:       e.Hours,
		RatePerHour: e.RatePerHour,
		Rate:        e.Rate,
		Cost:        e.Cost,
		Year:        e.Year,
		Month:       e.Month,
		ISOWeek:     e.ISOWeek,
		Invoiced:    e.Invoiced,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func buildEmployeeReports(rows []timesheet.Entry) ([]*report.EmployeeReport, report.Total) {
	var (
		reports    []*report.EmployeeReport
		grandTotal report.Total
		byEmployee = make(map[int64]*report.EmployeeReport)
	)

	for _, row := range rows {
		grandTotal.Add(row.Hours, row.Cost)

		employee, ok := byEmployee[row.EmployeeID]
		if !ok {
			employee = &report.EmployeeReport{
				EmployeeID: row.EmployeeID,
				Username:   deref(row.Username),
			}
			byEmployee[row.EmployeeID] = employee
			reports = append(reports, employee)
		}
		employee.Total.Add(row.Hours, row.Cost)

		rateGroup := findRateGroup(&employee.Rates, row.Rate)
		rateGroup.Total.Add(row.Hours, row.Cost)

		addToYearTree(&rateGroup.Years, row)
	}

	return reports, grandTotal
}

func buildClientReports(rows []timesheet.Entry) ([]*report.ClientReport, report.Total) {
	var (
		reports    []*report.ClientReport
		grandTotal report.Total
		byClient   = make(map[int64]*report.ClientReport)
	)

	for _, row := range rows {
		grandTotal.Add(row.Hours, row.Cost)

		clientKey := int64(0)
		if row.ClientID != nil {
			clientKey = *row.ClientID
		}

		client, ok := byClient[clientKey]
		if !ok {
			client = &report.ClientReport{
				ClientID:   row.ClientID,
				ClientName: clientLabel(row.ClientName),
				Email:      deref(row.ClientEmail),
			}
			byClient[clientKey] = client
			reports = append(reports, client)
		}
		client.Total.Add(row.Hours, row.Cost)

		location := findClientLocation(&client.Locations, row.LocationID, deref(row.LocationName))
		location.Total.Add(row.Hours, row.Cost)

		user := findClientUser(&location.Users, row.EmployeeID, deref(row.Username))
		user.Total.Add(row.Hours, row.Cost)

		addToYearTree(&user.Years, row)
	}

	return reports, grandTotal
}

func buildClientSummaries(rows []timesheet.Entry) ([]*report.ClientSummary, report.Total) {
	var (
		reports    []*report.ClientSummary
		grandTotal report.Total
		byClient   = make(map[string]*report.ClientSummary)
	)

	for _, row := range rows {
		grandTotal.Add(row.Hours, row.Cost)

		name := clientLabel(row.ClientName)
		client, ok := byClient[name]
		if !ok {
			client = &report.ClientSummary{ClientName: name}
			byClient[name] = client
			reports = append(reports, client)
		}
		client.Total.Add(row.Hours, row.Cost)

		var location *report.SummaryLocationGroup
		for _, l := range client.Locations {
			if l.LocationName == deref(row.LocationName) {
				location = l
				break
			}
		}
		if location == nil {
			location = &report.SummaryLocationGroup{LocationName: deref(row.LocationName)}
			client.Locations = append(client.Locations, location)
		}
		location.Total.Add(row.Hours, row.Cost)

		var rate *report.SummaryRateGroup
		for _, r := range location.Rates {
			if r.Rate == row.Rate {
				rate = r
				break
			}
		}
		if rate == nil {
			rate = &report.SummaryRateGroup{Rate: row.Rate}
			location.Rates = append(location.Rates, rate)
		}
		rate.Total.Add(row.Hours, row.Cost)
	}

	return reports, grandTotal
}

func clientLabel(name *string) string {
	if name == nil || *name == "" {
		return "Unassigned"
	}
	return *name
}

// addToYearTree pushes one row down the shared year/month/rate-per-hour
// branch used by both the employee and the client tree.
func addToYearTree(years *[]*report.YearGroup, row timesheet.Entry) {
	year := findYearGroup(years, row.Year)
	year.Total.Add(row.Hours, row.Cost)

	month := findMonthGroup(&year.Months, row.Month)
	month.Total.Add(row.Hours, row.Cost)

	rate := findRatePerHourGroup(&month.RatesPerHour, row.RatePerHour)
	rate.Total.Add(row.Hours, row.Cost)
	rate.Shifts = append(rate.Shifts, toShiftRow(row))
}

func findRateGroup(groups *[]*report.RateGroup, rate string) *report.RateGroup {
	for _, g := range *groups {
		if g.Rate == rate {
			return g
		}
	}
	g := &report.RateGroup{Rate: rate}
	*groups = append(*groups, g)
	return g
}

func findYearGroup(groups *[]*report.YearGroup, year int) *report.YearGroup {
	for _, g := range *groups {
		if g.Year == year {
			return g
		}
	}
	g := &report.YearGroup{Year: year}
	*groups = append(*groups, g)
	return g
}

func findMonthGroup(groups *[]*report.MonthGroup, month string) *report.MonthGroup {
	for _, g := range *groups {
		if g.Month == month {
			return g
		}
	}
	g := &report.MonthGroup{Month: month}
	*groups = append(*groups, g)
	return g
}

func findRatePerHourGroup(groups *[]*report.RatePerHourGroup, ratePerHour float64) *report.RatePerHourGroup {
	for _, g := range *groups {
		if g.RatePerHour == ratePerHour {
			return g
		}
	}
	g := &report.RatePerHourGroup{RatePerHour: ratePerHour}
	*groups = append(*groups, g)
	return g
}

func findClientLocation(groups *[]*report.ClientLocationGroup, id int64, name string) *report.ClientLocationGroup {
	for _, g := range *groups {
		if g.LocationID == id {
			return g
		}
	}
	g := &report.ClientLocationGroup{LocationID: id, LocationName: name}
	*groups = append(*groups, g)
	return g
}

func findClientUser(groups *[]*report.ClientUserGroup, id int64, username string) *report.ClientUserGroup {
	for _, g := range *groups {
		if g.EmployeeID == id {
			return g
		}
	}
	g := &report.ClientUserGroup{EmployeeID: id, Username: username}
	*groups = append(*groups, g)
	return g
}
