package report

// Total accumulates shift count, hours and cost at one tree level.
type Total struct {
	Shifts int     `json:"shifts"`
	Hours  float64 `json:"hours"`
	Cost   float64 `json:"cost"`
}

// Add folds one shift into the total.
func (t *Total) Add(hours, cost float64) {
	t.Shifts++
	t.Hours += hours
	t.Cost += cost
}

// ShiftRow is the leaf detail carried into exports.
type ShiftRow struct {
	ID          int64   `json:"id"`
	Date        string  `json:"date"`
	Username    string  `json:"username"`
	Location    string  `json:"location"`
	Event       string  `json:"event"`
	Task        string  `json:"task"`
	Client      string  `json:"client"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Hours       float64 `json:"hours"`
	RatePerHour float64 `json:"rate_per_hour"`
	Rate        string  `json:"rate"`
	Cost        float64 `json:"cost"`
	Year        int     `json:"year"`
	Month       string  `json:"month"`
	ISOWeek     int     `json:"iso_week"`
	Invoiced    bool    `json:"invoiced"`
}

// Employee tree: employee -> rate -> year -> month -> rate per hour -> shifts.

type EmployeeReport struct {
	EmployeeID int64        `json:"employee_id"`
	Username   string       `json:"username"`
	Rates      []*RateGroup `json:"rates"`
	Total      Total        `json:"total"`
}

type RateGroup struct {
	Rate  string       `json:"rate"`
	Years []*YearGroup `json:"years"`
	Total Total        `json:"total"`
}

type YearGroup struct {
	Year   int           `json:"year"`
	Months []*MonthGroup `json:"months"`
	Total  Total         `json:"total"`
}

type MonthGroup struct {
	Month        string              `json:"month"`
	RatesPerHour []*RatePerHourGroup `json:"rates_per_hour"`
	Total        Total               `json:"total"`
}

type RatePerHourGroup struct {
	RatePerHour float64    `json:"rate_per_hour"`
	Shifts      []ShiftRow `json:"shifts"`
	Total       Total      `json:"total"`
}

// Client tree: client -> location -> user -> year -> month -> rate per hour.

type ClientReport struct {
	ClientID   *int64                 `json:"client_id"`
	ClientName string                 `json:"client_name"`
	Email      string                 `json:"email,omitempty"`
	Locations  []*ClientLocationGroup `json:"locations"`
	Total      Total                  `json:"total"`
}

type ClientLocationGroup struct {
	LocationID   int64              `json:"location_id"`
	LocationName string             `json:"location_name"`
	Users        []*ClientUserGroup `json:"users"`
	Total        Total              `json:"total"`
}

type ClientUserGroup struct {
	EmployeeID int64        `json:"employee_id"`
	Username   string       `json:"username"`
	Years      []*YearGroup `json:"years"`
	Total      Total        `json:"total"`
}

// Client summary tree: client -> location -> rate.

type ClientSummary struct {
	ClientName string                  `json:"client_name"`
	Locations  []*SummaryLocationGroup `json:"locations"`
	Total      Total                   `json:"total"`
}

type SummaryLocationGroup struct {
	LocationName string              `json:"location_name"`
	Rates        []*SummaryRateGroup `json:"rates"`
	Total        Total               `json:"total"`
}

type SummaryRateGroup struct {
	Rate  string `json:"rate"`
	Total Total  `json:"total"`
}

// Filter narrows the report scan. Nil fields are ignored. Pagination
// applies to the top-level groups only; totals always cover the whole
// filtered set.
type Filter struct {
	Year         *int
	Month        *string
	EmployeeIDs  []int64
	LocationID   *int64
	EventID      *int64
	TaskID       *int64
	ClientID     *int64
	Rate         *string
	RatesPerHour []float64
	Page         int
	PageSize     int
}

func (f *Filter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 100 {
		f.PageSize = 10
	}
}

type EmployeeReportResponse struct {
	Reports    []*EmployeeReport `json:"reports"`
	GrandTotal Total             `json:"grand_total"`
	TotalCount int               `json:"total_count"`
}

type ClientReportResponse struct {
	Reports    []*ClientReport `json:"reports"`
	GrandTotal Total           `json:"grand_total"`
	TotalCount int             `json:"total_count"`
}

type ClientSummaryResponse struct {
	Reports    []*ClientSummary `json:"reports"`
	GrandTotal Total            `json:"grand_total"`
	TotalCount int              `json:"total_count"`
}

// Download is a rendered report artifact.
type Download struct {
	Filename    string
	ContentType string
	Content     []byte
}
