package roster

import "context"

// Repository defines data access for the roster view.
type Repository interface {
	// List returns a joined page of shifts plus the total match count.
	// StartTime and EndTime arrive in 24h "HH:MM" form; the service turns
	// them into the display range.
	List(ctx context.Context, filter Filter) ([]Row, int64, error)
}

// Row is the raw scan target before display formatting.
type Row struct {
	ID           int64
	EmployeeID   int64
	Username     string
	Date         string
	StartTime    string
	EndTime      string
	LocationName string
	EventName    string
	TaskName     string
	ClientName   string
	Hours        float64
}
