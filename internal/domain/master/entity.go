package master

import "time"

// Rate labels shared by locations and clients.
const (
	RateNormal = "normal"
	RateDouble = "double"
)

type Location struct {
	ID        int64
	Name      string
	Rate      string
	CreatedAt time.Time
}

type Event struct {
	ID        int64
	Name      string
	Color     string
	CreatedAt time.Time
}

type Task struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

type Client struct {
	ID        int64
	Name      string
	Email     *string
	Rate      string
	CreatedAt time.Time
}

// Attribute covers qualifications, skills and languages; Kind selects the
// table.
type Attribute struct {
	ID   int64
	Name string
	Kind string
}

// Template describes the column layout of an Excel report export.
type Template struct {
	ID        int64
	Title     string
	Type      string
	Columns   []string
	CreatedAt time.Time
}
