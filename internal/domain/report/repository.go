package report

import (
	"context"

	"github.com/shiftops/workforce-backend-go/internal/domain/timesheet"
)

// Repository feeds the report builders. Rows returns the complete joined
// result set matching the filter with no pagination; the tree builders do
// the grouping in memory.
type Repository interface {
	Rows(ctx context.Context, filter Filter) ([]timesheet.Entry, error)
}
