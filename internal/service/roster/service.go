package roster

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftops/workforce-backend-go/internal/domain/roster"
)

type RosterServiceImpl struct {
	repo roster.Repository
}

func NewRosterService(repo roster.Repository) roster.Service {
	return &RosterServiceImpl{repo: repo}
}

// View implements roster.Service. With a group key the page of shifts is
// bucketed in scan order; without one the flat page is returned.
func (s *RosterServiceImpl) View(ctx context.Context, filter roster.Filter) (roster.ViewResponse, error) {
	if filter.GroupBy != "" && groupKeyOf(filter.GroupBy) == nil {
		return roster.ViewResponse{}, roster.ErrUnknownGroupKey
	}
	filter.Normalize()

	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return roster.ViewResponse{}, err
	}

	shifts := make([]roster.Shift, 0, len(rows))
	for _, row := range rows {
		shifts = append(shifts, toShift(row))
	}

	resp := roster.ViewResponse{TotalCount: total}
	if filter.GroupBy == "" {
		resp.Shifts = shifts
		return resp, nil
	}

	key := groupKeyOf(filter.GroupBy)
	var (
		buckets []roster.Bucket
		index   = make(map[string]int)
	)
	for _, shift := range shifts {
		k := key(shift)
		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, roster.Bucket{Key: k})
		}
		buckets[i].Shifts = append(buckets[i].Shifts, shift)
	}
	resp.Groups = buckets

	return resp, nil
}

// clock12 renders a stored "HH:MM" time as "hh:mm AM".
func clock12(t string) string {
	parsed, err := time.Parse("15:04", t)
	if err != nil {
		return t
	}
	return parsed.Format("03:04 PM")
}

func toShift(row roster.Row) roster.Shift {
	return roster.Shift{
		ID:           row.ID,
		EmployeeID:   row.EmployeeID,
		Username:     row.Username,
		Date:         row.Date,
		ShiftTime:    fmt.Sprintf("%s - %s", clock12(row.StartTime), clock12(row.EndTime)),
		LocationName: row.LocationName,
		EventName:    row.EventName,
		TaskName:     row.TaskName,
		ClientName:   row.ClientName,
		Hours:        row.Hours,
	}
}

func groupKeyOf(groupBy string) func(roster.Shift) string {
	switch groupBy {
	case roster.GroupUsername:
		return func(s roster.Shift) string { return s.Username }
	case roster.GroupLocation:
		return func(s roster.Shift) string { return s.LocationName }
	case roster.GroupEvent:
		return func(s roster.Shift) string { return s.EventName }
	case roster.GroupTask:
		return func(s roster.Shift) string { return s.TaskName }
	case roster.GroupClient:
		return func(s roster.Shift) string { return s.ClientName }
	case roster.GroupDate:
		return func(s roster.Shift) string { return s.Date }
	default:
		return nil
	}
}
