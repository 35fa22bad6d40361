package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/shiftops/workforce-backend-go/internal/domain/master"
	"github.com/shiftops/workforce-backend-go/internal/domain/timesheet"
	"github.com/shiftops/workforce-backend-go/internal/domain/user"
	"github.com/shiftops/workforce-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type timesheetFixtures struct {
	employee user.User
	location master.Location
	event    master.Event
	task     master.Task
}

func setupTimesheetFixtures(t *testing.T, users user.Repository, masters master.Repository) timesheetFixtures {
	t.Helper()
	ctx := context.Background()

	employee := createTestUser(t, users, "erin", "erin@example.com", user.RoleEmployee)

	location, err := masters.CreateLocation(ctx, master.Location{Name: "Site North", Rate: master.RateNormal})
	require.NoError(t, err)
	event, err := masters.CreateEvent(ctx, master.Event{Name: "Night Shift", Color: "#336699"})
	require.NoError(t, err)
	task, err := masters.CreateTask(ctx, master.Task{Name: "Security"})
	require.NoError(t, err)

	return timesheetFixtures{employee: employee, location: location, event: event, task: task}
}

func sampleEntry(f timesheetFixtures, date time.Time) timesheet.Entry {
	return timesheet.Entry{
		EmployeeID:  f.employee.ID,
		Date:        date,
		LocationID:  f.location.ID,
		EventID:     f.event.ID,
		TaskID:      f.task.ID,
		StartTime:   "09:00",
		EndTime:     "17:00",
		RatePerHour: 25,
		Rate:        timesheet.RateNormal,
		Hours:       8,
		Cost:        200,
		Year:        date.Year(),
		Month:       date.Format("Jan"),
		ISOWeek:     isoWeekOf(date),
		CreatedBy:   f.employee.ID,
	}
}

func isoWeekOf(date time.Time) int {
	_, week := date.ISOWeek()
	return week
}

func TestTimesheetRepository_CreateAndDuplicate(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)

	users := postgresql.NewUserRepository(db)
	masters := postgresql.NewMasterRepository(db)
	repo := postgresql.NewTimesheetRepository(db)
	ctx := context.Background()

	f := setupTimesheetFixtures(t, users, masters)
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	created, inserted, err := repo.Create(ctx, sampleEntry(f, date))
	require.NoError(t, err)
	assert.True(t, inserted)
	require.NotZero(t, created.ID)

	// Identical natural key reports inserted=false instead of erroring.
	_, inserted, err = repo.Create(ctx, sampleEntry(f, date))
	require.NoError(t, err)
	assert.False(t, inserted)

	loaded, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "09:00", loaded.StartTime)
	assert.Equal(t, f.employee.ID, loaded.EmployeeID)

	_, err = repo.GetByID(ctx, created.ID+1000)
	assert.ErrorIs(t, err, timesheet.ErrEntryNotFound)
}

func TestTimesheetRepository_Exists(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)

	users := postgresql.NewUserRepository(db)
	masters := postgresql.NewMasterRepository(db)
	repo := postgresql.NewTimesheetRepository(db)
	ctx := context.Background()

	f := setupTimesheetFixtures(t, users, masters)
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	exists, err := repo.Exists(ctx, sampleEntry(f, date))
	require.NoError(t, err)
	assert.False(t, exists)

	_, inserted, err := repo.Create(ctx, sampleEntry(f, date))
	require.NoError(t, err)
	require.True(t, inserted)

	exists, err = repo.Exists(ctx, sampleEntry(f, date))
	require.NoError(t, err)
	assert.True(t, exists)

	other := sampleEntry(f, date)
	other.StartTime = "10:00"
	exists, err = repo.Exists(ctx, other)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTimesheetRepository_ListAndInvoice(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)

	users := postgresql.NewUserRepository(db)
	masters := postgresql.NewMasterRepository(db)
	repo := postgresql.NewTimesheetRepository(db)
	ctx := context.Background()

	f := setupTimesheetFixtures(t, users, masters)

	var ids []int64
	for day := 2; day <= 4; day++ {
		created, inserted, err := repo.Create(ctx, sampleEntry(f, time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC)))
		require.NoError(t, err)
		require.True(t, inserted)
		ids = append(ids, created.ID)
	}

	filter := timesheet.ListFilter{EmployeeID: &f.employee.ID, Page: 1, PageSize: 10}
	entries, total, err := repo.List(ctx, filter)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, entries, 3)
	require.NotNil(t, entries[0].Username)
	assert.Equal(t, "erin", *entries[0].Username)

	updated, err := repo.SetInvoiced(ctx, ids[:2], true)
	require.NoError(t, err)
	assert.Len(t, updated, 2)

	invoiced := true
	filter.Invoiced = &invoiced
	_, total, err = repo.List(ctx, filter)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestTimesheetRepository_Logs(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)

	users := postgresql.NewUserRepository(db)
	masters := postgresql.NewMasterRepository(db)
	repo := postgresql.NewTimesheetRepository(db)
	ctx := context.Background()

	f := setupTimesheetFixtures(t, users, masters)
	created, _, err := repo.Create(ctx, sampleEntry(f, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	require.NoError(t, repo.CreateLog(ctx, timesheet.LogEntry{
		TimesheetID: created.ID,
		UserID:      f.employee.ID,
		Action:      timesheet.LogActionCreate,
		Detail:      "shift created",
	}))

	logs, err := repo.LogsByTimesheetID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, timesheet.LogActionCreate, logs[0].Action)

	paged, total, err := repo.ListLogs(ctx, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, paged, 1)
	require.NotNil(t, paged[0].Username)
}
