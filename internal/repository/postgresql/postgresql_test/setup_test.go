package postgresql_test

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/shiftops/workforce-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
)

// testDatabase connects to the database named by TEST_DATABASE_URL and
// skips the test when the variable is unset.
func testDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	testDBOnce.Do(func() {
		db, err := database.NewPostgreSQLDB(dsn)
		if err != nil {
			t.Fatalf("failed to connect to test database: %v", err)
		}
		testDB = db
	})
	return testDB
}

// truncateTables resets every table touched by the repository tests.
func truncateTables(t *testing.T, db *database.DB) {
	t.Helper()

	ctx := context.Background()
	tables := []string{
		"whatsapp_notifications",
		"mail_jobs",
		"push_jobs",
		"push_settings",
		"feedback",
		"timesheet_logs",
		"timesheets",
		"messages",
		"conversation_participants",
		"conversations",
		"post_likes",
		"post_comments",
		"posts",
		"announcement_users",
		"announcements",
		"attachments",
		"user_qualifications",
		"user_skills",
		"user_languages",
		"qualifications",
		"skills",
		"languages",
		"templates",
		"clients",
		"tasks",
		"events",
		"locations",
		"users",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" RESTART IDENTITY CASCADE")
		require.NoError(t, err)
	}
}
