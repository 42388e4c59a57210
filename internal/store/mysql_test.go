package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestDB connects to the database named by MYSQL_TEST_DSN and wipes the
// tables touched by the tests. Tests are skipped when no DSN is configured.
func newTestDB(t *testing.T) *MYSQLStore {
	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MYSQL_TEST_DSN not set")
	}

	db, err := New(context.Background(), Config{
		DSN:         dsn,
		Automigrate: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.EnsureTables(context.Background()))

	for _, table := range []string{"waitlist_creator", "waitlist_business", "mail_outbox"} {
		_, err = db.db.ExecContext(context.Background(), "DELETE FROM "+table)
		require.NoError(t, err)
	}

	return db
}
