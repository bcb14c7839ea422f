//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, username, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	now := time.Now().UTC()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5) ON CONFLICT (email) DO NOTHING`,
		userID, username, email, testPasswordHash, now)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

// CreateTestEvent inserts an event dated a month ahead with nothing reserved.
func CreateTestEvent(t *testing.T, db DBLike, name string, priceCents int64, total int) uuid.UUID {
	t.Helper()

	eventID := uuid.New()
	now := time.Now().UTC()
	_, err := db.Exec(context.Background(), `INSERT INTO events
		(id, name, event_date, venue, price_cents, total, reserved, created_at, updated_at)
		VALUES ($1, $2, $3, 'Main Hall', $4, $5, 0, $6, $6)`,
		eventID, name, now.AddDate(0, 1, 0), priceCents, total, now)
	require.NoError(t, err)

	return eventID
}

func EventReserved(t *testing.T, db DBLike, eventID uuid.UUID) int {
	t.Helper()

	var reserved int
	err := db.QueryRow(context.Background(), "SELECT reserved FROM events WHERE id = $1", eventID).Scan(&reserved)
	require.NoError(t, err)
	return reserved
}

// SetEventReserved bypasses the ledger to simulate a drifted counter.
func SetEventReserved(t *testing.T, db DBLike, eventID uuid.UUID, reserved int) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE events SET reserved = $2 WHERE id = $1", eventID, reserved)
	require.NoError(t, err)
}

func CountTickets(t *testing.T, db DBLike, requestID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM tickets WHERE request_id = $1", requestID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountLedgerEntries(t *testing.T, db DBLike, requestID uuid.UUID, outcome string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM ledger_entries WHERE request_id = $1 AND outcome = $2", requestID, outcome).Scan(&n)
	require.NoError(t, err)
	return n
}

// TicketIDsForEvent returns every ticket minted for eventID across all buyers.
func TicketIDsForEvent(t *testing.T, db DBLike, eventID uuid.UUID) []uuid.UUID {
	t.Helper()

	rows, err := db.Query(context.Background(), "SELECT id FROM tickets WHERE event_id = $1 ORDER BY id", eventID)
	require.NoError(t, err)
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	require.NoError(t, err)
	return ids
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables; the ledger triggers only guard row-level UPDATE and DELETE
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
