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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both the pool and a pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PartnerFixture struct {
	Code     string
	Name     string
	Level    string
	Status   string
	WithBank bool
}

func CreateTestPartner(t *testing.T, db DBLike, f PartnerFixture) uuid.UUID {
	t.Helper()

	if f.Name == "" {
		f.Name = f.Code + " partner"
	}
	if f.Level == "" {
		f.Level = "AFFILIATE"
	}
	if f.Status == "" {
		f.Status = "ACTIVE"
	}
	var bankName, account, holder *string
	if f.WithBank {
		bankName, account, holder = strPtr("Mizuho"), strPtr("1234567"), strPtr(f.Name)
	}

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO partners (id, code, name, level, status, bank_name, bank_account_number, bank_account_holder)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, f.Code, f.Name, f.Level, f.Status, bankName, account, holder)
	require.NoError(t, err)
	return id
}

type CouponFixture struct {
	Code           string
	Type           string
	Value          int64
	Active         *bool
	StartsAt       time.Time
	EndsAt         time.Time
	UsageLimit     *int32
	UsageCount     int32
	MinOrderAmount *int64
	PartnerID      *uuid.UUID
}

// CreateTestCoupon defaults to a coupon that is valid from an hour ago for thirty days.
func CreateTestCoupon(t *testing.T, db DBLike, f CouponFixture) uuid.UUID {
	t.Helper()

	now := time.Now()
	if f.StartsAt.IsZero() {
		f.StartsAt = now.Add(-time.Hour)
	}
	if f.EndsAt.IsZero() {
		f.EndsAt = now.Add(30 * 24 * time.Hour)
	}
	active := true
	if f.Active != nil {
		active = *f.Active
	}

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO coupons (id, code, type, value, is_active, starts_at, ends_at, usage_limit, usage_count, min_order_amount, partner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		id, f.Code, f.Type, f.Value, active, f.StartsAt, f.EndsAt, f.UsageLimit, f.UsageCount, f.MinOrderAmount, f.PartnerID)
	require.NoError(t, err)
	return id
}

type CommissionFixture struct {
	PartnerID  uuid.UUID
	OrderID    string
	OrderTotal int64
	RateBps    int32
	Amount     int64
	Status     string
	CreatedAt  time.Time
}

func CreateTestCommission(t *testing.T, db DBLike, f CommissionFixture) uuid.UUID {
	t.Helper()

	if f.OrderID == "" {
		f.OrderID = "ORD-" + uuid.NewString()[:8]
	}
	if f.Status == "" {
		f.Status = "APPROVED"
	}
	if f.RateBps == 0 {
		f.RateBps = 500
	}
	if f.OrderTotal == 0 {
		f.OrderTotal = f.Amount * 10000 / int64(f.RateBps)
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().Add(-time.Hour)
	}

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO commissions (id, order_id, partner_id, order_total, rate_bps, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`,
		id, f.OrderID, f.PartnerID, f.OrderTotal, f.RateBps, f.Amount, f.Status, f.CreatedAt)
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

func strPtr(s string) *string { return &s }

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every table in the public schema
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
