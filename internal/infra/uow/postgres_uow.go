package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"storefront-partners/internal/infra/repository"
	sqlc "storefront-partners/internal/infra/sqlc/generated"
	"storefront-partners/internal/pkg/errs"
	"storefront-partners/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxRetries = 3
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted plus explicit row locks (FOR UPDATE) on the rows a command mutates
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	attempt := 0
	op := func() error {
		attempt++
		err := u.runOnce(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
		if err == nil || !isRetryableError(err) {
			return backoff.Permanent(err)
		}
		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt,
			"error", err.Error())
		return err
	}

	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(newBackOff(), maxRetries), ctx))
	if err != nil && isRetryableError(err) {
		slog.Error("transaction failed after max retries",
			"attempts", attempt,
			"error", err.Error())
		return errs.Mark(err, errMaxRetriesExceeded)
	}
	return err
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runOnce(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

// runOnce owns exactly one pgx transaction so retries never stack deferred rollbacks.
func (u *PostgresUoW) runOnce(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, &pgTx{dbtx: pgxTx, uow: u})
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
		if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rollbackErr.Error())
		}
	}
	return err
}

func newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.RandomizationFactor = 0.2
	b.Multiplier = 2
	b.MaxInterval = time.Second
	return b
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	partnerRepo       shared.PartnerRepository
	sessionRepo       shared.SessionRepository
	eventRepo         shared.ReferralEventRepository
	couponRepo        shared.CouponRepository
	orderReferralRepo shared.OrderReferralRepository
	commissionRepo    shared.CommissionRepository
	payoutRepo        shared.PayoutRepository
}

func (t *pgTx) Partners() shared.PartnerRepository {
	if t.partnerRepo == nil {
		t.partnerRepo = repository.NewPartnerRepository(t.uow.q, t.dbtx)
	}
	return t.partnerRepo
}

func (t *pgTx) Sessions() shared.SessionRepository {
	if t.sessionRepo == nil {
		t.sessionRepo = repository.NewSessionRepository(t.uow.q, t.dbtx)
	}
	return t.sessionRepo
}

func (t *pgTx) ReferralEvents() shared.ReferralEventRepository {
	if t.eventRepo == nil {
		t.eventRepo = repository.NewReferralEventRepository(t.uow.q, t.dbtx)
	}
	return t.eventRepo
}

func (t *pgTx) Coupons() shared.CouponRepository {
	if t.couponRepo == nil {
		t.couponRepo = repository.NewCouponRepository(t.uow.q, t.dbtx)
	}
	return t.couponRepo
}

func (t *pgTx) OrderReferrals() shared.OrderReferralRepository {
	if t.orderReferralRepo == nil {
		t.orderReferralRepo = repository.NewOrderReferralRepository(t.uow.q, t.dbtx)
	}
	return t.orderReferralRepo
}

func (t *pgTx) Commissions() shared.CommissionRepository {
	if t.commissionRepo == nil {
		t.commissionRepo = repository.NewCommissionRepository(t.uow.q, t.dbtx)
	}
	return t.commissionRepo
}

func (t *pgTx) Payouts() shared.PayoutRepository {
	if t.payoutRepo == nil {
		t.payoutRepo = repository.NewPayoutRepository(t.uow.q, t.dbtx)
	}
	return t.payoutRepo
}
