package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/IXIIIK/meteorit-bot/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const reservationColumns = `id, user_id, table_ref, party_size, start_at, time_of_day,
		guest_name, guest_phone, created_at, notified_24h, notified_12h`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
	duration time.Duration
}

func NewReservationRepo(db *dbpg.DB, duration time.Duration) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		duration: duration,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Сериализуем запись по столу: вторая транзакция ждёт коммита первой
	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, res.TableRef); err != nil {
		return fmt.Errorf("lock table %s: %w", res.TableRef, err)
	}

	// Повторная проверка пересечений уже под блокировкой
	overlapQuery := `SELECT COUNT(*) FROM reservations
			  WHERE table_ref = $1 AND start_at < $2 AND start_at > $3`
	var overlapping int
	if err = tx.QueryRowContext(
		ctx, overlapQuery, res.TableRef,
		res.EndAt(r.duration), res.StartAt.Add(-r.duration),
	).Scan(&overlapping); err != nil {
		return fmt.Errorf("count overlapping: %w", err)
	}
	if overlapping > 0 {
		return domain.ErrDuplicateSlot
	}

	query := `INSERT INTO reservations (` + reservationColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.ExecContext(
		ctx, query,
		res.ID, res.UserID, res.TableRef, res.PartySize, res.StartAt.UTC(), res.TimeOfDay,
		res.GuestName, res.GuestPhone, res.CreatedAt.UTC(), res.Notified24h, res.Notified12h,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateSlot
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	return tx.Commit()
}

func (r *ReservationRepository) Get(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
              FROM reservations
              WHERE user_id = $1
              ORDER BY start_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by user: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) ListActive(ctx context.Context) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
              FROM reservations
              ORDER BY start_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list active reservations: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

// Delete removes a reservation and reports whether this call removed it.
// A missing id is not an error.
func (r *ReservationRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete reservation: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reservation rows affected: %w", err)
	}

	return affected > 0, nil
}

// SetNotified flips a reminder flag from false to true and reports whether
// this call did it. An already set flag or a vanished row yields false.
func (r *ReservationRepository) SetNotified(ctx context.Context, id string, which domain.Reminder) (bool, error) {
	var query string
	switch which {
	case domain.Reminder24h:
		query = `UPDATE reservations SET notified_24h = TRUE WHERE id = $1 AND notified_24h = FALSE`
	case domain.Reminder12h:
		query = `UPDATE reservations SET notified_12h = TRUE WHERE id = $1 AND notified_12h = FALSE`
	default:
		return false, fmt.Errorf("%w: unknown reminder %d", domain.ErrValidation, which)
	}

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return false, fmt.Errorf("set notified %s: %w", which, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reservation rows affected: %w", err)
	}

	return affected > 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReservation(s scanner) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := s.Scan(
		&res.ID, &res.UserID, &res.TableRef, &res.PartySize, &res.StartAt, &res.TimeOfDay,
		&res.GuestName, &res.GuestPhone, &res.CreatedAt, &res.Notified24h, &res.Notified12h,
	); err != nil {
		return nil, err
	}
	res.StartAt = res.StartAt.UTC()
	res.CreatedAt = res.CreatedAt.UTC()
	return &res, nil
}

func collectReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		out = append(out, res)
	}

	return out, rows.Err()
}
