package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"verilearn.io/application/repository"
	"verilearn.io/entities"
	"verilearn.io/infrastructure/database/dbx"
)

type accessLogRepository struct {
	db dbx.DBTX
}

func (r accessLogRepository) InsertLogin(ctx context.Context, log *entities.AccessLog) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO access_logs (id, id_card, login_time, created_at)
		VALUES ($1, $2, $3, $4)`,
		log.ID, log.IDCard, log.LoginTime, log.CreatedAt,
	)
	if err != nil {
		// The open-per-card partial index firing means a concurrent
		// login won the race, not a duplicate record.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == "access_logs_open_per_card" {
			return repository.ErrOpenSessionConflict
		}
		return err
	}
	return nil
}

// CloseLatestOpen picks the newest open row by its stable id, then closes it
// only if it is still open. The inner locator plus the outer IS NULL guard
// keeps a concurrent logout from stamping the same row twice.
func (r accessLogRepository) CloseLatestOpen(ctx context.Context, idCard string, at time.Time) (time.Time, error) {
	var loginTime time.Time
	err := r.db.QueryRowContext(ctx, `
		UPDATE access_logs
		SET logout_time = $2,
			session_duration_micros = (EXTRACT(EPOCH FROM ($2::timestamptz - login_time)) * 1000000)::bigint
		WHERE id = (
			SELECT id FROM access_logs
			WHERE id_card = $1 AND logout_time IS NULL
			ORDER BY login_time DESC
			LIMIT 1
		) AND logout_time IS NULL
		RETURNING login_time`, idCard, at,
	).Scan(&loginTime)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, repository.ErrNotFound
	}
	if err != nil {
		return time.Time{}, err
	}
	return loginTime, nil
}

func (r accessLogRepository) ListByIDCard(ctx context.Context, idCard string) ([]entities.AccessLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, id_card, login_time, logout_time, session_duration_micros, created_at
		FROM access_logs WHERE id_card = $1
		ORDER BY login_time DESC`, idCard,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []entities.AccessLog{}
	for rows.Next() {
		var log entities.AccessLog
		var micros sql.NullInt64
		if err := rows.Scan(&log.ID, &log.IDCard, &log.LoginTime, &log.LogoutTime, &micros, &log.CreatedAt); err != nil {
			return nil, err
		}
		if micros.Valid {
			d := durationFromMicros(micros.Int64)
			log.Duration = &d
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

func durationFromMicros(micros int64) time.Duration {
	return time.Duration(micros) * time.Microsecond
}
