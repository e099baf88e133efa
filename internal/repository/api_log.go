package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"translation-service/internal/domain"

	sq "github.com/Masterminds/squirrel"
	log "github.com/sirupsen/logrus"
)

const apiLogColumns = "id, path, method, operator, operated_at"

type postgresApiLogRepository struct {
	db *sql.DB
}

func NewPostgresApiLogRepository(db *sql.DB) *postgresApiLogRepository {
	return &postgresApiLogRepository{db: db}
}

func (r *postgresApiLogRepository) Insert(ctx context.Context, path, method string, operator *string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Insert("api_logs").
		Columns("path", "method", "operator").
		Values(path, method, operator).
		ToSql()
	if err != nil {
		return fmt.Errorf("build api log insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert api log: %w", err)
	}
	return nil
}

func (r *postgresApiLogRepository) List(ctx context.Context, limit, offset int) ([]domain.ApiLog, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Select(apiLogColumns).
		From("api_logs").
		OrderBy("operated_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build api log list: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.WithError(err).Error("Failed to list api logs")
		return nil, fmt.Errorf("failed to list api logs: %w", err)
	}
	defer rows.Close()

	var entries []domain.ApiLog
	for rows.Next() {
		var entry domain.ApiLog
		var operator sql.NullString
		err := rows.Scan(&entry.ID, &entry.Path, &entry.Method, &operator, &entry.OperatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan api log row: %w", err)
		}
		if operator.Valid {
			entry.Operator = &operator.String
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *postgresApiLogRepository) Count(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Select("COUNT(*)").From("api_logs").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build api log count: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count api logs: %w", err)
	}
	return total, nil
}

func (r *postgresApiLogRepository) CountOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Select("COUNT(*)").
		From("api_logs").
		Where(sq.Lt{"operated_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build api log count: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count old api logs: %w", err)
	}
	return total, nil
}

func (r *postgresApiLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Delete("api_logs").
		Where(sq.Lt{"operated_at": cutoff}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build api log delete: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.WithError(err).Error("Failed to delete old api logs")
		return fmt.Errorf("failed to delete old api logs: %w", err)
	}
	return nil
}

func (r *postgresApiLogRepository) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Delete("api_logs").ToSql()
	if err != nil {
		return fmt.Errorf("build api log delete: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.WithError(err).Error("Failed to delete all api logs")
		return fmt.Errorf("failed to delete all api logs: %w", err)
	}
	return nil
}

func (r *postgresApiLogRepository) CountByMethod(ctx context.Context) ([]domain.MethodCount, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Select("method", "COUNT(*)").
		From("api_logs").
		GroupBy("method").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build api log method stats: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count api logs by method: %w", err)
	}
	defer rows.Close()

	var counts []domain.MethodCount
	for rows.Next() {
		var mc domain.MethodCount
		if err := rows.Scan(&mc.Method, &mc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan method count row: %w", err)
		}
		counts = append(counts, mc)
	}
	return counts, rows.Err()
}

func (r *postgresApiLogRepository) CountByPath(ctx context.Context, limit int) ([]domain.PathCount, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Select("path", "COUNT(*)").
		From("api_logs").
		GroupBy("path").
		OrderBy("COUNT(*) DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build api log path stats: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count api logs by path: %w", err)
	}
	defer rows.Close()

	var counts []domain.PathCount
	for rows.Next() {
		var pc domain.PathCount
		if err := rows.Scan(&pc.Path, &pc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan path count row: %w", err)
		}
		counts = append(counts, pc)
	}
	return counts, rows.Err()
}
