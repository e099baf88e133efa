package repository

import (
	"context"
	"database/sql"
	"fmt"

	"translation-service/internal/domain"

	sq "github.com/Masterminds/squirrel"
	log "github.com/sirupsen/logrus"
)

const businessTagColumns = "id, name, description, created_at, updated_at"

type postgresBusinessTagRepository struct {
	db *sql.DB
}

func NewPostgresBusinessTagRepository(db *sql.DB) *postgresBusinessTagRepository {
	return &postgresBusinessTagRepository{db: db}
}

func (r *postgresBusinessTagRepository) Create(ctx context.Context, req domain.CreateBusinessTagRequest) (*domain.BusinessTag, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Insert("business_tags").
		Columns("name", "description").
		Values(req.Name, req.Description).
		Suffix("RETURNING " + businessTagColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build business tag insert: %w", err)
	}

	tag, err := scanBusinessTag(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.WithError(err).WithField("name", req.Name).Error("Failed to create business tag")
		return nil, fmt.Errorf("failed to create business tag: %w", err)
	}
	return tag, nil
}

func (r *postgresBusinessTagRepository) GetByID(ctx context.Context, id int64) (*domain.BusinessTag, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Select(businessTagColumns).
		From("business_tags").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build business tag select: %w", err)
	}

	tag, err := scanBusinessTag(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrBusinessTagNotFound
		}
		log.WithError(err).WithField("business_tag_id", id).Error("Failed to get business tag")
		return nil, fmt.Errorf("failed to get business tag: %w", err)
	}
	return tag, nil
}

func (r *postgresBusinessTagRepository) List(ctx context.Context, limit, offset int) ([]domain.BusinessTag, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Select(businessTagColumns).
		From("business_tags").
		OrderBy("id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build business tag list: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.WithError(err).Error("Failed to list business tags")
		return nil, fmt.Errorf("failed to list business tags: %w", err)
	}
	defer rows.Close()

	var tags []domain.BusinessTag
	for rows.Next() {
		var tag domain.BusinessTag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Description, &tag.CreatedAt, &tag.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan business tag row: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

func (r *postgresBusinessTagRepository) Count(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Select("COUNT(*)").From("business_tags").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build business tag count: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count business tags: %w", err)
	}
	return total, nil
}

func (r *postgresBusinessTagRepository) Update(ctx context.Context, id int64, req domain.CreateBusinessTagRequest) (*domain.BusinessTag, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Update("business_tags").
		Set("name", req.Name).
		Set("description", req.Description).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + businessTagColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build business tag update: %w", err)
	}

	tag, err := scanBusinessTag(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrBusinessTagNotFound
		}
		log.WithError(err).WithField("business_tag_id", id).Error("Failed to update business tag")
		return nil, fmt.Errorf("failed to update business tag: %w", err)
	}
	return tag, nil
}

func (r *postgresBusinessTagRepository) Delete(ctx context.Context, id int64) (*domain.BusinessTag, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Delete("business_tags").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + businessTagColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build business tag delete: %w", err)
	}

	tag, err := scanBusinessTag(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrBusinessTagNotFound
		}
		log.WithError(err).WithField("business_tag_id", id).Error("Failed to delete business tag")
		return nil, fmt.Errorf("failed to delete business tag: %w", err)
	}
	return tag, nil
}

func scanBusinessTag(row *sql.Row) (*domain.BusinessTag, error) {
	var tag domain.BusinessTag
	err := row.Scan(&tag.ID, &tag.Name, &tag.Description, &tag.CreatedAt, &tag.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &tag, nil
}
