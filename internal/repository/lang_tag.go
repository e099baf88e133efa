package repository

import (
	"context"
	"database/sql"
	"fmt"

	"translation-service/internal/domain"

	sq "github.com/Masterminds/squirrel"
	log "github.com/sirupsen/logrus"
)

const langTagColumns = "id, name, description, created_at, updated_at"

type postgresLangTagRepository struct {
	db *sql.DB
}

func NewPostgresLangTagRepository(db *sql.DB) *postgresLangTagRepository {
	return &postgresLangTagRepository{db: db}
}

func (r *postgresLangTagRepository) Create(ctx context.Context, req domain.CreateLangTagRequest) (*domain.LangTag, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Insert("lang_tags").
		Columns("name", "description").
		Values(req.Name, req.Description).
		Suffix("RETURNING " + langTagColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lang tag insert: %w", err)
	}

	tag, err := scanLangTag(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.WithError(err).WithField("name", req.Name).Error("Failed to create lang tag")
		return nil, fmt.Errorf("failed to create lang tag: %w", err)
	}
	return tag, nil
}

func (r *postgresLangTagRepository) GetByID(ctx context.Context, id int64) (*domain.LangTag, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Select(langTagColumns).
		From("lang_tags").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lang tag select: %w", err)
	}

	tag, err := scanLangTag(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrLangTagNotFound
		}
		log.WithError(err).WithField("lang_tag_id", id).Error("Failed to get lang tag")
		return nil, fmt.Errorf("failed to get lang tag: %w", err)
	}
	return tag, nil
}

func (r *postgresLangTagRepository) List(ctx context.Context, limit, offset int) ([]domain.LangTag, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Select(langTagColumns).
		From("lang_tags").
		OrderBy("id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lang tag list: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.WithError(err).Error("Failed to list lang tags")
		return nil, fmt.Errorf("failed to list lang tags: %w", err)
	}
	defer rows.Close()

	var tags []domain.LangTag
	for rows.Next() {
		var tag domain.LangTag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Description, &tag.CreatedAt, &tag.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lang tag row: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

func (r *postgresLangTagRepository) Count(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Select("COUNT(*)").From("lang_tags").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build lang tag count: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count lang tags: %w", err)
	}
	return total, nil
}

// NamesExisting returns, out of the given names, the ones registered as lang
// tags. A single batched query regardless of how many names are checked.
func (r *postgresLangTagRepository) NamesExisting(ctx context.Context, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Select("name").
		From("lang_tags").
		Where(sq.Eq{"name": names}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lang tag name lookup: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.WithError(err).Error("Failed to look up lang tag names")
		return nil, fmt.Errorf("failed to look up lang tag names: %w", err)
	}
	defer rows.Close()

	var existing []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan lang tag name: %w", err)
		}
		existing = append(existing, name)
	}
	return existing, rows.Err()
}

func (r *postgresLangTagRepository) Update(ctx context.Context, id int64, req domain.CreateLangTagRequest) (*domain.LangTag, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Update("lang_tags").
		Set("name", req.Name).
		Set("description", req.Description).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + langTagColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lang tag update: %w", err)
	}

	tag, err := scanLangTag(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrLangTagNotFound
		}
		log.WithError(err).WithField("lang_tag_id", id).Error("Failed to update lang tag")
		return nil, fmt.Errorf("failed to update lang tag: %w", err)
	}
	return tag, nil
}

func (r *postgresLangTagRepository) Delete(ctx context.Context, id int64) (*domain.LangTag, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Delete("lang_tags").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + langTagColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lang tag delete: %w", err)
	}

	tag, err := scanLangTag(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrLangTagNotFound
		}
		log.WithError(err).WithField("lang_tag_id", id).Error("Failed to delete lang tag")
		return nil, fmt.Errorf("failed to delete lang tag: %w", err)
	}
	return tag, nil
}

func scanLangTag(row *sql.Row) (*domain.LangTag, error) {
	var tag domain.LangTag
	err := row.Scan(&tag.ID, &tag.Name, &tag.Description, &tag.CreatedAt, &tag.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &tag, nil
}
