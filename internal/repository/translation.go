package repository

import (
	"context"
	"database/sql"
	"fmt"

	"translation-service/internal/domain"

	sq "github.com/Masterminds/squirrel"
	log "github.com/sirupsen/logrus"
)

const translationColumns = "id, name, description, business_tag_id, translations"

type postgresTranslationRepository struct {
	db *sql.DB
}

func NewPostgresTranslationRepository(db *sql.DB) *postgresTranslationRepository {
	return &postgresTranslationRepository{db: db}
}

func (r *postgresTranslationRepository) Create(ctx context.Context, req domain.CreateTranslationRequest) (*domain.Translation, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Insert("translation").
		Columns("name", "description", "business_tag_id", "translations").
		Values(req.Name, req.Description, req.BusinessTagID, req.Translations).
		Suffix("RETURNING " + translationColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build translation insert: %w", err)
	}

	entry, err := scanTranslation(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.WithError(err).WithField("name", req.Name).Error("Failed to create translation")
		return nil, fmt.Errorf("failed to create translation: %w", err)
	}
	return entry, nil
}

func (r *postgresTranslationRepository) GetByID(ctx context.Context, id int64) (*domain.Translation, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Select(translationColumns).
		From("translation").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build translation select: %w", err)
	}

	entry, err := scanTranslation(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrTranslationNotFound
		}
		log.WithError(err).WithField("translation_id", id).Error("Failed to get translation")
		return nil, fmt.Errorf("failed to get translation: %w", err)
	}
	return entry, nil
}

func (r *postgresTranslationRepository) List(ctx context.Context) ([]domain.Translation, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Select(translationColumns).
		From("translation").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build translation list: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.WithError(err).Error("Failed to list translations")
		return nil, fmt.Errorf("failed to list translations: %w", err)
	}
	defer rows.Close()

	var entries []domain.Translation
	for rows.Next() {
		var entry domain.Translation
		err := rows.Scan(&entry.ID, &entry.Name, &entry.Description, &entry.BusinessTagID, &entry.Translations)
		if err != nil {
			return nil, fmt.Errorf("failed to scan translation row: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *postgresTranslationRepository) Update(ctx context.Context, id int64, req domain.CreateTranslationRequest) (*domain.Translation, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Update("translation").
		Set("name", req.Name).
		Set("description", req.Description).
		Set("business_tag_id", req.BusinessTagID).
		Set("translations", req.Translations).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + translationColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build translation update: %w", err)
	}

	entry, err := scanTranslation(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrTranslationNotFound
		}
		log.WithError(err).WithField("translation_id", id).Error("Failed to update translation")
		return nil, fmt.Errorf("failed to update translation: %w", err)
	}
	return entry, nil
}

func (r *postgresTranslationRepository) Delete(ctx context.Context, id int64) (*domain.Translation, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := psql.Delete("translation").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + translationColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build translation delete: %w", err)
	}

	entry, err := scanTranslation(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrTranslationNotFound
		}
		log.WithError(err).WithField("translation_id", id).Error("Failed to delete translation")
		return nil, fmt.Errorf("failed to delete translation: %w", err)
	}
	return entry, nil
}

func scanTranslation(row *sql.Row) (*domain.Translation, error) {
	var entry domain.Translation
	err := row.Scan(&entry.ID, &entry.Name, &entry.Description, &entry.BusinessTagID, &entry.Translations)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
