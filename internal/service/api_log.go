package service

import (
	"context"
	"time"

	"translation-service/internal/domain"

	log "github.com/sirupsen/logrus"
)

// Entries older than this are eligible for the clear-old purge.
const apiLogRetention = 6 // months

const pathStatsLimit = 10

type ApiLogRepository interface {
	Insert(ctx context.Context, path, method string, operator *string) error
	List(ctx context.Context, limit, offset int) ([]domain.ApiLog, error)
	Count(ctx context.Context) (int, error)
	CountOlderThan(ctx context.Context, cutoff time.Time) (int, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) error
	DeleteAll(ctx context.Context) error
	CountByMethod(ctx context.Context) ([]domain.MethodCount, error)
	CountByPath(ctx context.Context, limit int) ([]domain.PathCount, error)
}

type apiLogService struct {
	apiLogRepo ApiLogRepository
	now        func() time.Time
}

func NewApiLogService(apiLogRepo ApiLogRepository) *apiLogService {
	return &apiLogService{
		apiLogRepo: apiLogRepo,
		now:        time.Now,
	}
}

// Record appends one audit entry. Called from the audit middleware after the
// response has been finalized.
func (s *apiLogService) Record(ctx context.Context, path, method string, operator *string) error {
	return s.apiLogRepo.Insert(ctx, path, method, operator)
}

func (s *apiLogService) List(ctx context.Context, page, pageSize int) (*domain.Page[domain.ApiLog], error) {
	page, pageSize = domain.ClampPage(page, pageSize)

	entries, err := s.apiLogRepo.List(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.apiLogRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Page[domain.ApiLog]{
		Data:       entries,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: domain.TotalPages(total, pageSize),
	}, nil
}

// ClearOld deletes entries whose operated_at is strictly before now minus the
// retention window and returns how many were deleted. When the count is zero
// the delete statement is skipped.
func (s *apiLogService) ClearOld(ctx context.Context) (int, error) {
	cutoff := s.now().AddDate(0, -apiLogRetention, 0)

	count, err := s.apiLogRepo.CountOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}

	if err := s.apiLogRepo.DeleteOlderThan(ctx, cutoff); err != nil {
		return 0, err
	}

	log.WithField("deleted_count", count).Info("Old api logs cleared")
	return count, nil
}

// ClearAll deletes every entry and returns the prior total.
func (s *apiLogService) ClearAll(ctx context.Context) (int, error) {
	count, err := s.apiLogRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}

	if err := s.apiLogRepo.DeleteAll(ctx); err != nil {
		return 0, err
	}

	log.WithField("deleted_count", count).Info("All api logs cleared")
	return count, nil
}

func (s *apiLogService) Stats(ctx context.Context) (*domain.ApiLogStats, error) {
	byMethod, err := s.apiLogRepo.CountByMethod(ctx)
	if err != nil {
		return nil, err
	}
	byPath, err := s.apiLogRepo.CountByPath(ctx, pathStatsLimit)
	if err != nil {
		return nil, err
	}
	return &domain.ApiLogStats{ByMethod: byMethod, ByPath: byPath}, nil
}
