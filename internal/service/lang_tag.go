package service

import (
	"context"

	"translation-service/internal/domain"

	log "github.com/sirupsen/logrus"
)

type LangTagRepository interface {
	Create(ctx context.Context, req domain.CreateLangTagRequest) (*domain.LangTag, error)
	GetByID(ctx context.Context, id int64) (*domain.LangTag, error)
	List(ctx context.Context, limit, offset int) ([]domain.LangTag, error)
	Count(ctx context.Context) (int, error)
	NamesExisting(ctx context.Context, names []string) ([]string, error)
	Update(ctx context.Context, id int64, req domain.CreateLangTagRequest) (*domain.LangTag, error)
	Delete(ctx context.Context, id int64) (*domain.LangTag, error)
}

type langTagService struct {
	langTagRepo LangTagRepository
}

func NewLangTagService(langTagRepo LangTagRepository) *langTagService {
	return &langTagService{langTagRepo: langTagRepo}
}

func (s *langTagService) Create(ctx context.Context, req domain.CreateLangTagRequest) (*domain.LangTag, error) {
	tag, err := s.langTagRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"lang_tag_id": tag.ID,
		"name":        tag.Name,
	}).Info("Lang tag created")
	return tag, nil
}

func (s *langTagService) GetByID(ctx context.Context, id int64) (*domain.LangTag, error) {
	return s.langTagRepo.GetByID(ctx, id)
}

func (s *langTagService) List(ctx context.Context, page, pageSize int) (*domain.Page[domain.LangTag], error) {
	page, pageSize = domain.ClampPage(page, pageSize)

	tags, err := s.langTagRepo.List(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.langTagRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Page[domain.LangTag]{
		Data:       tags,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: domain.TotalPages(total, pageSize),
	}, nil
}

func (s *langTagService) Update(ctx context.Context, id int64, req domain.CreateLangTagRequest) (*domain.LangTag, error) {
	return s.langTagRepo.Update(ctx, id, req)
}

// Delete removes a lang tag without touching translations that still use its
// name. Stale language keys in existing content maps are an accepted
// inconsistency; they are only rechecked on the next write.
func (s *langTagService) Delete(ctx context.Context, id int64) (*domain.LangTag, error) {
	tag, err := s.langTagRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"lang_tag_id": tag.ID,
		"name":        tag.Name,
	}).Info("Lang tag deleted")
	return tag, nil
}
