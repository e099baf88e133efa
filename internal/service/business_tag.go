package service

import (
	"context"

	"translation-service/internal/domain"

	log "github.com/sirupsen/logrus"
)

type BusinessTagRepository interface {
	Create(ctx context.Context, req domain.CreateBusinessTagRequest) (*domain.BusinessTag, error)
	GetByID(ctx context.Context, id int64) (*domain.BusinessTag, error)
	List(ctx context.Context, limit, offset int) ([]domain.BusinessTag, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, id int64, req domain.CreateBusinessTagRequest) (*domain.BusinessTag, error)
	Delete(ctx context.Context, id int64) (*domain.BusinessTag, error)
}

type businessTagService struct {
	businessTagRepo BusinessTagRepository
}

func NewBusinessTagService(businessTagRepo BusinessTagRepository) *businessTagService {
	return &businessTagService{businessTagRepo: businessTagRepo}
}

func (s *businessTagService) Create(ctx context.Context, req domain.CreateBusinessTagRequest) (*domain.BusinessTag, error) {
	tag, err := s.businessTagRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"business_tag_id": tag.ID,
		"name":            tag.Name,
	}).Info("Business tag created")
	return tag, nil
}

func (s *businessTagService) GetByID(ctx context.Context, id int64) (*domain.BusinessTag, error) {
	return s.businessTagRepo.GetByID(ctx, id)
}

func (s *businessTagService) List(ctx context.Context, page, pageSize int) (*domain.Page[domain.BusinessTag], error) {
	page, pageSize = domain.ClampPage(page, pageSize)

	tags, err := s.businessTagRepo.List(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.businessTagRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Page[domain.BusinessTag]{
		Data:       tags,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: domain.TotalPages(total, pageSize),
	}, nil
}

func (s *businessTagService) Update(ctx context.Context, id int64, req domain.CreateBusinessTagRequest) (*domain.BusinessTag, error) {
	return s.businessTagRepo.Update(ctx, id, req)
}

func (s *businessTagService) Delete(ctx context.Context, id int64) (*domain.BusinessTag, error) {
	tag, err := s.businessTagRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	log.WithField("business_tag_id", tag.ID).Info("Business tag deleted")
	return tag, nil
}
