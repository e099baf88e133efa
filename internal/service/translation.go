package service

import (
	"context"

	"translation-service/internal/domain"

	log "github.com/sirupsen/logrus"
)

type TranslationRepository interface {
	Create(ctx context.Context, req domain.CreateTranslationRequest) (*domain.Translation, error)
	GetByID(ctx context.Context, id int64) (*domain.Translation, error)
	List(ctx context.Context) ([]domain.Translation, error)
	Update(ctx context.Context, id int64, req domain.CreateTranslationRequest) (*domain.Translation, error)
	Delete(ctx context.Context, id int64) (*domain.Translation, error)
}

// LangTagNames is the slice of the language registry the validator needs:
// a single batched existence check over tag names.
type LangTagNames interface {
	NamesExisting(ctx context.Context, names []string) ([]string, error)
}

type translationService struct {
	translationRepo TranslationRepository
	langTagNames    LangTagNames
}

func NewTranslationService(translationRepo TranslationRepository, langTagNames LangTagNames) *translationService {
	return &translationService{
		translationRepo: translationRepo,
		langTagNames:    langTagNames,
	}
}

// validateLanguageKeys enforces that every language key used anywhere in the
// content map is the name of a registered lang tag. Keys are compared by
// exact string equality; no normalization is performed. A failed validation
// must prevent any write, so this runs before both create and update.
func (s *translationService) validateLanguageKeys(ctx context.Context, content domain.TranslationContent) error {
	used := content.LanguageKeys()
	if len(used) == 0 {
		return domain.ErrEmptyTranslationContent
	}

	existing, err := s.langTagNames.NamesExisting(ctx, used)
	if err != nil {
		return err
	}

	known := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		known[name] = struct{}{}
	}

	var invalid []string
	for _, key := range used {
		if _, ok := known[key]; !ok {
			invalid = append(invalid, key)
		}
	}
	if len(invalid) > 0 {
		return &domain.InvalidLanguageKeysError{Keys: invalid}
	}
	return nil
}

func (s *translationService) Create(ctx context.Context, req domain.CreateTranslationRequest) (*domain.Translation, error) {
	if err := s.validateLanguageKeys(ctx, req.Translations); err != nil {
		return nil, err
	}

	entry, err := s.translationRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"translation_id":  entry.ID,
		"business_tag_id": entry.BusinessTagID,
	}).Info("Translation created")
	return entry, nil
}

func (s *translationService) GetByID(ctx context.Context, id int64) (*domain.Translation, error) {
	return s.translationRepo.GetByID(ctx, id)
}

func (s *translationService) List(ctx context.Context) ([]domain.Translation, error) {
	return s.translationRepo.List(ctx)
}

func (s *translationService) Update(ctx context.Context, id int64, req domain.CreateTranslationRequest) (*domain.Translation, error) {
	if err := s.validateLanguageKeys(ctx, req.Translations); err != nil {
		return nil, err
	}

	entry, err := s.translationRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	log.WithField("translation_id", entry.ID).Info("Translation updated")
	return entry, nil
}

func (s *translationService) Delete(ctx context.Context, id int64) (*domain.Translation, error) {
	return s.translationRepo.Delete(ctx, id)
}
