package domain

import (
	"errors"
	"time"
)

var (
	ErrLangTagNotFound = errors.New("language tag not found")
)

// LangTag is a registered language key, e.g. "en" or "zh". Its name is the
// value translation content maps are validated against.
type LangTag struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateLangTagRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
