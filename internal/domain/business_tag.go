package domain

import (
	"errors"
	"time"
)

var (
	ErrBusinessTagNotFound = errors.New("business tag not found")
)

// BusinessTag groups related translation entries.
type BusinessTag struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateBusinessTagRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
