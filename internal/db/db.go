// Package db defines the storage types and repository interface for
// translation history.
package db

import (
	"context"
	"time"
)

// Translation is one recorded transliteration request and its result.
type Translation struct {
	ID        int64     `json:"id"`
	Source    string    `json:"source"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateTranslationParams struct {
	Source string
	Input  string
	Output string
}

// Repository is the persistence surface used by the web and bot layers.
type Repository interface {
	CreateTranslation(ctx context.Context, params CreateTranslationParams) (Translation, error)
	GetTranslation(ctx context.Context, id int64) (Translation, error)
	ListTranslations(ctx context.Context, limit int) ([]Translation, error)
	Close() error
}
