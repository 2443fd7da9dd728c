package repository

import (
	"satori_dojo/internal/pocketbase"
)

type Repository struct {
	Content ContentRepository
	News    NewsRepository
}

func NewRepository(client *pocketbase.Client) *Repository {
	content := NewContentRepository(client)

	return &Repository{
		Content: content,
		News:    content,
	}
}
