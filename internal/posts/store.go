package posts

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, p *Post) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *Store) List(ctx context.Context) ([]Post, error) {
	var out []Post
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
