package announcement

import (
	"context"
)

// Repository - interface for the announcements table
type Repository interface {
	Create(ctx context.Context, a Announcement) (Announcement, error)
	GetByID(ctx context.Context, id int64) (Announcement, error)
	List(ctx context.Context) ([]Announcement, error)
	Update(ctx context.Context, a Announcement) error
	Delete(ctx context.Context, id int64) error
}
