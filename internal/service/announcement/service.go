package announcement

import (
	"context"

	"github.com/worknest-hq/worknest-backend-go/internal/domain/announcement"
)

type AnnouncementServiceImpl struct {
	announcementRepo announcement.Repository
}

func NewAnnouncementService(announcementRepo announcement.Repository) announcement.Service {
	return &AnnouncementServiceImpl{
		announcementRepo: announcementRepo,
	}
}

// Create implements announcement.Service.
func (s *AnnouncementServiceImpl) Create(ctx context.Context, req announcement.UpsertRequest) (announcement.View, error) {
	if err := req.Validate(); err != nil {
		return announcement.View{}, err
	}

	created, err := s.announcementRepo.Create(ctx, announcementFromRequest(req))
	if err != nil {
		return announcement.View{}, err
	}

	return announcement.NewView(created), nil
}

// Get implements announcement.Service.
func (s *AnnouncementServiceImpl) Get(ctx context.Context, id int64) (announcement.View, error) {
	a, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return announcement.View{}, err
	}
	return announcement.NewView(a), nil
}

// List implements announcement.Service.
func (s *AnnouncementServiceImpl) List(ctx context.Context) ([]announcement.View, error) {
	announcements, err := s.announcementRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return announcement.NewViews(announcements), nil
}

// Update implements announcement.Service.
func (s *AnnouncementServiceImpl) Update(ctx context.Context, id int64, req announcement.UpsertRequest) (announcement.View, error) {
	if err := req.Validate(); err != nil {
		return announcement.View{}, err
	}

	a := announcementFromRequest(req)
	a.ID = id
	if err := s.announcementRepo.Update(ctx, a); err != nil {
		return announcement.View{}, err
	}

	return announcement.NewView(a), nil
}

// Delete implements announcement.Service.
func (s *AnnouncementServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.announcementRepo.Delete(ctx, id)
}

func announcementFromRequest(req announcement.UpsertRequest) announcement.Announcement {
	return announcement.Announcement{
		Title:     req.Title,
		Content:   req.Content,
		CreatedBy: req.CreatedBy,
	}
}
