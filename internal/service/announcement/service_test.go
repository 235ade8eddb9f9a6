package announcement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worknest-hq/worknest-backend-go/internal/domain/announcement"
	"github.com/worknest-hq/worknest-backend-go/internal/pkg/validator"
)

type fakeAnnouncementRepo struct {
	announcements map[int64]announcement.Announcement
	nextID        int64
}

func newFakeAnnouncementRepo() *fakeAnnouncementRepo {
	return &fakeAnnouncementRepo{announcements: make(map[int64]announcement.Announcement), nextID: 1}
}

func (f *fakeAnnouncementRepo) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	a.ID = f.nextID
	f.nextID++
	f.announcements[a.ID] = a
	return a, nil
}

func (f *fakeAnnouncementRepo) GetByID(ctx context.Context, id int64) (announcement.Announcement, error) {
	a, ok := f.announcements[id]
	if !ok {
		return announcement.Announcement{}, announcement.ErrAnnouncementNotFound
	}
	return a, nil
}

func (f *fakeAnnouncementRepo) List(ctx context.Context) ([]announcement.Announcement, error) {
	var out []announcement.Announcement
	for _, a := range f.announcements {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAnnouncementRepo) Update(ctx context.Context, a announcement.Announcement) error {
	if _, ok := f.announcements[a.ID]; !ok {
		return announcement.ErrAnnouncementNotFound
	}
	f.announcements[a.ID] = a
	return nil
}

func (f *fakeAnnouncementRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.announcements[id]; !ok {
		return announcement.ErrAnnouncementNotFound
	}
	delete(f.announcements, id)
	return nil
}

func validAnnouncementRequest() announcement.UpsertRequest {
	return announcement.UpsertRequest{
		Title:     "Office closed Friday",
		Content:   "The office is closed this Friday for the company outing.",
		CreatedBy: "HR Admin",
	}
}

func TestAnnouncementService_Create(t *testing.T) {
	ctx := context.Background()
	svc := NewAnnouncementService(newFakeAnnouncementRepo())

	view, err := svc.Create(ctx, validAnnouncementRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), view.ID)
	assert.Equal(t, "Office closed Friday", view.Title)
	assert.Equal(t, "HR Admin", view.CreatedBy)
}

func TestAnnouncementService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*announcement.UpsertRequest)
		field  string
	}{
		{"missing title", func(r *announcement.UpsertRequest) { r.Title = "" }, "title"},
		{"missing content", func(r *announcement.UpsertRequest) { r.Content = "" }, "content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validAnnouncementRequest()
			tt.mutate(&req)

			_, err := NewAnnouncementService(newFakeAnnouncementRepo()).Create(context.Background(), req)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Equal(t, tt.field, errs[0].Field)
		})
	}
}

func TestAnnouncementService_GetAndList(t *testing.T) {
	ctx := context.Background()
	svc := NewAnnouncementService(newFakeAnnouncementRepo())

	created, err := svc.Create(ctx, validAnnouncementRequest())
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	views, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, views, 1)
}

func TestAnnouncementService_Get_NotFound(t *testing.T) {
	svc := NewAnnouncementService(newFakeAnnouncementRepo())

	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, announcement.ErrAnnouncementNotFound)
}

func TestAnnouncementService_Update(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAnnouncementRepo()
	svc := NewAnnouncementService(repo)

	created, err := svc.Create(ctx, validAnnouncementRequest())
	require.NoError(t, err)

	req := validAnnouncementRequest()
	req.Title = "Office closed Friday (updated)"
	view, err := svc.Update(ctx, created.ID, req)
	require.NoError(t, err)

	assert.Equal(t, "Office closed Friday (updated)", view.Title)
	assert.Equal(t, "Office closed Friday (updated)", repo.announcements[created.ID].Title)
}

func TestAnnouncementService_Update_NotFound(t *testing.T) {
	svc := NewAnnouncementService(newFakeAnnouncementRepo())

	_, err := svc.Update(context.Background(), 99, validAnnouncementRequest())
	assert.ErrorIs(t, err, announcement.ErrAnnouncementNotFound)
}

func TestAnnouncementService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAnnouncementRepo()
	svc := NewAnnouncementService(repo)

	created, err := svc.Create(ctx, validAnnouncementRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Empty(t, repo.announcements)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), announcement.ErrAnnouncementNotFound)
}
