package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worknest-hq/worknest-backend-go/internal/domain/announcement"
	"github.com/worknest-hq/worknest-backend-go/internal/pkg/database"
)

type announcementRepository struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.Repository {
	return &announcementRepository{db: db}
}

const announcementColumns = "id, title, content, created_by, created_at"

func scanAnnouncement(row pgx.Row) (announcement.Announcement, error) {
	var a announcement.Announcement
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.CreatedBy, &a.CreatedAt)
	return a, err
}

// Create implements announcement.Repository.
func (r *announcementRepository) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO announcements (title, content, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, a.Title, a.Content, a.CreatedBy).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}

	return a, nil
}

// GetByID implements announcement.Repository.
func (r *announcementRepository) GetByID(ctx context.Context, id int64) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + announcementColumns + " FROM announcements WHERE id = $1"

	a, err := scanAnnouncement(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return announcement.Announcement{}, announcement.ErrAnnouncementNotFound
		}
		return announcement.Announcement{}, fmt.Errorf("failed to get announcement by ID: %w", err)
	}

	return a, nil
}

// List implements announcement.Repository.
func (r *announcementRepository) List(ctx context.Context) ([]announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + announcementColumns + " FROM announcements ORDER BY id DESC"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	var announcements []announcement.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		announcements = append(announcements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate announcements: %w", err)
	}

	return announcements, nil
}

// Update implements announcement.Repository.
func (r *announcementRepository) Update(ctx context.Context, a announcement.Announcement) error {
	q := GetQuerier(ctx, r.db)

	query := "UPDATE announcements SET title = $1, content = $2, created_by = $3 WHERE id = $4"

	tag, err := q.Exec(ctx, query, a.Title, a.Content, a.CreatedBy, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}

	return nil
}

// Delete implements announcement.Repository.
func (r *announcementRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM announcements WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}

	return nil
}
