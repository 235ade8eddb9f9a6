package announcement

import (
	"github.com/worknest-hq/worknest-backend-go/internal/pkg/validator"
)

// UpsertRequest is the body of POST /announcements and PUT /announcements/{id}.
type UpsertRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedBy string `json:"created_by"`
}

func (r UpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title == "" {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if r.Content == "" {
		errs = append(errs, validator.ValidationError{Field: "content", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type View struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedBy string `json:"created_by"`
}

func NewView(a Announcement) View {
	return View{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		CreatedBy: a.CreatedBy,
	}
}

func NewViews(announcements []Announcement) []View {
	views := make([]View, 0, len(announcements))
	for _, a := range announcements {
		views = append(views, NewView(a))
	}
	return views
}
