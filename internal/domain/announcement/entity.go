package announcement

import (
	"time"
)

type Announcement struct {
	ID        int64
	Title     string
	Content   string
	CreatedBy string
	CreatedAt time.Time
}
