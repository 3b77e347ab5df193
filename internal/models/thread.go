package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Thread is a topical grouping of stars sharing one emotion label.
type Thread struct {
	ID string `gorm:"primaryKey" json:"id"`
	// Emotion is fixed at creation; every star linked to the thread
	// carries the same label.
	Emotion string `gorm:"type:text;not null;index" json:"emotion"`
	// IsActive threads are the only candidates for new star assignment.
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ThreadStar links a star to the single thread it belongs to. The row is
// created once, together with the star, and never updated.
type ThreadStar struct {
	ID       string `gorm:"primaryKey" json:"id"`
	ThreadID string `gorm:"type:uuid;not null;index" json:"thread_id"`
	StarID   string `gorm:"type:uuid;not null;uniqueIndex" json:"star_id"`
}

func (t *Thread) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return
}

func (l *ThreadStar) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return
}
