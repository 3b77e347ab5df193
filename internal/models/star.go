package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Star is a persisted anonymous message. Once written it is immutable apart
// from its resonance counter; presence (which live connection currently
// claims it) is tracked in memory only and never stored here.
type Star struct {
	// ID is the unique identifier for the star (UUID).
	ID string `gorm:"primaryKey" json:"id"`
	// Text is the anonymous message body, capped at submission time.
	Text string `gorm:"type:text;not null" json:"text"`
	// Emotion is the label assigned by the sentiment classifier.
	Emotion string `gorm:"type:text;not null;index" json:"emotion"`
	// EmotionScore is the raw polarity the label was derived from.
	EmotionScore float64 `json:"emotion_score"`
	// Language of the original text; "unknown" when not detected.
	Language string `gorm:"type:text" json:"language"`
	// ResonanceCount is how many visitors marked the star as resonating.
	ResonanceCount int `json:"resonance_count"`
	// Lat and Lng are randomized display coordinates, not user locations.
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
	// ThreadID links the star to its topical thread.
	ThreadID  string    `gorm:"type:uuid;not null;index" json:"thread_id"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate is a GORM hook that assigns a fresh UUID when the ID has not
// been set by the caller.
func (s *Star) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
