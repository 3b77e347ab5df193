package threads

import (
	"unsent/backend/internal/config"
	"unsent/backend/internal/models"
	"unsent/backend/internal/storage"

	"github.com/google/uuid"
)

// Assigner places new stars into topical threads. It is stateless between
// calls; all thread and star data comes from storage on each assignment.
//
// Two concurrent assignments with near-identical text can each miss the
// other's uncommitted thread and both create one. That race is accepted;
// threads converge as later stars attach to whichever thread scores best.
type Assigner struct {
	Storage storage.Storage
}

func NewAssigner(s storage.Storage) *Assigner {
	return &Assigner{Storage: s}
}

// Assign returns the ID of the thread the text belongs to, creating a new
// thread when no active thread of the same emotion matches above the
// similarity threshold. Any storage error aborts the assignment; no thread
// is created on a partial failure.
func (a *Assigner) Assign(text, emotion string) (string, error) {
	candidates, err := a.Storage.ListActiveThreadsByEmotion(emotion)
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return a.createThread(emotion)
	}

	// Pool every linked star text, remembering which thread each came from.
	var texts []string
	var owners []string
	for _, t := range candidates {
		threadTexts, err := a.Storage.ListThreadTexts(t.ID)
		if err != nil {
			return "", err
		}
		for _, tt := range threadTexts {
			texts = append(texts, tt)
			owners = append(owners, t.ID)
		}
	}

	// Threads exist but none has a linked star yet (transient state while
	// another submission is mid-commit). Start fresh.
	if len(texts) == 0 {
		return a.createThread(emotion)
	}

	best, score := BestMatch(text, texts)
	if score >= config.SimilarityThreshold {
		return owners[best], nil
	}
	return a.createThread(emotion)
}

func (a *Assigner) createThread(emotion string) (string, error) {
	thread := &models.Thread{
		ID:       uuid.New().String(),
		Emotion:  emotion,
		IsActive: true,
	}
	if err := a.Storage.CreateThread(thread); err != nil {
		return "", err
	}
	return thread.ID, nil
}
