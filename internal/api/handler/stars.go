package handler

import (
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"unsent/backend/internal/config"
	"unsent/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Health check.
func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "unsent backend alive")
}

type submitRequest struct {
	Text string `json:"text"`
}

// SubmitStar accepts a new anonymous message: classifies its emotion,
// assigns it to a thread, then persists the star and its thread linkage.
// If assignment fails nothing is written.
func (h *Handler) SubmitStar(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing text"})
		return
	}

	text := strings.TrimSpace(req.Text)
	if runes := []rune(text); len(runes) > config.MaxStarTextLength {
		text = string(runes[:config.MaxStarTextLength])
	}
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing text"})
		return
	}

	emotion, score := h.Sentiment.Classify(text)

	threadID, err := h.Assigner.Assign(text, emotion)
	if err != nil {
		log.Printf("ERROR: Thread assignment failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	star := &models.Star{
		ID:           uuid.New().String(),
		Text:         text,
		Emotion:      emotion,
		EmotionScore: score,
		Language:     "unknown",
		// Display coordinates only; nothing about the sender is stored.
		Lat:      randomInRange(config.LatMin, config.LatMax),
		Lng:      randomInRange(config.LngMin, config.LngMax),
		ThreadID: threadID,
	}

	if err := h.Storage.SaveStar(star); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.Storage.LinkStarToThread(threadID, star.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"id":        star.ID,
		"thread_id": threadID,
	})
}

// ListStars returns every persisted star.
func (h *Handler) ListStars(c *gin.Context) {
	stars, err := h.Storage.ListStars()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stars)
}

// GetThreadForStar returns the thread a star was assigned to.
func (h *Handler) GetThreadForStar(c *gin.Context) {
	star, err := h.Storage.GetStarByID(c.Param("star_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if star == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Star not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"thread_id": star.ThreadID})
}

// CleanupStars deletes stars older than the configured TTL.
func (h *Handler) CleanupStars(c *gin.Context) {
	cutoff := time.Now().UTC().Add(-config.StarTTL)
	deleted, err := h.Storage.DeleteStarsOlderThan(cutoff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "deleted": deleted})
}

func randomInRange(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}
