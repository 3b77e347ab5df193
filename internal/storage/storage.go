package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"unsent/backend/internal/config"
	"unsent/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Storage is the persistence collaborator consumed by the HTTP layer, the
// thread assigner and the hub. Presence, pending requests and session
// membership are deliberately not here; they live in memory only.
type Storage interface {
	SaveStar(star *models.Star) error
	GetStarByID(id string) (*models.Star, error)
	ListStars() ([]models.Star, error)
	DeleteStarsOlderThan(cutoff time.Time) (int64, error)

	CreateThread(thread *models.Thread) error
	DeactivateThread(threadID string) error
	ListActiveThreadsByEmotion(emotion string) ([]models.Thread, error)
	LinkStarToThread(threadID, starID string) error
	ListThreadTexts(threadID string) ([]string, error)
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor. The redis client may be nil (admin CLI);
// the listing cache is then skipped entirely.
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// SaveStar persists a new star and drops the listing cache.
func (s *Service) SaveStar(star *models.Star) error {
	if err := s.DB.Create(star).Error; err != nil {
		log.Printf("ERROR: Failed to save star %s: %v", star.ID, err)
		return err
	}
	s.invalidateStarsCache()
	return nil
}

// GetStarByID returns the star with the given ID, or nil without an error
// when no such row exists.
func (s *Service) GetStarByID(id string) (*models.Star, error) {
	var star models.Star
	err := s.DB.First(&star, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &star, nil
}

// ListStars returns every persisted star, newest first. Results are served
// from a short-lived redis cache when one is configured; a cache failure
// falls through to the database.
func (s *Service) ListStars() ([]models.Star, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(s.Ctx, config.StarsCacheKey).Result()
		if err == nil {
			var stars []models.Star
			if err := json.Unmarshal([]byte(cached), &stars); err == nil {
				return stars, nil
			}
			// Unreadable cache entry; rebuild it below.
			s.invalidateStarsCache()
		} else if !errors.Is(err, redis.Nil) {
			log.Printf("WARNING: stars cache read failed: %v", err)
		}
	}

	var stars []models.Star
	if err := s.DB.Order("created_at desc").Find(&stars).Error; err != nil {
		log.Printf("ERROR: Failed to list stars: %v", err)
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(stars); err == nil {
			if err := s.Redis.Set(s.Ctx, config.StarsCacheKey, data, config.StarsCacheTTL).Err(); err != nil {
				log.Printf("WARNING: stars cache write failed: %v", err)
			}
		}
	}
	return stars, nil
}

// DeleteStarsOlderThan removes stars created before the cutoff together with
// their thread linkage rows, and returns the number of stars deleted.
func (s *Service) DeleteStarsOlderThan(cutoff time.Time) (int64, error) {
	sub := s.DB.Model(&models.Star{}).Select("id").Where("created_at < ?", cutoff)
	if err := s.DB.Where("star_id IN (?)", sub).Delete(&models.ThreadStar{}).Error; err != nil {
		log.Printf("ERROR: Failed to delete stale thread links: %v", err)
		return 0, err
	}

	res := s.DB.Where("created_at < ?", cutoff).Delete(&models.Star{})
	if res.Error != nil {
		log.Printf("ERROR: Failed to delete stale stars: %v", res.Error)
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		s.invalidateStarsCache()
	}
	return res.RowsAffected, nil
}

func (s *Service) CreateThread(thread *models.Thread) error {
	return s.DB.Create(thread).Error
}

// DeactivateThread flips IsActive off so the assigner no longer considers
// the thread for new stars. Existing linkage rows are untouched.
func (s *Service) DeactivateThread(threadID string) error {
	return s.DB.Model(&models.Thread{}).
		Where("id = ?", threadID).
		Update("is_active", false).Error
}

func (s *Service) ListActiveThreadsByEmotion(emotion string) ([]models.Thread, error) {
	var threads []models.Thread
	err := s.DB.Where("emotion = ? AND is_active = ?", emotion, true).
		Order("created_at asc").
		Find(&threads).Error
	if err != nil {
		log.Printf("ERROR: Failed to list threads for emotion %q: %v", emotion, err)
		return nil, err
	}
	return threads, nil
}

func (s *Service) LinkStarToThread(threadID, starID string) error {
	link := models.ThreadStar{ThreadID: threadID, StarID: starID}
	if err := s.DB.Create(&link).Error; err != nil {
		log.Printf("ERROR: Failed to link star %s to thread %s: %v", starID, threadID, err)
		return err
	}
	return nil
}

// ListThreadTexts returns the texts of all stars linked to the thread, in
// creation order. An empty slice and no error means the thread has no linked
// stars yet.
func (s *Service) ListThreadTexts(threadID string) ([]string, error) {
	var texts []string
	err := s.DB.Model(&models.Star{}).
		Joins("JOIN thread_stars ON thread_stars.star_id = stars.id").
		Where("thread_stars.thread_id = ?", threadID).
		Order("stars.created_at asc").
		Pluck("stars.text", &texts).Error
	if err != nil {
		log.Printf("ERROR: Failed to load texts for thread %s: %v", threadID, err)
		return nil, err
	}
	return texts, nil
}

func (s *Service) invalidateStarsCache() {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(s.Ctx, config.StarsCacheKey).Err(); err != nil {
		log.Printf("WARNING: Failed to invalidate stars cache: %v", err)
	}
}
