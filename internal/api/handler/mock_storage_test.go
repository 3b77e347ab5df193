package handler_test

import (
	"time"

	"unsent/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SaveStar(star *models.Star) error {
	return m.Called(star).Error(0)
}

func (m *MockStorage) GetStarByID(id string) (*models.Star, error) {
	args := m.Called(id)
	var star *models.Star
	if args.Get(0) != nil {
		star = args.Get(0).(*models.Star)
	}
	return star, args.Error(1)
}

func (m *MockStorage) ListStars() ([]models.Star, error) {
	args := m.Called()
	var stars []models.Star
	if args.Get(0) != nil {
		stars = args.Get(0).([]models.Star)
	}
	return stars, args.Error(1)
}

func (m *MockStorage) DeleteStarsOlderThan(cutoff time.Time) (int64, error) {
	args := m.Called(cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) CreateThread(thread *models.Thread) error {
	return m.Called(thread).Error(0)
}

func (m *MockStorage) DeactivateThread(threadID string) error {
	return m.Called(threadID).Error(0)
}

func (m *MockStorage) ListActiveThreadsByEmotion(emotion string) ([]models.Thread, error) {
	args := m.Called(emotion)
	var ts []models.Thread
	if args.Get(0) != nil {
		ts = args.Get(0).([]models.Thread)
	}
	return ts, args.Error(1)
}

func (m *MockStorage) LinkStarToThread(threadID, starID string) error {
	return m.Called(threadID, starID).Error(0)
}

func (m *MockStorage) ListThreadTexts(threadID string) ([]string, error) {
	args := m.Called(threadID)
	var texts []string
	if args.Get(0) != nil {
		texts = args.Get(0).([]string)
	}
	return texts, args.Error(1)
}
