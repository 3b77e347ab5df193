package starhub_test

import (
	"time"

	"unsent/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockStorage is a testify mock of the storage.Storage interface. The hub
// only calls GetStarByID, but the full interface is implemented so the mock
// satisfies storage.Storage.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SaveStar(star *models.Star) error {
	args := m.Called(star)
	return args.Error(0)
}

func (m *MockStorage) GetStarByID(id string) (*models.Star, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Star), args.Error(1)
}

func (m *MockStorage) ListStars() ([]models.Star, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Star), args.Error(1)
}

func (m *MockStorage) DeleteStarsOlderThan(cutoff time.Time) (int64, error) {
	args := m.Called(cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) CreateThread(thread *models.Thread) error {
	args := m.Called(thread)
	return args.Error(0)
}

func (m *MockStorage) DeactivateThread(threadID string) error {
	args := m.Called(threadID)
	return args.Error(0)
}

func (m *MockStorage) ListActiveThreadsByEmotion(emotion string) ([]models.Thread, error) {
	args := m.Called(emotion)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Thread), args.Error(1)
}

func (m *MockStorage) LinkStarToThread(threadID, starID string) error {
	args := m.Called(threadID, starID)
	return args.Error(0)
}

func (m *MockStorage) ListThreadTexts(threadID string) ([]string, error) {
	args := m.Called(threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
