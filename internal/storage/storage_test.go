package storage_test

import (
	"testing"
	"time"

	"unsent/backend/internal/models"
	"unsent/backend/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Star{}, &models.Thread{}, &models.ThreadStar{}))
	return db
}

func newTestService(t *testing.T) (*storage.Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return storage.NewStorageService(newTestDB(t), rdb), mr
}

func TestSaveAndGetStar(t *testing.T) {
	s, _ := newTestService(t)

	star := &models.Star{
		Text:     "i never told you",
		Emotion:  "regret",
		Language: "unknown",
		ThreadID: "thread_1",
	}
	require.NoError(t, s.SaveStar(star))
	require.NotEmpty(t, star.ID, "BeforeCreate must assign an ID")

	got, err := s.GetStarByID(star.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "i never told you", got.Text)
	assert.Equal(t, "regret", got.Emotion)
}

func TestGetStarByIDNotFound(t *testing.T) {
	s, _ := newTestService(t)

	got, err := s.GetStarByID("nonexistent")

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestListStarsNewestFirst(t *testing.T) {
	s, _ := newTestService(t)

	now := time.Now().UTC()
	older := &models.Star{Text: "older", Emotion: "hope", ThreadID: "t1", CreatedAt: now.Add(-time.Hour)}
	newer := &models.Star{Text: "newer", Emotion: "hope", ThreadID: "t1", CreatedAt: now}
	require.NoError(t, s.SaveStar(older))
	require.NoError(t, s.SaveStar(newer))

	stars, err := s.ListStars()
	require.NoError(t, err)
	require.Len(t, stars, 2)
	assert.Equal(t, "newer", stars[0].Text)
	assert.Equal(t, "older", stars[1].Text)
}

func TestListStarsServedFromCache(t *testing.T) {
	s, _ := newTestService(t)

	star := &models.Star{Text: "cached", Emotion: "love", ThreadID: "t1"}
	require.NoError(t, s.SaveStar(star))

	first, err := s.ListStars()
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Bypass the service so the cache is not invalidated; the stale entry
	// must still be served.
	require.NoError(t, s.DB.Delete(&models.Star{}, "id = ?", star.ID).Error)

	second, err := s.ListStars()
	require.NoError(t, err)
	assert.Len(t, second, 1)
}

func TestSaveStarInvalidatesCache(t *testing.T) {
	s, _ := newTestService(t)

	require.NoError(t, s.SaveStar(&models.Star{Text: "first", Emotion: "love", ThreadID: "t1"}))
	_, err := s.ListStars()
	require.NoError(t, err)

	require.NoError(t, s.SaveStar(&models.Star{Text: "second", Emotion: "love", ThreadID: "t1"}))

	stars, err := s.ListStars()
	require.NoError(t, err)
	assert.Len(t, stars, 2)
}

func TestListStarsWithoutRedis(t *testing.T) {
	s := storage.NewStorageService(newTestDB(t), nil)

	require.NoError(t, s.SaveStar(&models.Star{Text: "plain", Emotion: "hope", ThreadID: "t1"}))

	stars, err := s.ListStars()
	require.NoError(t, err)
	assert.Len(t, stars, 1)
}

func TestDeleteStarsOlderThan(t *testing.T) {
	s, _ := newTestService(t)

	now := time.Now().UTC()
	stale := &models.Star{Text: "stale", Emotion: "grief", ThreadID: "t1", CreatedAt: now.Add(-48 * time.Hour)}
	fresh := &models.Star{Text: "fresh", Emotion: "grief", ThreadID: "t1", CreatedAt: now}
	require.NoError(t, s.SaveStar(stale))
	require.NoError(t, s.SaveStar(fresh))
	require.NoError(t, s.LinkStarToThread("t1", stale.ID))
	require.NoError(t, s.LinkStarToThread("t1", fresh.ID))

	deleted, err := s.DeleteStarsOlderThan(now.Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	stars, err := s.ListStars()
	require.NoError(t, err)
	require.Len(t, stars, 1)
	assert.Equal(t, "fresh", stars[0].Text)

	texts, err := s.ListThreadTexts("t1")
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, texts, "linkage rows of deleted stars must go too")
}

func TestDeleteStarsOlderThanNothingStale(t *testing.T) {
	s, _ := newTestService(t)

	require.NoError(t, s.SaveStar(&models.Star{Text: "fresh", Emotion: "grief", ThreadID: "t1", CreatedAt: time.Now().UTC()}))

	deleted, err := s.DeleteStarsOlderThan(time.Now().UTC().Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestListThreadTextsInCreationOrder(t *testing.T) {
	s, _ := newTestService(t)

	thread := &models.Thread{Emotion: "grief", IsActive: true}
	require.NoError(t, s.CreateThread(thread))

	now := time.Now().UTC()
	first := &models.Star{Text: "first", Emotion: "grief", ThreadID: thread.ID, CreatedAt: now.Add(-time.Minute)}
	second := &models.Star{Text: "second", Emotion: "grief", ThreadID: thread.ID, CreatedAt: now}
	other := &models.Star{Text: "other thread", Emotion: "grief", ThreadID: "elsewhere", CreatedAt: now}
	require.NoError(t, s.SaveStar(first))
	require.NoError(t, s.SaveStar(second))
	require.NoError(t, s.SaveStar(other))
	require.NoError(t, s.LinkStarToThread(thread.ID, first.ID))
	require.NoError(t, s.LinkStarToThread(thread.ID, second.ID))

	texts, err := s.ListThreadTexts(thread.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, texts)
}

func TestListThreadTextsEmptyThread(t *testing.T) {
	s, _ := newTestService(t)

	texts, err := s.ListThreadTexts("no_links_yet")

	require.NoError(t, err)
	assert.Empty(t, texts)
}

func TestListActiveThreadsByEmotion(t *testing.T) {
	s, _ := newTestService(t)

	grief := &models.Thread{Emotion: "grief", IsActive: true}
	love := &models.Thread{Emotion: "love", IsActive: true}
	require.NoError(t, s.CreateThread(grief))
	require.NoError(t, s.CreateThread(love))

	threads, err := s.ListActiveThreadsByEmotion("grief")
	require.NoError(t, err)
	require.Len(t, threads, 1)
	assert.Equal(t, grief.ID, threads[0].ID)
}

func TestDeactivateThreadHidesItFromAssignment(t *testing.T) {
	s, _ := newTestService(t)

	thread := &models.Thread{Emotion: "hope", IsActive: true}
	require.NoError(t, s.CreateThread(thread))
	require.NoError(t, s.DeactivateThread(thread.ID))

	threads, err := s.ListActiveThreadsByEmotion("hope")
	require.NoError(t, err)
	assert.Empty(t, threads)
}
