package config

import "time"

const (
	// Thread matching
	SimilarityThreshold = 0.4

	// Star submissions
	MaxStarTextLength = 400
	StarTTL           = 24 * time.Hour

	// GET /stars listing cache
	StarsCacheKey = "stars:all"
	StarsCacheTTL = 30 * time.Second

	// Randomized display coordinates assigned on submission.
	// Latitude is clamped away from the poles so stars stay visible
	// on the projected map.
	LatMin = -60.0
	LatMax = 60.0
	LngMin = -180.0
	LngMax = 180.0

	// Anonymous token lifetime for /anonid
	AnonTokenTTL = 72 * time.Hour
)

// Polarity ceilings for emotion banding. A polarity below GriefCeiling is
// grief, below RegretCeiling regret, and so on; anything at or above
// GratitudeCeiling is love.
const (
	GriefCeiling     = -0.6
	RegretCeiling    = -0.2
	HopeCeiling      = 0.2
	GratitudeCeiling = 0.5
)
