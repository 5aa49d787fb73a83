package cache

import (
	"strconv"
	"strings"
)

const (
	GlobalKeyPrefix = "quizcoach"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// HintViewedKey marks that a user opened the hint of a question.
func HintViewedKey(userID int64, questionID string) string {
	return GenerateCacheKey("hint", "viewed", strconv.FormatInt(userID, 10), questionID)
}
