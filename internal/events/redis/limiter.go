package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"eventbite/internal/logger"
)

// Limiter throttles verify-admin attempts per event with a Redis counter
// that expires after the configured window. A nil Limiter allows
// everything, so the feature is a no-op when Redis is not configured.
type Limiter struct {
	Client *redis.Client
	Max    int
	Window time.Duration
	Logger *logger.Logger
}

func NewLimiter(client *redis.Client, max int, window time.Duration, log *logger.Logger) *Limiter {
	return &Limiter{
		Client: client,
		Max:    max,
		Window: window,
		Logger: log,
	}
}

func attemptKey(eventID int64) string {
	return fmt.Sprintf("admin_verify:%d", eventID)
}

// Allow records one verify attempt for the event and reports whether it is
// still inside the window budget. Redis failures allow the attempt: an
// unavailable limiter must not lock organizers out.
func (l *Limiter) Allow(eventID int64) bool {
	if l == nil || l.Client == nil {
		return true
	}

	ctx := context.Background()
	key := attemptKey(eventID)

	count, err := l.Client.Incr(ctx, key).Result()
	if err != nil {
		if l.Logger != nil {
			l.Logger.Error("REDIS", fmt.Sprintf("Failed to count verify attempt for event %d: %v", eventID, err))
		}
		return true
	}

	if count == 1 {
		if err := l.Client.Expire(ctx, key, l.Window).Err(); err != nil && l.Logger != nil {
			l.Logger.Error("REDIS", fmt.Sprintf("Failed to set attempt window for event %d: %v", eventID, err))
		}
	}

	if count > int64(l.Max) {
		if l.Logger != nil {
			l.Logger.LogSecurity("VERIFY_LIMIT", fmt.Sprintf("Event %d exceeded %d verify attempts", eventID, l.Max))
		}
		return false
	}
	return true
}

// Reset clears the attempt counter for an event. Called after a successful
// verification.
func (l *Limiter) Reset(eventID int64) {
	if l == nil || l.Client == nil {
		return
	}
	if err := l.Client.Del(context.Background(), attemptKey(eventID)).Err(); err != nil && l.Logger != nil {
		l.Logger.Error("REDIS", fmt.Sprintf("Failed to reset verify attempts for event %d: %v", eventID, err))
	}
}
