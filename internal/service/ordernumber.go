package service

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// GenerateOrderNumber builds the human-readable order identifier:
// "ORD" + two-digit year, month, day + a 3-digit random suffix.
// It is not the primary key; the random suffix can collide, so the caller
// retries on a unique violation instead of pre-checking.
func GenerateOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD%02d%02d%02d%03d",
		now.Year()%100, int(now.Month()), now.Day(), rand.IntN(1000))
}
