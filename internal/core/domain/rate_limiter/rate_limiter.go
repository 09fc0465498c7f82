package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// Interval is the length of a fixed rate limiting window.
type Interval struct {
	tag    string
	length time.Duration
}

var (
	Minute = Interval{tag: "m", length: time.Minute}
	Hour   = Interval{tag: "h", length: time.Hour}
)

func (i Interval) Length() time.Duration {
	return i.length
}

func (i Interval) String() string {
	return i.length.String()
}

// WindowKey returns the counter key for the window of the interval
// that contains t. Consecutive windows get distinct keys.
func (i Interval) WindowKey(key string, t time.Time) string {
	if i.length <= 0 {
		panic("invalid rate limiting interval")
	}
	return fmt.Sprintf("%s::%s%d", key, i.tag, t.Unix()/int64(i.length/time.Second))
}

type Limit struct {
	Value    uint16
	Interval Interval
}

func (l Limit) String() string {
	return fmt.Sprintf("%d per %s", l.Value, l.Interval)
}

type Result struct {
	IsAllowed bool
}

func Allowed() Result {
	return Result{IsAllowed: true}
}

func NotAllowed() Result {
	return Result{IsAllowed: false}
}

type RateLimiter interface {
	CheckLimit(ctx context.Context, key string, limit Limit) Result
}
