package client

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestParseRetryAfter(t *testing.T) {
	testCases := []struct {
		TestName string
		Header   string
		Expected time.Duration
	}{
		{
			TestName: "Seconds #1",
			Header:   "30",
			Expected: 30 * time.Second,
		},
		{
			TestName: "Missing header #2",
			Header:   "",
			Expected: time.Minute,
		},
		{
			TestName: "Garbage header #3",
			Header:   "soon",
			Expected: time.Minute,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			headers := http.Header{}
			if tc.Header != "" {
				headers.Set("Retry-After", tc.Header)
			}
			if got := ParseRetryAfter(headers); got != tc.Expected {
				t.Errorf("Expected: '%v', got: '%v'", tc.Expected, got)
			}
		})
	}
}

func TestParseRetryAfter_HTTPDate(t *testing.T) {
	headers := http.Header{}
	headers.Set("Retry-After", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))

	got := ParseRetryAfter(headers)
	if got < 30*time.Minute || got > time.Hour {
		t.Errorf("Expected duration close to an hour, got '%v'", got)
	}
}

func TestRateLimiter_Wait(t *testing.T) {
	limiter := NewRateLimiter()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// без блокировки запросы проходят сразу
	if err := limiter.Wait(ctx); err != nil {
		t.Errorf("Expected no error, got '%v'", err)
	}
}
