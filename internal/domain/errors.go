package domain

import "errors"

var (
	// ErrInvalidInput is returned when a calculator input is missing,
	// non-positive, or outside plausible physiological bounds
	ErrInvalidInput = errors.New("invalid calculator input")

	// ErrUnsupportedSex is returned when a BMR calculation is requested
	// without an explicit male/female formula basis
	ErrUnsupportedSex = errors.New("no BMR formula for the selected sex; choose male or female as formula basis")

	// ErrQueryTooShort is returned when a search query has fewer than 2 characters
	ErrQueryTooShort = errors.New("query too short")

	// ErrNotFound is returned when requested content does not exist
	ErrNotFound = errors.New("content not found")

	// ErrCMSFailure is returned when a content source query fails
	ErrCMSFailure = errors.New("content source query failed")

	// ErrRateLimited is returned when a client exceeds the per-IP rate limit
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrEmailNotConfigured is returned when the email provider has no API key
	ErrEmailNotConfigured = errors.New("email provider not configured")

	// ErrEmailFailure is returned when the email provider rejects a send
	ErrEmailFailure = errors.New("email delivery failed")
)
