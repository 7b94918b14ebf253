package api

import "time"

// Log field names.
const (
	logFieldRequestID = "request_id"
	logFieldMethod    = "method"
	logFieldPath      = "path"
	logFieldStatus    = "status"
	logFieldDuration  = "duration"
	logFieldID        = "id"
)

// Error codes returned in the error envelope.
const (
	codeValidation  = "VALIDATION_ERROR"
	codeInvalidBody = "INVALID_BODY"
	codeNotFound    = "NOT_FOUND"
	codeUnavailable = "STORE_UNAVAILABLE"
	codeInternal    = "INTERNAL_ERROR"
	codeRateLimited = "RATE_LIMITED"
)

const (
	headerContentType = "Content-Type"
	contentTypeJSON   = "application/json"
	maxBodyBytes      = 1 << 20
)

const (
	limiterIdleTTL   = 10 * time.Minute
	limiterSweepSize = 1024
)
