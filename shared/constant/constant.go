package constant

import (
	"time"
)

const (
	RequestParamPage     = "page"
	RequestParamLimit    = "limit"
	RequestParamID       = "id"
	RequestParamName     = "name"
	RequestParamDate     = "date"
	RequestParamStart    = "start"
	RequestParamEnd      = "end"
	RequestParamStatus   = "status"
	RequestParamResource = "resource"
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 10
	MaxValueLimit     = 100
)

const (
	DateFormat      = time.RFC3339
	CalendarLayout  = "2006-01-02"
	TimeOfDayLayout = "15:04"
)

const (
	OtelServiceScopeName = "service"
	OtelHandlerScopeName = "handler"
	OtelEventScopeName   = "event"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
)
