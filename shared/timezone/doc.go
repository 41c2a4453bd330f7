// Package timezone provides the application clock.
//
// Reservation timestamps are taken from Now so that every recorded outcome
// carries the configured application timezone. Calendar dates and
// times-of-day on a reservation are deliberately zone-less and do not pass
// through this package.
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is initialized when the package is imported. Use standard IANA
// names such as "UTC", "Asia/Kolkata" or "Europe/London".
package timezone
