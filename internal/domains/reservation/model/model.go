package model

import (
	"fmt"
	"slotbook/shared/timeofday"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

const (
	EntityName = "reservation"
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
)

// Reason explains a rejected booking attempt.
type Reason string

const (
	ReasonAlreadyBooked   Reason = "already_booked"
	ReasonUnknownResource Reason = "unknown_resource"
	ReasonInvalidSlot     Reason = "invalid_slot"
)

// Request is a booking attempt with its bounds already parsed.
type Request struct {
	Resource string
	Date     civil.Date
	Range    timeofday.Range
}

// Reservation is one recorded outcome of a booking attempt. Price is set
// only when confirmed, Reason only when rejected.
type Reservation struct {
	ID         string
	Resource   string
	Date       civil.Date
	Range      timeofday.Range
	Status     Status
	Price      float64
	Reason     Reason
	RecordedAt time.Time
}

// Result is the outcome of Ledger.Book. Reservation is nil when the attempt
// was not recorded, which only happens for an unknown resource.
type Result struct {
	Status      Status
	Price       float64
	Reason      Reason
	Reservation *Reservation
}

func (r Result) Confirmed() bool {
	return r.Status == StatusConfirmed
}

func ResultOf(reservation Reservation) Result {
	return Result{
		Status:      reservation.Status,
		Price:       reservation.Price,
		Reason:      reservation.Reason,
		Reservation: &reservation,
	}
}

func Unrecorded(reason Reason) Result {
	return Result{Status: StatusRejected, Reason: reason}
}

// Filter selects reservations; zero fields match everything.
type Filter struct {
	Resource string
	Date     civil.Date
	Status   Status
}

func (f Filter) Matches(reservation Reservation) bool {
	if f.Resource != "" && f.Resource != reservation.Resource {
		return false
	}

	if f.Date != (civil.Date{}) && f.Date != reservation.Date {
		return false
	}

	if f.Status != "" && f.Status != reservation.Status {
		return false
	}

	return true
}

func (f Filter) String() string {
	parts := []string{"resource=" + f.Resource}

	if f.Date != (civil.Date{}) {
		parts = append(parts, "date="+f.Date.String())
	} else {
		parts = append(parts, "date=")
	}

	parts = append(parts, fmt.Sprintf("status=%s", f.Status))

	return strings.Join(parts, ",")
}
