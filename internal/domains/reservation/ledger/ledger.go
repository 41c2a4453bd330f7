// Package ledger holds accepted reservations and decides, for each booking
// request, whether it conflicts with them and what it costs.
package ledger

import (
	"errors"
	"fmt"
	"slotbook/internal/domains/catalog/model"
	rModel "slotbook/internal/domains/reservation/model"
	"slotbook/shared/timeofday"
	"slotbook/shared/timezone"
	"sync"
	"sync/atomic"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// ErrInvalidRange reports a booking request whose range or date cannot be decided.
var ErrInvalidRange = errors.New("invalid booking range")

// Catalog resolves resources by name.
type Catalog interface {
	GetResource(name string) (model.Resource, error)
}

// Option customizes a Ledger built by New.
type Option func(*Ledger)

// WithClock overrides the clock used to stamp RecordedAt.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithIDGenerator overrides reservation ID generation.
func WithIDGenerator(newID func() string) Option {
	return func(l *Ledger) { l.newID = newID }
}

type dayKey struct {
	resource string
	date     civil.Date
}

// day holds the confirmed ranges of one resource on one date. Its lock is
// the serialization point for check-then-book on that key.
type day struct {
	mu        sync.RWMutex
	confirmed []timeofday.Range
}

func (d *day) available(rng timeofday.Range) bool {
	for _, booked := range d.confirmed {
		if rng.Overlaps(booked) {
			return false
		}
	}

	return true
}

// Ledger is the in-memory, append-only record of booking outcomes.
type Ledger struct {
	catalog    Catalog
	now        func() time.Time
	newID      func() string
	instanceID string
	revision   atomic.Uint64

	daysMu sync.Mutex
	days   map[dayKey]*day

	logMu sync.RWMutex
	log   []rModel.Reservation
	byID  map[string]int
}

func New(catalog Catalog, opts ...Option) *Ledger {
	l := &Ledger{
		catalog:    catalog,
		now:        timezone.Now,
		newID:      uuid.NewString,
		instanceID: uuid.NewString(),
		days:       make(map[dayKey]*day),
		byID:       make(map[string]int),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

func (l *Ledger) day(key dayKey, create bool) *day {
	l.daysMu.Lock()
	defer l.daysMu.Unlock()

	d, ok := l.days[key]
	if !ok && create {
		d = &day{}
		l.days[key] = d
	}

	return d
}

// CheckAvailability reports whether rng is free of every confirmed
// reservation for resource on date. An invalid range is never available.
func (l *Ledger) CheckAvailability(resource string, date civil.Date, rng timeofday.Range) bool {
	if !rng.Valid() {
		return false
	}

	d := l.day(dayKey{resource: resource, date: date}, false)
	if d == nil {
		return true
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.available(rng)
}

// Book decides req and records the outcome. Scheduling outcomes are
// returned in the Result; the error is reserved for malformed requests
// and catalog failures.
//
// Precedence: already_booked, then unknown_resource, then invalid_slot.
func (l *Ledger) Book(req rModel.Request) (rModel.Result, error) {
	if !req.Range.Valid() {
		return rModel.Result{}, fmt.Errorf("%w: %s", ErrInvalidRange, req.Range)
	}

	if !req.Date.IsValid() {
		return rModel.Result{}, fmt.Errorf("%w: date %s", ErrInvalidRange, req.Date)
	}

	// The catalog is immutable, and a resource missing from it can never
	// hold a confirmed reservation, so resolving it outside the day lock
	// keeps the precedence above intact.
	resource, err := l.catalog.GetResource(req.Resource)
	if err != nil {
		if errors.Is(err, model.ErrUnknownResource) {
			return rModel.Unrecorded(rModel.ReasonUnknownResource), nil
		}

		return rModel.Result{}, fmt.Errorf("failed to resolve resource: %w", err)
	}

	d := l.day(dayKey{resource: req.Resource, date: req.Date}, true)

	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.available(req.Range) {
		return l.record(req, rModel.StatusRejected, 0, rModel.ReasonAlreadyBooked), nil
	}

	slot, ok := matchSlot(resource.Slots, req.Range)
	if !ok {
		return l.record(req, rModel.StatusRejected, 0, rModel.ReasonInvalidSlot), nil
	}

	price := slot.PricePerHour * req.Range.Hours()
	d.confirmed = append(d.confirmed, req.Range)

	return l.record(req, rModel.StatusConfirmed, price, ""), nil
}

// matchSlot returns the first slot, in catalog order, that fully contains rng.
// The duration comparison is implied by containment and kept only as a guard.
func matchSlot(slots []model.TimeSlot, rng timeofday.Range) (model.TimeSlot, bool) {
	hours := rng.Hours()

	for _, slot := range slots {
		if slot.Range.Contains(rng) && hours <= slot.Range.Hours() {
			return slot, true
		}
	}

	return model.TimeSlot{}, false
}

func (l *Ledger) record(req rModel.Request, status rModel.Status, price float64, reason rModel.Reason) rModel.Result {
	reservation := rModel.Reservation{
		ID:         l.newID(),
		Resource:   req.Resource,
		Date:       req.Date,
		Range:      req.Range,
		Status:     status,
		Price:      price,
		Reason:     reason,
		RecordedAt: l.now(),
	}

	l.logMu.Lock()
	l.byID[reservation.ID] = len(l.log)
	l.log = append(l.log, reservation)
	l.revision.Add(1)
	l.logMu.Unlock()

	return rModel.ResultOf(reservation)
}

// InstanceID identifies this ledger among processes sharing one cache.
func (l *Ledger) InstanceID() string {
	return l.instanceID
}

// Revision counts recorded reservations. A value read before List or Count
// never exceeds what that call observes.
func (l *Ledger) Revision() uint64 {
	return l.revision.Load()
}

// Get returns the reservation recorded under id.
func (l *Ledger) Get(id string) (rModel.Reservation, bool) {
	l.logMu.RLock()
	defer l.logMu.RUnlock()

	idx, ok := l.byID[id]
	if !ok {
		return rModel.Reservation{}, false
	}

	return l.log[idx], true
}

// List returns matching reservations in the order they were recorded.
func (l *Ledger) List(filter rModel.Filter) []rModel.Reservation {
	l.logMu.RLock()
	defer l.logMu.RUnlock()

	out := make([]rModel.Reservation, 0, len(l.log))
	for _, reservation := range l.log {
		if filter.Matches(reservation) {
			out = append(out, reservation)
		}
	}

	return out
}

// Count returns how many recorded reservations match filter.
func (l *Ledger) Count(filter rModel.Filter) int {
	l.logMu.RLock()
	defer l.logMu.RUnlock()

	count := 0
	for _, reservation := range l.log {
		if filter.Matches(reservation) {
			count++
		}
	}

	return count
}
