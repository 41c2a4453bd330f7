package service

import (
	"context"
	"errors"
	"fmt"
	"slotbook/config"
	"slotbook/infras/otel"
	"slotbook/internal/domains/reservation/event"
	"slotbook/internal/domains/reservation/ledger"
	"slotbook/internal/domains/reservation/model"
	"slotbook/internal/domains/reservation/model/dto"
	"slotbook/shared"
	"slotbook/shared/cache"
	"slotbook/shared/constant"
	gDto "slotbook/shared/dto"
	"slotbook/shared/failure"
	"slotbook/shared/timeofday"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"
)

// Ledger is the subset of *ledger.Ledger the service drives.
type Ledger interface {
	CheckAvailability(resource string, date civil.Date, rng timeofday.Range) bool
	Book(req model.Request) (model.Result, error)
	Get(id string) (model.Reservation, bool)
	List(filter model.Filter) []model.Reservation
	Count(filter model.Filter) int
	InstanceID() string
	Revision() uint64
}

type Reservation interface {
	CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	Book(ctx context.Context, req dto.BookRequest) (dto.BookingResultResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter model.Filter) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, filter model.Filter) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
}

type serviceImpl struct {
	ledger    Ledger
	publisher event.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(ledger Ledger, publisher event.Publisher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Reservation {
	return &serviceImpl{
		ledger:    ledger,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reservation.CheckAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	request, err := req.ToModel()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res = dto.AvailabilityResponse{
		Resource:  request.Resource,
		Date:      request.Date.String(),
		Start:     request.Range.Start.String(),
		End:       request.Range.End.String(),
		Available: s.ledger.CheckAvailability(request.Resource, request.Date, request.Range),
	}

	scope.SetAttribute("reservation.resource", request.Resource)
	scope.SetAttribute("reservation.available", res.Available)

	return res, nil
}

func (s *serviceImpl) Book(ctx context.Context, req dto.BookRequest) (res dto.BookingResultResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reservation.Book")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	request, err := req.ToModel()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	result, err := s.ledger.Book(request)
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidRange) {
			return res, failure.BadRequest(err) // nolint:wrapcheck
		}

		log.Error().Err(err).Str("resource", request.Resource).Msg("failed to book reservation")

		return res, fmt.Errorf("failed to book reservation: %w", err)
	}

	scope.SetAttribute("reservation.resource", request.Resource)
	scope.SetAttribute("reservation.status", string(result.Status))

	log.Info().
		Str("resource", request.Resource).
		Str("date", request.Date.String()).
		Str("range", request.Range.String()).
		Str("status", string(result.Status)).
		Str("reason", string(result.Reason)).
		Msg("booking decided")

	if result.Reservation != nil {
		// entries of older revisions are unreachable already; drop them early
		shared.InvalidateCaches(ctx, s.cache, s.instanceKey(cacheGetAllReservation))
		shared.InvalidateCaches(ctx, s.cache, s.instanceKey(cacheCountReservation))

		reservation := *result.Reservation

		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.publisher.Publish(c, reservation); err != nil {
				log.Error().Err(err).Str("id", reservation.ID).Msg("failed to publish reservation event")
			}
		}()
	}

	res.FromModel(result)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter model.Filter) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reservation.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(s.revisionKey(cacheGetAllReservation), req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	reservations := s.ledger.List(filter)
	res.FromModels(shared.Paginate(reservations, req), len(reservations), req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter model.Filter) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reservation.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(s.revisionKey(cacheCountReservation), filter.String())

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res = s.ledger.Count(filter)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reservation.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(s.instanceKey(cacheGetReservation), id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, ok := s.ledger.Get(id)
	if !ok {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	res.FromModel(reservation)

	// reservations are never mutated, so the entry only ages out by TTL
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

// instanceKey scopes prefix to this ledger so processes sharing Redis do not
// serve each other's reservations.
func (s *serviceImpl) instanceKey(prefix string) string {
	return shared.BuildCacheKey(prefix, s.ledger.InstanceID())
}

// revisionKey pins a listing to the ledger revision read before the ledger
// itself, so a save that lands after a booking is never read again.
func (s *serviceImpl) revisionKey(prefix string) string {
	return shared.BuildCacheKey(s.instanceKey(prefix), fmt.Sprintf("rev=%d", s.ledger.Revision()))
}
