package reservation

import (
	"net/http"
	"slotbook/infras/otel"
	"slotbook/internal/domains/reservation/model"
	"slotbook/internal/domains/reservation/model/dto"
	"slotbook/internal/domains/reservation/service"
	"slotbook/shared/constant"
	gDto "slotbook/shared/dto"
	"slotbook/shared/failure"
	"slotbook/shared/validator"
	"slotbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/availability", handler.CheckAvailability)

	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Book)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/{id}", handler.GetReservationByID)
	})
}

// CheckAvailability reports whether a range is free of confirmed bookings.
// @Summary Check availability
// @Tags Reservation
// @Produce json
// @Param resource query string true "Resource name"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start query string true "Start (HH:MM)"
// @Param end query string true "End (HH:MM)"
// @Success 200 {object} response.Data[dto.AvailabilityResponse]
// @Failure 400 {object} response.Error
// @Router /v1/availability [get]
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	req := dto.AvailabilityRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.CheckAvailability(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Book decides a booking request. Rejections are not errors: the body always
// carries the result and the status code tells the outcome apart.
// @Summary Book a resource
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.BookRequest true "Booking request"
// @Success 201 {object} response.Data[dto.BookingResultResponse] "Confirmed"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Data[dto.BookingResultResponse] "Unknown resource"
// @Failure 409 {object} response.Data[dto.BookingResultResponse] "Already booked"
// @Failure 422 {object} response.Data[dto.BookingResultResponse] "Invalid slot"
// @Router /v1/reservations [post]
func (handler *Handler) Book(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Book")
	defer scope.End()

	req := dto.BookRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Book(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking " + res.Status)

	response.WithJSON(w, statusOf(res), res)
}

func statusOf(res dto.BookingResultResponse) int {
	switch model.Reason(res.Reason) {
	case model.ReasonAlreadyBooked:
		return http.StatusConflict
	case model.ReasonUnknownResource:
		return http.StatusNotFound
	case model.ReasonInvalidSlot:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusCreated
	}
}

// GetReservations lists recorded reservations in the order they were decided.
// @Summary Get all reservations
// @Tags Reservation
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param resource query string false "Filter by resource"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Param status query string false "Filter by status (confirmed, rejected)"
// @Success 200 {object} response.Data[dto.GetReservationsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/reservations [get]
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	req := dto.ListRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	filter, err := req.ToFilter()
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequest(err))

		return
	}

	reservations, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetReservationByID retrieves a reservation by its ID.
// @Summary Get a reservation by ID
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse]
// @Failure 404 {object} response.Error
// @Router /v1/reservations/{id} [get]
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	reservation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get reservation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reservation)
}
