package dto

import (
	"fmt"
	"net/http"
	"slotbook/internal/domains/reservation/model"
	"slotbook/shared"
	"slotbook/shared/constant"
	"slotbook/shared/timeofday"

	"cloud.google.com/go/civil"
)

type BookRequest struct {
	Resource string `json:"resource" validate:"required,max=100"`
	Date     string `json:"date"     validate:"required,calendardate"`
	Start    string `json:"start"    validate:"required,clock"`
	End      string `json:"end"      validate:"required,clock"`
}

// ToModel parses the date and bounds. An empty or inverted range is an error.
func (b *BookRequest) ToModel() (model.Request, error) {
	date, err := civil.ParseDate(b.Date)
	if err != nil {
		return model.Request{}, fmt.Errorf("invalid date %q: %w", b.Date, err)
	}

	rng, err := timeofday.ParseRange(b.Start, b.End)
	if err != nil {
		return model.Request{}, err //nolint:wrapcheck
	}

	return model.Request{
		Resource: b.Resource,
		Date:     date,
		Range:    rng,
	}, nil
}

type AvailabilityRequest struct {
	BookRequest
}

func (a *AvailabilityRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	a.Resource = query.Get(constant.RequestParamResource)
	a.Date = query.Get(constant.RequestParamDate)
	a.Start = query.Get(constant.RequestParamStart)
	a.End = query.Get(constant.RequestParamEnd)
}

type AvailabilityResponse struct {
	Resource  string `json:"resource"`
	Date      string `json:"date"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

type ListRequest struct {
	Resource string `json:"resource" validate:"omitempty,max=100"`
	Date     string `json:"date"     validate:"omitempty,calendardate"`
	Status   string `json:"status"   validate:"omitempty,oneof=confirmed rejected"`
}

func (l *ListRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	l.Resource = query.Get(constant.RequestParamResource)
	l.Date = query.Get(constant.RequestParamDate)
	l.Status = query.Get(constant.RequestParamStatus)
}

func (l *ListRequest) ToFilter() (model.Filter, error) {
	filter := model.Filter{
		Resource: l.Resource,
		Status:   model.Status(l.Status),
	}

	if l.Date != "" {
		date, err := civil.ParseDate(l.Date)
		if err != nil {
			return model.Filter{}, fmt.Errorf("invalid date %q: %w", l.Date, err)
		}

		filter.Date = date
	}

	return filter, nil
}

type ReservationResponse struct {
	ID         string   `json:"id"`
	Resource   string   `json:"resource"`
	Date       string   `json:"date"`
	Start      string   `json:"start"`
	End        string   `json:"end"`
	Status     string   `json:"status"`
	Price      *float64 `json:"price,omitempty"`
	Reason     string   `json:"reason,omitempty"`
	RecordedAt string   `json:"recorded_at"`
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.Resource = model.Resource
	r.Date = model.Date.String()
	r.Start = model.Range.Start.String()
	r.End = model.Range.End.String()
	r.Status = string(model.Status)
	r.Price = priceOf(model.Status, model.Price)
	r.Reason = string(model.Reason)
	r.RecordedAt = model.RecordedAt.Format(constant.DateFormat)
}

type BookingResultResponse struct {
	Status      string               `json:"status"`
	Price       *float64             `json:"price,omitempty"`
	Reason      string               `json:"reason,omitempty"`
	Reservation *ReservationResponse `json:"reservation,omitempty"`
}

func (b *BookingResultResponse) FromModel(result model.Result) {
	b.Status = string(result.Status)
	b.Price = priceOf(result.Status, result.Price)
	b.Reason = string(result.Reason)

	if result.Reservation != nil {
		b.Reservation = &ReservationResponse{}
		b.Reservation.FromModel(*result.Reservation)
	}
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

// priceOf keeps a zero price visible on confirmed bookings and hides it on rejections.
func priceOf(status model.Status, price float64) *float64 {
	if status != model.StatusConfirmed {
		return nil
	}

	return &price
}
