package reservation_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slotbook/config"
	"slotbook/infras/otel/mocks"
	"slotbook/internal/domains/catalog/repository"
	"slotbook/internal/domains/reservation/event"
	"slotbook/internal/domains/reservation/ledger"
	"slotbook/internal/domains/reservation/model/dto"
	"slotbook/internal/domains/reservation/service"
	"slotbook/internal/handlers/reservation"
	"slotbook/shared/cache"
	"slotbook/transport/http/response"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	catalog, err := repository.NewFromSeed(repository.DefaultSeed())
	require.NoError(t, err)

	cfg := &config.Config{}
	ot := mocks.NewOtel()

	svc := service.New(ledger.New(catalog), event.New(cfg, nil, ot), cfg, cache.NewRedisCache(nil, ot), ot)
	handler := reservation.New(svc, ot)

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router
}

func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body response.Data[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Data)

	return *body.Data
}

func TestHandler_Book(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name       string
		body       string
		wantCode   int
		wantStatus string
		wantReason string
	}{
		{
			name:       "confirmed",
			body:       `{"resource":"Clubhouse","date":"2023-08-01","start":"10:00","end":"12:00"}`,
			wantCode:   http.StatusCreated,
			wantStatus: "confirmed",
		},
		{
			name:       "overlap with confirmed booking",
			body:       `{"resource":"Clubhouse","date":"2023-08-01","start":"11:00","end":"13:00"}`,
			wantCode:   http.StatusConflict,
			wantStatus: "rejected",
			wantReason: "already_booked",
		},
		{
			name:       "range spans two slots",
			body:       `{"resource":"Clubhouse","date":"2023-08-01","start":"15:30","end":"16:30"}`,
			wantCode:   http.StatusUnprocessableEntity,
			wantStatus: "rejected",
			wantReason: "invalid_slot",
		},
		{
			name:       "unknown resource",
			body:       `{"resource":"Ballroom","date":"2023-08-01","start":"10:00","end":"11:00"}`,
			wantCode:   http.StatusNotFound,
			wantStatus: "rejected",
			wantReason: "unknown_resource",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, "/v1/reservations", tt.body)
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

			res := decode[dto.BookingResultResponse](t, rec)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantReason, res.Reason)
		})
	}
}

func TestHandler_Book_BadRequest(t *testing.T) {
	router := newRouter(t)

	bodies := map[string]string{
		"malformed json": `{"resource":`,
		"missing date":   `{"resource":"Clubhouse","start":"10:00","end":"11:00"}`,
		"bad clock":      `{"resource":"Clubhouse","date":"2023-08-01","start":"10am","end":"11:00"}`,
		"inverted range": `{"resource":"Clubhouse","date":"2023-08-01","start":"11:00","end":"10:00"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, "/v1/reservations", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_CheckAvailability(t *testing.T) {
	router := newRouter(t)

	const target = "/v1/availability?resource=Tennis+Court&date=2023-08-01&start=09:00&end=10:00"

	rec := do(t, router, http.MethodGet, target, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[dto.AvailabilityResponse](t, rec).Available)

	rec = do(t, router, http.MethodPost, "/v1/reservations",
		`{"resource":"Tennis Court","date":"2023-08-01","start":"09:30","end":"10:30"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodGet, target, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[dto.AvailabilityResponse](t, rec).Available)

	rec = do(t, router, http.MethodGet, "/v1/availability?resource=Tennis+Court&date=2023-08-01", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_GetReservations(t *testing.T) {
	router := newRouter(t)

	for _, body := range []string{
		`{"resource":"Clubhouse","date":"2023-08-01","start":"10:00","end":"12:00"}`,
		`{"resource":"Clubhouse","date":"2023-08-01","start":"11:00","end":"13:00"}`,
		`{"resource":"Tennis Court","date":"2023-08-01","start":"10:00","end":"12:00"}`,
	} {
		do(t, router, http.MethodPost, "/v1/reservations", body)
	}

	rec := do(t, router, http.MethodGet, "/v1/reservations?resource=Clubhouse", "")
	require.Equal(t, http.StatusOK, rec.Code)

	all := decode[dto.GetReservationsResponse](t, rec)
	assert.Equal(t, 2, all.TotalData)
	assert.Equal(t, "confirmed", all.Reservations[0].Status)
	assert.Equal(t, "already_booked", all.Reservations[1].Reason)

	rec = do(t, router, http.MethodGet, "/v1/reservations?status=confirmed&limit=1&page=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	confirmed := decode[dto.GetReservationsResponse](t, rec)
	assert.Equal(t, 2, confirmed.TotalData)
	assert.Equal(t, 2, confirmed.TotalPage)
	require.Len(t, confirmed.Reservations, 1)
	assert.Equal(t, "Tennis Court", confirmed.Reservations[0].Resource)

	rec = do(t, router, http.MethodGet, "/v1/reservations?status=cancelled", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_GetReservationByID(t *testing.T) {
	router := newRouter(t)

	rec := do(t, router, http.MethodPost, "/v1/reservations",
		`{"resource":"Clubhouse","date":"2023-08-02","start":"18:00","end":"19:30"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	booked := decode[dto.BookingResultResponse](t, rec)
	require.NotNil(t, booked.Reservation)

	rec = do(t, router, http.MethodGet, "/v1/reservations/"+booked.Reservation.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[dto.ReservationResponse](t, rec)
	require.NotNil(t, got.Price)
	assert.InDelta(t, 750, *got.Price, 1e-9)

	rec = do(t, router, http.MethodGet, "/v1/reservations/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
