package validator_test

import (
	"net/http"
	"slotbook/shared/failure"
	"slotbook/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type bookingPayload struct {
	Resource string `json:"resource" validate:"required,max=100"`
	Date     string `json:"date"     validate:"required,calendardate"`
	Start    string `json:"start"    validate:"required,clock"`
	End      string `json:"end"      validate:"required,clock"`
	Status   string `json:"status"   validate:"omitempty,oneof=confirmed rejected"`
}

func TestValidateStruct(t *testing.T) {
	valid := bookingPayload{Resource: "Clubhouse", Date: "2023-08-01", Start: "10:00", End: "11:00"}

	tests := []struct {
		name    string
		mutate  func(p *bookingPayload)
		wantErr string
	}{
		{name: "valid payload", mutate: func(_ *bookingPayload) {}},
		{name: "missing resource", mutate: func(p *bookingPayload) { p.Resource = "" }, wantErr: "Resource is required"},
		{name: "bad date", mutate: func(p *bookingPayload) { p.Date = "01/08/2023" }, wantErr: "Date must be a date formatted as YYYY-MM-DD"},
		{name: "impossible date", mutate: func(p *bookingPayload) { p.Date = "2023-02-30" }, wantErr: "Date must be a date"},
		{name: "bad start", mutate: func(p *bookingPayload) { p.Start = "25:00" }, wantErr: "Start must be a time of day formatted as HH:MM"},
		{name: "bad end", mutate: func(p *bookingPayload) { p.End = "noon" }, wantErr: "End must be a time of day"},
		{name: "bad status", mutate: func(p *bookingPayload) { p.Status = "pending" }, wantErr: "Status must be one of confirmed rejected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := valid
			tt.mutate(&payload)

			err := validator.ValidateStruct(&payload)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.ErrorContains(t, err, tt.wantErr)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid clock", field: "23:59", tag: "clock"},
		{name: "invalid clock", field: "24:00", tag: "clock", expectError: true},
		{name: "valid date", field: "2024-02-29", tag: "calendardate"},
		{name: "invalid date", field: "2023-02-29", tag: "calendardate", expectError: true},
		{name: "number in range", field: 25, tag: "gte=0,lte=100"},
		{name: "number out of range", field: 150, tag: "gte=0,lte=100", expectError: true},
		{name: "clock on non string", field: 1000, tag: "clock", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"resource":"Clubhouse","date":"2023-08-01","start":"10:00","end":"11:00"}`,
		},
		{
			name:        "invalid field",
			jsonBody:    `{"resource":"Clubhouse","date":"2023-08-01","start":"10am","end":"11:00"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"resource":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data bookingPayload
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Clubhouse", data.Resource)
			}
		})
	}
}
