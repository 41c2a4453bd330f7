package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"slotbook/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "start must be before end",
	}

	assert.Equal(t, "start must be before end", f.Error())
}

func TestPredefinedFailures(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, failure.InvalidPageParam.Code)
	assert.Equal(t, "invalid page parameter", failure.InvalidPageParam.Message)
	assert.Equal(t, http.StatusBadRequest, failure.InvalidLimitParam.Code)
	assert.Equal(t, "invalid limit parameter", failure.InvalidLimitParam.Message)
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				assert.NoError(t, result)

				return
			}

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestInternalError(t *testing.T) {
	assert.NoError(t, failure.InternalError(nil))
	assert.Equal(t,
		&failure.Failure{Code: http.StatusInternalServerError, Message: "redis unreachable"},
		failure.InternalError(errors.New("redis unreachable")),
	)
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{name: "bad request from string", err: failure.BadRequestFromString("bad date"), code: http.StatusBadRequest, msg: "bad date"},
		{name: "not found", err: failure.NotFound("reservation not found"), code: http.StatusNotFound, msg: "reservation not found"},
		{name: "conflict", err: failure.Conflict("already booked"), code: http.StatusConflict, msg: "already booked"},
		{name: "unprocessable", err: failure.UnprocessableEntity("invalid slot"), code: http.StatusUnprocessableEntity, msg: "invalid slot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure
			if assert.ErrorAs(t, tt.err, &f) {
				assert.Equal(t, tt.code, f.Code)
				assert.Equal(t, tt.msg, f.Message)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "failure", err: failure.NotFound("resource not found"), want: http.StatusNotFound},
		{name: "wrapped failure", err: fmt.Errorf("lookup: %w", failure.Conflict("taken")), want: http.StatusConflict},
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}
