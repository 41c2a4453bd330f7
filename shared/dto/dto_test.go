package dto_test

import (
	"net/http"
	"net/url"
	"slotbook/shared/constant"
	"slotbook/shared/dto"
	"testing"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:           "with all valid parameters",
			queryParams:    map[string]string{"page": "2", "limit": "20"},
			defaultRequest: false,
			expected:       dto.QueryParams{Page: 2, Limit: 20},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name:           "with invalid page parameter",
			queryParams:    map[string]string{"page": "invalid"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "with zero page parameter",
			queryParams:    map[string]string{"page": "0"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "with negative limit parameter",
			queryParams:    map[string]string{"limit": "-10"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "with limit above maximum",
			queryParams:    map[string]string{"limit": "5000"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.MaxValueLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse("http://example.com/v1/reservations")
			if err != nil {
				t.Fatalf("failed to parse URL: %v", err)
			}

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			req, err := http.NewRequest(http.MethodGet, u.String(), nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			if *queryParams != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, *queryParams)
			}
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	tests := []struct {
		params dto.QueryParams
		want   int
	}{
		{params: dto.QueryParams{Page: 0, Limit: 10}, want: 0},
		{params: dto.QueryParams{Page: 1, Limit: 10}, want: 0},
		{params: dto.QueryParams{Page: 3, Limit: 10}, want: 20},
	}

	for _, tt := range tests {
		if got := tt.params.Offset(); got != tt.want {
			t.Errorf("Offset(%+v) = %d, want %d", tt.params, got, tt.want)
		}
	}
}
