package dto

import (
	"net/http"
	"slotbook/shared/constant"
	"strconv"
)

type QueryParams struct {
	Page  int `json:"page"  validate:"omitempty,gte=1"`
	Limit int `json:"limit" validate:"omitempty,gte=1,lte=100"`
}

// FromRequest populates QueryParams from the HTTP request.
// With defaultRequest set, missing or invalid values fall back to the
// defaults and the limit is capped at constant.MaxValueLimit.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}

		q.Limit = min(q.Limit, constant.MaxValueLimit)
	}
}

// Offset is the index of the first item on the requested page.
func (q QueryParams) Offset() int {
	if q.Page <= 1 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}
