package shared

import (
	"context"
	"fmt"
	"math"
	"slotbook/shared/cache"
	"slotbook/shared/dto"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// Paginate returns the slice of items on the page described by params.
func Paginate[T any](items []T, params dto.QueryParams) []T {
	if params.Limit <= 0 {
		return items
	}

	start := min(params.Offset(), len(items))
	end := min(start+params.Limit, len(items))

	return items[start:end]
}

// BuildCacheKey joins prefix and parts with ':'. Empty parts are kept so
// that positional keys stay unambiguous.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// BuildCacheKeyWithQuery builds a key for a paginated, filtered listing.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter fmt.Stringer) string {
	return BuildCacheKey(prefix,
		fmt.Sprintf("page=%d", params.Page),
		fmt.Sprintf("limit=%d", params.Limit),
		filter.String(),
	)
}

// InvalidateCaches drops every key under prefix. Failures are logged only;
// a stale listing expires with its TTL.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
