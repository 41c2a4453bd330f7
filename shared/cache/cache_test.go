package cache_test

import (
	"context"
	"slotbook/infras/otel/mocks"
	"slotbook/shared/cache"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisCache_NilClientNeverHits(t *testing.T) {
	c := cache.NewRedisCache(nil, mocks.NewOtel())
	ctx := context.Background()

	assert.NoError(t, c.Save(ctx, "reservation:gets", 1, 60))

	var out int
	err := c.Get(ctx, "reservation:gets", &out)
	assert.ErrorIs(t, err, cache.Nil)
	assert.Zero(t, out)

	assert.NoError(t, c.Delete(ctx, "reservation:gets"))
	assert.NoError(t, c.Clear(ctx, "reservation"))
}
