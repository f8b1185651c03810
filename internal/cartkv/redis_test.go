package cartkv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return NewRedis(client), mr
}

func TestRedis_GetSet(t *testing.T) {
	kv, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "cart_store1", []byte(`{"p1":2}`)))

	data, err := kv.Get(ctx, "cart_store1")
	require.NoError(t, err)
	assert.Equal(t, `{"p1":2}`, string(data))
}

func TestRedis_GetMissing(t *testing.T) {
	kv, _ := setupTestRedis(t)

	_, err := kv.Get(context.Background(), "cart_nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedis_Delete(t *testing.T) {
	kv, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("cart_store1", `{"p1":2}`))
	require.NoError(t, kv.Delete(ctx, "cart_store1"))

	assert.False(t, mr.Exists("cart_store1"))

	// deleting a missing key is not an error
	assert.NoError(t, kv.Delete(ctx, "cart_store1"))
}
