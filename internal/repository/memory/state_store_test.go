package memory

import (
	"bufio"
	"bytes"
	"clockstore-backend/pkg/logger"
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewStateStore(0)

	_, found, err := s.Get(ctx, "s1", "cart")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "s1", "cart", []byte(`[]`)))
	v, found, err := s.Get(ctx, "s1", "cart")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, string(v))

	require.NoError(t, s.Delete(ctx, "s1", "cart"))
	_, found, _ = s.Get(ctx, "s1", "cart")
	assert.False(t, found)
}

func TestStateStore_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewStateStore(0)

	require.NoError(t, s.Set(ctx, "s1", "coupon", []byte(`"CLOCK10"`)))
	_, found, _ := s.Get(ctx, "s2", "coupon")
	assert.False(t, found)
}

func TestStateStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewStateStore(0)

	in := []byte(`"abc"`)
	require.NoError(t, s.Set(ctx, "s1", "k", in))
	in[1] = 'z'

	out, _, _ := s.Get(ctx, "s1", "k")
	assert.Equal(t, `"abc"`, string(out))
	out[1] = 'y'

	again, _, _ := s.Get(ctx, "s1", "k")
	assert.Equal(t, `"abc"`, string(again))
}

func TestStateStore_TTLExpires(t *testing.T) {
	ctx := context.Background()
	s := NewStateStore(20 * time.Millisecond)

	require.NoError(t, s.Set(ctx, "s1", "k", []byte(`1`)))
	time.Sleep(40 * time.Millisecond)

	_, found, err := s.Get(ctx, "s1", "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStateStore_LogsOperations(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf).Level(zerolog.DebugLevel)
	ctx := logger.NewContext(context.Background(), &l)
	s := NewStateStore(0)

	require.NoError(t, s.Set(ctx, "s1", "clockstore_cart_v1", []byte(`[]`)))
	_, _, err := s.Get(ctx, "s1", "clockstore_cart_v1")
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, "s1", "clockstore_cart_v1"))

	var ops []string
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry))
		assert.Equal(t, "memory", entry["driver"])
		assert.Equal(t, "clockstore_cart_v1", entry["state_key"])
		assert.Equal(t, "State Store", entry["message"])
		ops = append(ops, entry["op"].(string))
	}
	assert.Equal(t, []string{"set", "get", "delete"}, ops)
}
