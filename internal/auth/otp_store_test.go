package auth

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"

	"careervector/internal/cache"
)

func newTestStore(t *testing.T) (*OTPStore, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	return NewOTPStore(cache.New(srv.Addr(), "", 0)), srv
}

func TestOTPStore_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("wrong guess does not consume the code", func(t *testing.T) {
		store, srv := newTestStore(t)
		assert.NoError(t, store.Issue(ctx, "jane@univ.edu", "321654"))

		ok, err := store.Verify(ctx, "jane@univ.edu", "111111")
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.True(t, srv.Exists("otp:jane@univ.edu"))

		// the stored code is still redeemable after a failed guess
		ok, err = store.Verify(ctx, "jane@univ.edu", "321654")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("correct code verifies exactly once", func(t *testing.T) {
		store, srv := newTestStore(t)
		assert.NoError(t, store.Issue(ctx, "jane@univ.edu", "321654"))

		ok, err := store.Verify(ctx, "jane@univ.edu", "321654")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.False(t, srv.Exists("otp:jane@univ.edu"))

		ok, err = store.Verify(ctx, "jane@univ.edu", "321654")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("no pending code reports false", func(t *testing.T) {
		store, _ := newTestStore(t)

		ok, err := store.Verify(ctx, "jane@univ.edu", "321654")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("expired code reports false", func(t *testing.T) {
		store, srv := newTestStore(t)
		assert.NoError(t, store.Issue(ctx, "jane@univ.edu", "321654"))
		srv.FastForward(OTPTTL + time.Second)

		ok, err := store.Verify(ctx, "jane@univ.edu", "321654")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestOTPStore_IssueOverwritesPendingCode(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	assert.NoError(t, store.Issue(ctx, "jane@univ.edu", "111111"))
	assert.NoError(t, store.Issue(ctx, "jane@univ.edu", "222222"))

	ok, err := store.Verify(ctx, "jane@univ.edu", "111111")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.Verify(ctx, "jane@univ.edu", "222222")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestGenerateCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateCode()
		assert.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
		seen[code] = true
	}
	// 100 draws over a 900000-value space collapsing to one value would mean
	// a broken generator
	assert.Greater(t, len(seen), 1)
}
