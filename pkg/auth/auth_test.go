package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueParse(t *testing.T) {
	t.Parallel()
	m := NewTokenManager(Config{Secret: "secret", TTL: time.Hour})
	id := uuid.New()

	token, exp, err := m.Issue(id, "reader")
	require.NoError(t, err)
	require.True(t, exp.After(time.Now()))

	r, err := m.Parse(token)
	require.NoError(t, err)
	require.Equal(t, Requester{UserID: id, Username: "reader"}, r)
}

func TestTokenManager_Parse(t *testing.T) {
	t.Parallel()
	m := NewTokenManager(Config{Secret: "secret", TTL: time.Hour})
	token, _, err := m.Issue(uuid.New(), "reader")
	require.NoError(t, err)

	t.Run("wrong key", func(t *testing.T) {
		other := NewTokenManager(Config{Secret: "other"})
		_, err := other.Parse(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
	t.Run("expired", func(t *testing.T) {
		expired := NewTokenManager(Config{Secret: "secret", TTL: time.Hour})
		expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		old, _, err := expired.Issue(uuid.New(), "reader")
		require.NoError(t, err)
		_, err = m.Parse(old)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestAuthContext(t *testing.T) {
	t.Parallel()
	_, err := GetRequester(context.Background())
	require.ErrorIs(t, err, ErrNoRequester)

	want := Requester{UserID: uuid.New(), Username: "reader"}
	got, err := GetRequester(SetAuthContext(context.Background(), want))
	require.NoError(t, err)
	require.Equal(t, want, got)
}
