package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextRoundTrip(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	ctx := WithSession(context.Background(), Session{UserID: "u-1", Email: "a@b.co"})
	s, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "u-1", s.UserID)

	_, ok = FromContext(WithSession(context.Background(), Session{}))
	assert.False(t, ok)
}

func TestIssuer_IssueAndParse(t *testing.T) {
	iss := NewIssuer("secret")
	token, err := iss.Issue(Session{UserID: "u-1", Email: "a@b.co"})
	require.NoError(t, err)

	s, err := iss.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, Session{UserID: "u-1", Email: "a@b.co"}, s)
}

func TestIssuer_RejectsWrongSecret(t *testing.T) {
	token, err := NewIssuer("one").Issue(Session{UserID: "u-1"})
	require.NoError(t, err)

	_, err = NewIssuer("two").Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_RejectsExpired(t *testing.T) {
	iss := NewIssuer("secret")
	iss.now = func() time.Time { return time.Now().Add(-31 * 24 * time.Hour) }
	token, err := iss.Issue(Session{UserID: "u-1"})
	require.NoError(t, err)

	_, err = NewIssuer("secret").Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_RejectsGarbage(t *testing.T) {
	_, err := NewIssuer("secret").Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
