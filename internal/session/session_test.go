package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-secret"))
	require.NoError(t, err)
	return token
}

func TestStore_SignInAndOut(t *testing.T) {
	t.Parallel()

	store := NewStore()
	_, ok := store.Current()
	assert.False(t, ok)
	assert.Empty(t, store.AccessToken())

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := makeToken(t, jwt.MapClaims{"sub": "user-7", "email": "ana@example.com", "exp": exp.Unix()})

	sess, err := store.SignIn(token)
	require.NoError(t, err)
	assert.Equal(t, "user-7", sess.UserID)
	assert.Equal(t, "ana@example.com", sess.Email)
	assert.True(t, exp.Equal(sess.ExpiresAt))

	current, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, sess, current)
	assert.Equal(t, token, store.AccessToken())

	store.SignOut()
	_, ok = store.Current()
	assert.False(t, ok)
}

func TestStore_SignInRejectsBadTokens(t *testing.T) {
	t.Parallel()

	store := NewStore()
	for _, token := range []string{"", "garbage", makeToken(t, jwt.MapClaims{"email": "x@example.com"})} {
		_, err := store.SignIn(token)
		assert.ErrorIs(t, err, ErrInvalidToken, token)
	}
	_, ok := store.Current()
	assert.False(t, ok)
}

func TestStore_ExpiredSessionIsAbsent(t *testing.T) {
	t.Parallel()

	store := NewStore()
	_, err := store.SignIn(makeToken(t, jwt.MapClaims{"sub": "u", "exp": time.Now().Add(time.Minute).Unix()}))
	require.NoError(t, err)

	store.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, ok := store.Current()
	assert.False(t, ok)
}

func TestStore_Subscribe(t *testing.T) {
	t.Parallel()

	store := NewStore()

	var events []Event
	unsubscribe := store.Subscribe(func(e Event, s *Session) {
		events = append(events, e)
		if e == EventSignedIn {
			assert.NotNil(t, s)
		} else {
			assert.Nil(t, s)
		}
	})

	_, err := store.SignIn(makeToken(t, jwt.MapClaims{"sub": "u"}))
	require.NoError(t, err)
	store.SignOut()
	store.SignOut()

	unsubscribe()
	unsubscribe()

	_, err = store.SignIn(makeToken(t, jwt.MapClaims{"sub": "u"}))
	require.NoError(t, err)

	assert.Equal(t, []Event{EventSignedIn, EventSignedOut}, events)
}

func TestStore_ListenerMayReadStore(t *testing.T) {
	t.Parallel()

	store := NewStore()
	var seen string
	store.Subscribe(func(Event, *Session) {
		seen = store.AccessToken()
	})

	token := makeToken(t, jwt.MapClaims{"sub": "u"})
	_, err := store.SignIn(token)
	require.NoError(t, err)
	assert.Equal(t, token, seen)
}
