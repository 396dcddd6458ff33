package token

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/framehq/frame-api/internal/errs"
)

var testKey = []byte("test-signing-key-32-bytes-long!!")

func newTestService(t *testing.T, ttl time.Duration) *Service {
	t.Helper()
	s, err := NewService(testKey, ttl)
	require.NoError(t, err)
	return s
}

func TestNewService_Validation(t *testing.T) {
	_, err := NewService(nil, time.Minute)
	require.Error(t, err)

	_, err = NewService(testKey, 0)
	require.Error(t, err)
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	s := newTestService(t, 30*time.Minute)

	tok, exp, err := s.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	require.WithinDuration(t, time.Now().Add(30*time.Minute), exp, 5*time.Second)

	id, err := s.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, int64(42), id)
}

func TestIssue_DistinctTokensPerCall(t *testing.T) {
	s := newTestService(t, time.Minute)

	t1, _, err := s.Issue(7)
	require.NoError(t, err)
	t2, _, err := s.Issue(7)
	require.NoError(t, err)
	require.NotEqual(t, t1, t2) // fresh jti every call
}

func TestVerify_Expired(t *testing.T) {
	s := newTestService(t, time.Minute)

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "42",
		IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Minute)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
	require.NoError(t, err)

	_, err = s.Verify(tok)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestVerify_WrongKey(t *testing.T) {
	s := newTestService(t, time.Minute)
	other, err := NewService([]byte("another-signing-key-32-bytes!!!!"), time.Minute)
	require.NoError(t, err)

	tok, _, err := other.Issue(42)
	require.NoError(t, err)

	_, err = s.Verify(tok)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestVerify_Tampered(t *testing.T) {
	s := newTestService(t, time.Minute)

	tok, _, err := s.Issue(42)
	require.NoError(t, err)

	// flip one byte in the payload segment
	b := []byte(tok)
	b[len(b)/2] ^= 0x01
	_, err = s.Verify(string(b))
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	s := newTestService(t, time.Minute)
	claims := jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}

	// same key, different HMAC variant
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(testKey)
	require.NoError(t, err)
	_, err = s.Verify(hs512)
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	// unsigned token
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = s.Verify(none)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestVerify_MalformedAndBadSubject(t *testing.T) {
	s := newTestService(t, time.Minute)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := s.Verify(tok)
		require.ErrorIs(t, err, errs.ErrUnauthorized, "token %q", tok)
	}

	claims := jwt.RegisteredClaims{
		Subject:   "not-a-number",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
	require.NoError(t, err)
	_, err = s.Verify(tok)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestVerify_SubjectMatchesIssued(t *testing.T) {
	s := newTestService(t, time.Minute)

	for _, id := range []int64{1, 99, 1 << 40} {
		tok, _, err := s.Issue(id)
		require.NoError(t, err)
		got, err := s.Verify(tok)
		require.NoError(t, err)
		require.Equal(t, id, got, "subject %s", strconv.FormatInt(id, 10))
	}
}
