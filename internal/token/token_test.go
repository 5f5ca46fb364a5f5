package token

import (
	"testing"
	"time"

	"github.com/kataras/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	issued := Claims{UserID: "user-123", Email: "test@example.com"}

	raw, err := Issue(testSecret, issued, 24*time.Hour)
	require.NoError(t, err)

	claims, err := Verify(testSecret, raw)
	require.NoError(t, err)
	assert.Equal(t, issued, *claims)
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	/* Собираем токен с exp в прошлом напрямую,
	 * минуя Issue с его нормальным временем жизни */
	expired := jwt.Claims{
		Expiry:   time.Now().Add(-time.Minute).Unix(),
		IssuedAt: time.Now().Add(-2 * time.Hour).Unix(),
	}
	raw, err := jwt.Sign(jwt.HS512, testSecret,
		jwt.Merge(Claims{UserID: "user-123", Email: "test@example.com"}, expired))
	require.NoError(t, err)

	_, err = Verify(testSecret, string(raw))
	assert.ErrorIs(t, err, jwt.ErrExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	raw, err := Issue(testSecret, Claims{UserID: "user-123"}, time.Hour)
	require.NoError(t, err)

	_, err = Verify([]byte("another-secret"), raw)
	assert.Error(t, err)
}

func TestVerifyMalformed(t *testing.T) {
	t.Parallel()

	_, err := Verify(testSecret, "not.a.jwt")
	assert.Error(t, err)
}

func TestVerifyEmptyClaims(t *testing.T) {
	t.Parallel()

	/* Подпись валидна, но userId в claims отсутствует */
	raw, err := jwt.Sign(jwt.HS512, testSecret, jwt.Map{"foo": "bar"}, jwt.MaxAge(time.Hour))
	require.NoError(t, err)

	_, err = Verify(testSecret, string(raw))
	assert.ErrorIs(t, err, ErrInvalid)
}
