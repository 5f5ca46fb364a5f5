package token

import (
	"errors"
	"time"

	"github.com/kataras/jwt"
)

/* Токен не отзывается сервером: подпись и срок годности —
 * единственные проверки его валидности. */

type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

var ErrInvalid = errors.New("invalid token")

func Issue(secret []byte, claims Claims, lifetime time.Duration) (string, error) {
	signed, err := jwt.Sign(jwt.HS512, secret, claims, jwt.MaxAge(lifetime))
	if err != nil {
		return "", err
	}
	return string(signed), nil
}

func Verify(secret []byte, raw string) (*Claims, error) {
	verifiedToken, err := jwt.Verify(jwt.HS512, secret, []byte(raw))
	if err != nil {
		return nil, err
	}
	claims := &Claims{}
	if err := verifiedToken.Claims(claims); err != nil {
		return nil, err
	}
	if claims.UserID == "" {
		return nil, ErrInvalid
	}
	return claims, nil
}
