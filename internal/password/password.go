package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

/* bcrypt сам генерирует соль, поэтому одинаковые пароли
 * дают разные хэши при каждом вызове. */
const cost = 10

func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

/* Несовпадение пароля — это не ошибка, а false.
 * Ошибка возвращается только если сам хэш нечитаем,
 * то есть база содержит мусор. */
func Verify(plain string, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
