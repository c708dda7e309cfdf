// token - пакет для работы с токенами двух видов:
// сессионными JWT, которыми сервер аутентифицирует запросы клиентов,
// и синтетическими токенами в форме zkLogin, которые нужны только как вход
// для функции вывода адреса кошелька и никогда не передаются наружу.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Секретный ключ для генерации JWT.
var secretKey string

// SetSecretKey - функция для установки секретного ключа для генерации JWT.
func SetSecretKey(newKey string) {
	secretKey = newKey
}

// expireHour - время действия токена в часах.
var expireHour int

// SetExpireHour - функция для установки времени действия токена в часах.
func SetExpireHour(expire int) {
	expireHour = expire
}

// Claims - структура утверждений, которая включает стандартные утверждения
// и пользовательские: идентификатор пользователя и его email.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
	Email  string
}

// BuildJWT - создает сессионный токен и возвращает его в виде строки.
func BuildJWT(userID, email string) (string, error) {
	// создаю токен с алгоритмом подписи HS256 и утверждениями - Claims
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			// дата истечения токена
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * time.Duration(expireHour))),
		},
		UserID: userID,
		Email:  email,
	})

	// создаю строку токена
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to signed JWT to string, %w", err)
	}
	return tokenString, nil
}

// GetClaimsFromToken - функция для получения утверждений из токена с проверкой заголовка алгоритма токена.
// Заголовок должен совпадать с тем, который сервер использует для подписи и проверки токенов.
func GetClaimsFromToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secretKey), nil
		})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}

	return claims, nil
}

// Synthetic - значение-обёртка над токеном в форме zkLogin.
// Поле Raw содержит строковое представление токена (header.payload.signature),
// которое ожидает функция вывода адреса. Токен нигде не проверяется и не хранится.
type Synthetic struct {
	Raw      string
	Subject  string
	Audience string
	Issuer   string
}

// BuildSynthetic - функция, которая собирает синтетический токен для вывода адреса кошелька.
// Токен подписывается методом none: он существует только ради своей формы,
// аутентификация через него невозможна.
func BuildSynthetic(subject, audience, issuer string) (Synthetic, error) {
	if subject == "" {
		return Synthetic{}, fmt.Errorf("subject of synthetic token is empty")
	}

	t := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": subject,
		"aud": audience,
		"iss": issuer,
	})

	raw, err := t.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		return Synthetic{}, fmt.Errorf("failed to build synthetic token, %w", err)
	}

	return Synthetic{
		Raw:      raw,
		Subject:  subject,
		Audience: audience,
		Issuer:   issuer,
	}, nil
}
