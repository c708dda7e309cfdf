// checker - пакет со вспомогательными функциями для проверки и классификации входных данных.
package checker

import (
	"regexp"
	"strings"
)

// Вид входного значения подписанта после классификации.
const (
	KindAddress        = iota // готовый адрес кошелька
	KindHashedIdentity        // хэшированный идентификатор пользователя
	KindEmail                 // обычный email
	KindUnknown               // не удалось распознать
)

// SignerInput - размеченное входное значение подписанта.
// Дальнейшая обработка ветвится по полю Kind, а не по повторным проверкам формы строки.
type SignerInput struct {
	Kind  int
	Value string
}

// addressPattern - шаблон адреса кошелька Sui: префикс 0x и 32 байта в hex.
var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// digestPattern - шаблон хэшированного идентификатора: 64 hex-символа без префикса.
var digestPattern = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

// ClassifySigner - функция, которая классифицирует входное значение подписанта.
// Возможные виды: адрес кошелька, хэшированный идентификатор, email.
func ClassifySigner(input string) SignerInput {
	trimmed := strings.TrimSpace(input)

	switch {
	case addressPattern.MatchString(trimmed):
		return SignerInput{Kind: KindAddress, Value: trimmed}
	case digestPattern.MatchString(trimmed):
		return SignerInput{Kind: KindHashedIdentity, Value: trimmed}
	case strings.Contains(trimmed, "@"):
		return SignerInput{Kind: KindEmail, Value: trimmed}
	default:
		return SignerInput{Kind: KindUnknown, Value: trimmed}
	}
}

// CheckAddress - функция для проверки корректности адреса кошелька.
func CheckAddress(address string) bool {
	return addressPattern.MatchString(address)
}

// CheckEmail - функция для проверки корректности email.
func CheckEmail(email string) bool {
	// проверяю, что email не является пустой строкой и содержит символ @
	return email != "" && strings.Contains(email, "@")
}

// CheckHash - функция для проверки корректности хэша.
func CheckHash(hash string) bool {
	// проверяю, что хэш не является пустой строкой
	return hash != ""
}

// IsAuthorize - функция для проверки совпадения авторизационных данных пользователя.
func IsAuthorize(wantHash, getHash string) bool {
	return wantHash == getHash
}
