// hasher - пакет со вспомогательными функциями для псевдонимизации идентификаторов пользователей.
// Сырые идентификаторы (email, subject OAuth) нигде не хранятся и не сравниваются напрямую,
// вместо них используется SHA-256 хэш в виде hex-строки.
package hasher

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

// hexDigest - шаблон готового хэша: 64 шестнадцатеричных символа.
var hexDigest = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

// Hash - функция, которая хэширует идентификатор пользователя и возвращает хэш в виде hex-строки в нижнем регистре.
// Если переданная строка уже является хэшем, она возвращается без изменений.
// Проверка нужна, чтобы избежать повторного хэширования, когда уже хэшированный
// идентификатор проходит через несколько слоёв приложения.
func Hash(identity string) string {
	if IsHashed(identity) {
		return identity
	}

	sum := sha256.Sum256([]byte(identity))
	return hex.EncodeToString(sum[:])
}

// IsHashed - функция для проверки, является ли строка уже вычисленным хэшем идентификатора.
func IsHashed(identity string) bool {
	return hexDigest.MatchString(identity)
}

// NormalizeEmail - функция для приведения email к каноническому виду перед хэшированием.
// Без нормализации один и тот же адрес в разном регистре дал бы разные хэши и разные кошельки.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Preview - функция для получения усечённого представления секретной строки для логирования.
// В логи никогда не попадает полное значение идентификатора или соли.
func Preview(value string) string {
	if len(value) <= 8 {
		return value
	}
	return value[:8] + "..."
}
