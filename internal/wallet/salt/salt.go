// salt - пакет для детерминированного вывода соли zkLogin.
// Соль выводится из серверного мастер-секрета через HKDF-SHA256 и привязывается
// к паре (идентификатор пользователя, контракт): один и тот же вход всегда даёт
// одну и ту же соль, разные контракты - разные соли.
package salt

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"
)

// Issuer - фиксированный issuer OAuth, который участвует в выводе соли и адреса.
const Issuer = "https://accounts.google.com"

// saltLength - длина выводимой соли в байтах.
const saltLength = 16

// ErrConfiguration - ошибка конфигурации: не задан мастер-секрет или идентификатор клиента OAuth.
// Ошибка фатальна: ослабленный или недетерминированный запасной путь вывода недопустим.
var ErrConfiguration = errors.New("master seed or oauth client id is not configured")

// Deriver - детерминированный вывод соли из мастер-секрета.
type Deriver struct {
	masterSeed string
	clientID   string
}

// NewDeriver - возвращает новый экземпляр вывода соли.
func NewDeriver(masterSeed, clientID string) *Deriver {
	return &Deriver{
		masterSeed: masterSeed,
		clientID:   clientID,
	}
}

// ClientID - возвращает идентификатор клиента OAuth, с которым настроен вывод соли.
func (d *Deriver) ClientID() string {
	return d.clientID
}

// Derive - метод для вывода соли для пары (идентификатор, контракт).
// Параметр mode разделяет пространства имён внутри HKDF-соли (например "email-based").
// Возвращаемое значение - десятичная строка большого числа: формат, который
// ожидает библиотека вывода адреса.
func (d *Deriver) Derive(identitySubject, contractID, mode string) (string, error) {
	if d.masterSeed == "" || d.clientID == "" {
		return "", ErrConfiguration
	}
	if identitySubject == "" {
		return "", fmt.Errorf("identity subject is empty")
	}

	// Собираю HKDF-соль из фиксированных констант OAuth и параметров области действия
	hkdfSalt := Issuer + ":" + d.clientID
	if contractID != "" {
		hkdfSalt += ":" + contractID
	}
	if mode != "" {
		hkdfSalt += ":" + mode
	}

	// HKDF-SHA256 от мастер-секрета, усечённый до saltLength байт
	reader := hkdf.New(sha256.New, []byte(d.masterSeed), []byte(hkdfSalt), []byte(identitySubject))
	out := make([]byte, saltLength)
	if _, err := io.ReadFull(reader, out); err != nil {
		return "", fmt.Errorf("failed to read hkdf output, %w", err)
	}

	// Интерпретирую выведенные байты как большое число и возвращаю его десятичную запись
	return new(big.Int).SetBytes(out).String(), nil
}
