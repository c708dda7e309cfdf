// address - пакет для вывода адреса кошелька Sui из токена и соли по схеме zkLogin.
// Функция чистая: одинаковая пара (subject, aud, iss, соль) всегда даёт один адрес,
// разные соли для одного subject дают разные адреса.
package address

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/abezemskiy/suisign/internal/common/identity/tools/token"
)

// schemeFlag - байт схемы подписи zkLogin в адресах Sui.
const schemeFlag byte = 0x05

// Derive - функция вывода адреса кошелька из синтетического токена и соли.
// Адрес строится как blake2b-256 от (флаг схемы || длина issuer || issuer || seed адреса),
// где seed адреса - blake2b-256 от (subject, audience, соль).
func Derive(tok token.Synthetic, saltValue string) (string, error) {
	if tok.Subject == "" {
		return "", fmt.Errorf("token subject is empty")
	}
	if saltValue == "" {
		return "", fmt.Errorf("salt is empty")
	}

	// seed адреса связывает subject и audience с секретной солью
	seed := blake2b.Sum256([]byte(tok.Subject + ":" + tok.Audience + ":" + saltValue))

	iss := []byte(tok.Issuer)
	payload := make([]byte, 0, 2+len(iss)+len(seed))
	payload = append(payload, schemeFlag, byte(len(iss)))
	payload = append(payload, iss...)
	payload = append(payload, seed[:]...)

	digest := blake2b.Sum256(payload)
	return "0x" + hex.EncodeToString(digest[:]), nil
}
