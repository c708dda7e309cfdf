// signer - пакет для подписания байтов транзакций серверным ключом Sui.
// Ключ задаётся в формате Sui (suiprivatekey1{base64}) и превращается в пару ключей Ed25519.
package signer

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// suiPrivateKeyPrefix - префикс приватного ключа в формате Sui.
const suiPrivateKeyPrefix = "suiprivatekey1"

// ed25519Flag - байт схемы подписи Ed25519 в сериализованных подписях и адресах Sui.
const ed25519Flag byte = 0x00

// Signer - подписывает транзакции приватным ключом сервера.
type Signer struct {
	priv    ed25519.PrivateKey
	address string
}

// New - возвращает нового подписанта из приватного ключа в формате Sui.
func New(suiPrivateKey string) (*Signer, error) {
	if !strings.HasPrefix(suiPrivateKey, suiPrivateKeyPrefix) {
		return nil, fmt.Errorf("invalid sui private key format, expected prefix %s", suiPrivateKeyPrefix)
	}

	seed, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(suiPrivateKey, suiPrivateKeyPrefix))
	if err != nil {
		return nil, fmt.Errorf("failed to decode sui private key, %w", err)
	}
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("invalid sui private key length %d, expected %d", len(seed), ed25519.SeedSize)
	}

	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)

	// адрес - blake2b-256 от (флаг схемы || публичный ключ)
	digest := blake2b.Sum256(append([]byte{ed25519Flag}, pub...))

	return &Signer{
		priv:    priv,
		address: "0x" + hex.EncodeToString(digest[:]),
	}, nil
}

// Address - возвращает адрес кошелька подписанта.
func (s *Signer) Address() string {
	return s.address
}

// Sign - подписывает байты транзакции и возвращает сериализованную подпись Sui:
// base64 от (флаг схемы || подпись || публичный ключ).
func (s *Signer) Sign(txBytes []byte) string {
	sig := ed25519.Sign(s.priv, txBytes)
	pub := s.priv.Public().(ed25519.PublicKey)

	serialized := make([]byte, 0, 1+len(sig)+len(pub))
	serialized = append(serialized, ed25519Flag)
	serialized = append(serialized, sig...)
	serialized = append(serialized, pub...)

	return base64.StdEncoding.EncodeToString(serialized)
}
