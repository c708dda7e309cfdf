// predetermined - пакет для вывода предвычисленных кошельков.
// Адрес кошелька вычисляется детерминированно из идентификатора пользователя
// и идентификатора контракта до того, как пользователь впервые войдёт в систему,
// поэтому документ можно авторизовать для подписанта заранее.
package predetermined

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abezemskiy/suisign/internal/common/identity/tools/checker"
	"github.com/abezemskiy/suisign/internal/common/identity/tools/hasher"
	"github.com/abezemskiy/suisign/internal/common/identity/tools/token"
	"github.com/abezemskiy/suisign/internal/repositories/wallets"
	"github.com/abezemskiy/suisign/internal/server/logger"
	"github.com/abezemskiy/suisign/internal/wallet/address"
	"github.com/abezemskiy/suisign/internal/wallet/predetermined/cache"
	"github.com/abezemskiy/suisign/internal/wallet/salt"
)

// Способ вывода адреса, попадает в результат для диагностики.
const (
	MethodGlobal   = "zklogin-global"          // глобальный адрес без привязки к контракту
	MethodContract = "zklogin-contract-scoped" // адрес в области действия контракта
)

// ModeEmail - метка пространства имён для HKDF-соли.
// Метка одна для всех входов: email и заранее хэшированный идентификатор одного
// пользователя обязаны сходиться к одному адресу в рамках контракта.
const ModeEmail = "email-based"

// Generator - генератор предвычисленных кошельков.
// Вывод чистый: сеть и база данных не используются, единственная зависимость
// с состоянием - явный кэш, который можно очистить.
type Generator struct {
	salts *salt.Deriver
	cache *cache.WalletCache
}

// NewGenerator - возвращает новый генератор предвычисленных кошельков.
func NewGenerator(salts *salt.Deriver, walletCache *cache.WalletCache) *Generator {
	return &Generator{
		salts: salts,
		cache: walletCache,
	}
}

// Generate - метод для вывода кошелька по email или хэшу идентификатора.
// Перед любым хэшированием email нормализуется. Subject синтетического токена
// всегда хэш идентификатора: оба пути входа дают один и тот же адрес.
func (g *Generator) Generate(identityInput, contractID string) (wallets.Wallet, error) {
	if identityInput == "" {
		return wallets.Wallet{}, fmt.Errorf("identity input is empty")
	}

	// Нормализую email до хэширования, хэширование идемпотентно для уже хэшированных входов
	var email string
	normalized := identityInput
	if checker.CheckEmail(identityInput) {
		normalized = hasher.NormalizeEmail(identityInput)
		email = normalized
	}
	identityHash := hasher.Hash(normalized)

	// Проверяю кэш: значения детерминированы, повторный вывод не нужен
	if w, ok := g.cache.Get(identityHash, contractID); ok {
		logger.ServerLog.Debug("predetermined wallet found in cache",
			zap.String("identity", hasher.Preview(identityHash)),
			zap.String("contract", contractID))
		return w, nil
	}

	saltValue, err := g.salts.Derive(identityHash, contractID, ModeEmail)
	if err != nil {
		return wallets.Wallet{}, fmt.Errorf("failed to derive salt, %w", err)
	}

	syntheticToken, err := token.BuildSynthetic(identityHash, g.salts.ClientID(), salt.Issuer)
	if err != nil {
		return wallets.Wallet{}, fmt.Errorf("failed to build synthetic token, %w", err)
	}

	walletAddress, err := address.Derive(syntheticToken, saltValue)
	if err != nil {
		return wallets.Wallet{}, fmt.Errorf("failed to derive wallet address, %w", err)
	}

	method := MethodGlobal
	if contractID != "" {
		method = MethodContract
	}

	w := wallets.Wallet{
		Identity:     email,
		IdentityHash: identityHash,
		ContractID:   contractID,
		Address:      walletAddress,
		CreatedAt:    time.Now(),
		Method:       method,
	}
	g.cache.Set(identityHash, contractID, w)

	logger.ServerLog.Debug("predetermined wallet derived",
		zap.String("identity", hasher.Preview(identityHash)),
		zap.String("contract", contractID),
		zap.String("address", hasher.Preview(walletAddress)),
		zap.String("method", method))

	return w, nil
}

// GenerateMany - метод для пакетного вывода кошельков.
// Сбой вывода для одной записи не прерывает пакет: запись пропускается и логируется,
// успешные кошельки возвращаются в порядке входных значений.
func (g *Generator) GenerateMany(identityInputs []string, contractID string) ([]wallets.Wallet, []error) {
	derived := make([]wallets.Wallet, 0, len(identityInputs))
	var failures []error

	for _, input := range identityInputs {
		w, err := g.Generate(input, contractID)
		if err != nil {
			logger.ServerLog.Warn("failed to derive wallet in batch, entry skipped",
				zap.String("identity", hasher.Preview(input)),
				zap.String("contract", contractID),
				zap.String("error", err.Error()))
			failures = append(failures, fmt.Errorf("failed to derive wallet for entry %s, %w", hasher.Preview(input), err))
			continue
		}
		derived = append(derived, w)
	}

	return derived, failures
}
