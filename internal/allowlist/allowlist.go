// allowlist - пакет службы авторизации подписантов контракта.
// Служба превращает список входных значений подписантов (адреса, email-ы,
// хэшированные идентификаторы) в набор адресов кошельков и регистрирует его
// в объекте списка допуска в блокчейне.
package allowlist

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abezemskiy/suisign/internal/common/identity/tools/checker"
	"github.com/abezemskiy/suisign/internal/common/identity/tools/hasher"
	"github.com/abezemskiy/suisign/internal/repositories/chain"
	"github.com/abezemskiy/suisign/internal/repositories/users"
	"github.com/abezemskiy/suisign/internal/repositories/wallets"
	"github.com/abezemskiy/suisign/internal/server/logger"
)

// Result - результат создания списка допуска и авторизации подписантов.
// Поля SignerCount и RegisterFailed делают наблюдаемым состояние, когда список
// допуска создан, а регистрация адресов не удалась: транзакции в блокчейне
// не откатываются, поэтому такая половина результата остаётся валидной.
type Result struct {
	AllowlistID       string   `json:"allowlistId"`              // идентификатор созданного списка допуска
	CapID             string   `json:"capId"`                    // идентификатор capability-объекта
	AuthorizedWallets []string `json:"authorizedWallets"`        // разрешённые адреса кошельков
	Skipped           []string `json:"skipped,omitempty"`        // входные значения, которые не удалось разрешить
	SignerCount       int      `json:"signerCount"`              // число адресов, зарегистрированных в блокчейне
	RegisterFailed    bool     `json:"registerFailed,omitempty"` // регистрация адресов не удалась
}

// Service - служба авторизации подписантов.
type Service struct {
	users     users.WalletFinder
	generator wallets.Generator
	chain     chain.Caller
}

// NewService - возвращает новую службу авторизации подписантов.
func NewService(userWallets users.WalletFinder, generator wallets.Generator, caller chain.Caller) *Service {
	return &Service{
		users:     userWallets,
		generator: generator,
		chain:     caller,
	}
}

// ResolveSigners - метод для разрешения входных значений подписантов в адреса кошельков.
// Готовые адреса проходят без изменений, для email-ов сначала ищется уже известный
// кошелёк в хранилище, иначе адрес выводится детерминированно. Сбой разрешения одной
// записи не прерывает обработку остальных: запись попадает в список пропущенных.
func (s *Service) ResolveSigners(ctx context.Context, contractID string, signerInputs []string) (resolved []string, skipped []string) {
	for _, input := range signerInputs {
		signer := checker.ClassifySigner(input)

		switch signer.Kind {
		case checker.KindAddress:
			resolved = append(resolved, signer.Value)

		case checker.KindEmail:
			emailHash := hasher.Hash(hasher.NormalizeEmail(signer.Value))
			address, ok, err := s.users.FindUserWalletByEmail(ctx, emailHash)
			if err != nil {
				// ошибка хранилища: запись пропускается, обработка продолжается
				logger.ServerLog.Warn("failed to look up user wallet, signer skipped",
					zap.String("identity", hasher.Preview(emailHash)),
					zap.String("error", err.Error()))
				skipped = append(skipped, signer.Value)
				continue
			}
			if ok {
				resolved = append(resolved, address)
				continue
			}
			s.appendDerived(&resolved, &skipped, signer.Value, contractID)

		case checker.KindHashedIdentity:
			s.appendDerived(&resolved, &skipped, signer.Value, contractID)

		default:
			logger.ServerLog.Warn("unrecognized signer input, skipped",
				zap.String("input", hasher.Preview(signer.Value)))
			skipped = append(skipped, signer.Value)
		}
	}

	return resolved, skipped
}

// appendDerived - выводит предвычисленный кошелёк для идентификатора и добавляет адрес в результат.
// При ошибке вывода запись пропускается с предупреждением.
func (s *Service) appendDerived(resolved, skipped *[]string, identity, contractID string) {
	w, err := s.generator.Generate(identity, contractID)
	if err != nil {
		logger.ServerLog.Warn("failed to derive predetermined wallet, signer skipped",
			zap.String("identity", hasher.Preview(identity)),
			zap.String("contract", contractID),
			zap.String("error", err.Error()))
		*skipped = append(*skipped, identity)
		return
	}
	*resolved = append(*resolved, w.Address)
}

// CreateAndAuthorize - метод для создания списка допуска контракта и регистрации подписантов.
// Создание списка и регистрация адресов - две независимые транзакции без атомарности:
// при сбое регистрации уже созданный список возвращается вызывающему с признаком
// RegisterFailed и нулевым SignerCount.
func (s *Service) CreateAndAuthorize(ctx context.Context, contractID string, signerInputs []string) (*Result, error) {
	resolved, skipped := s.ResolveSigners(ctx, contractID, signerInputs)

	allowlistID, capID, err := s.chain.CreateAllowlist(ctx, contractID)
	if err != nil {
		return nil, fmt.Errorf("failed to create allowlist for contract %s, %w", contractID, err)
	}

	// жду, пока созданные объекты станут видимыми в узле
	if err := s.chain.WaitForObjects(ctx, []string{allowlistID, capID}); err != nil {
		return nil, fmt.Errorf("allowlist objects did not become visible, %w", err)
	}

	result := &Result{
		AllowlistID:       allowlistID,
		CapID:             capID,
		AuthorizedWallets: resolved,
		Skipped:           skipped,
	}

	if len(resolved) > 0 {
		if err := s.chain.AddAllowlistEntries(ctx, allowlistID, capID, resolved); err != nil {
			// список допуска уже создан и не откатывается, сбой регистрации только помечается
			logger.ServerLog.Warn("failed to register addresses in allowlist",
				zap.String("contract", contractID),
				zap.String("allowlist", allowlistID),
				zap.String("error", err.Error()))
			result.RegisterFailed = true
			return result, nil
		}
	}
	result.SignerCount = len(resolved)

	logger.ServerLog.Info("allowlist created and authorized",
		zap.String("contract", contractID),
		zap.String("allowlist", allowlistID),
		zap.Int("signers", result.SignerCount),
		zap.Int("skipped", len(skipped)))

	return result, nil
}

// AppendAuthorize - метод для регистрации дополнительных подписантов в уже существующем списке допуска.
// Новый список допуска не создаётся: адреса дописываются в существующий объект,
// поэтому идентификаторы allowlistID и capID контракта остаются прежними. Адреса,
// уже присутствующие в списке registered, повторно в блокчейне не регистрируются.
func (s *Service) AppendAuthorize(ctx context.Context, contractID, allowlistID, capID string, registered []string, signerInputs []string) (*Result, error) {
	if allowlistID == "" || capID == "" {
		return nil, fmt.Errorf("contract %s has no allowlist to append to", contractID)
	}

	resolved, skipped := s.ResolveSigners(ctx, contractID, signerInputs)

	known := make(map[string]struct{}, len(registered))
	for _, address := range registered {
		known[address] = struct{}{}
	}

	fresh := make([]string, 0, len(resolved))
	for _, address := range resolved {
		if _, ok := known[address]; ok {
			continue
		}
		known[address] = struct{}{}
		fresh = append(fresh, address)
	}

	result := &Result{
		AllowlistID:       allowlistID,
		CapID:             capID,
		AuthorizedWallets: append(append([]string{}, registered...), fresh...),
		Skipped:           skipped,
	}

	if len(fresh) > 0 {
		if err := s.chain.AddAllowlistEntries(ctx, allowlistID, capID, fresh); err != nil {
			// уже зарегистрированные адреса сохраняют допуск, добавление только помечается
			logger.ServerLog.Warn("failed to register additional addresses in allowlist",
				zap.String("contract", contractID),
				zap.String("allowlist", allowlistID),
				zap.String("error", err.Error()))
			result.RegisterFailed = true
			result.AuthorizedWallets = registered
			result.SignerCount = len(registered)
			return result, nil
		}
	}
	result.SignerCount = len(result.AuthorizedWallets)

	logger.ServerLog.Info("additional signers authorized in existing allowlist",
		zap.String("contract", contractID),
		zap.String("allowlist", allowlistID),
		zap.Int("added", len(fresh)),
		zap.Int("signers", result.SignerCount),
		zap.Int("skipped", len(skipped)))

	return result, nil
}
