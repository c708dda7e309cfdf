// signing - пакет проверки права пользователя подписать контракт.
// Проверка всегда возвращает структурированный результат и никогда не паникует
// наружу: любая внутренняя ошибка трактуется как отказ, а не как допуск.
package signing

import (
	"go.uber.org/zap"

	"github.com/abezemskiy/suisign/internal/common/identity/tools/checker"
	"github.com/abezemskiy/suisign/internal/common/identity/tools/hasher"
	"github.com/abezemskiy/suisign/internal/repositories/contracts"
	"github.com/abezemskiy/suisign/internal/repositories/wallets"
	"github.com/abezemskiy/suisign/internal/server/logger"
)

// Причина решения о праве подписи.
const (
	ReasonOwner      = "contract_owner"    // пользователь - владелец контракта
	ReasonAuthorized = "authorized_wallet" // кошелёк пользователя входит в список допуска
	ReasonDenied     = "not_authorized"    // права подписи нет
)

// Result - результат проверки права подписи. Вычисляется на каждую попытку и не хранится.
type Result struct {
	CanSign           bool     `json:"canSign"`                     // разрешена ли подпись
	Reason            string   `json:"reason"`                      // причина решения
	UserWalletAddress string   `json:"userWalletAddress,omitempty"` // выведенный адрес кошелька пользователя
	AuthorizedWallets []string `json:"authorizedWallets,omitempty"` // список допуска контракта
}

// Authenticator - проверяет право пользователя подписать контракт.
type Authenticator struct {
	generator wallets.Generator
}

// NewAuthenticator - возвращает новый экземпляр проверки права подписи.
func NewAuthenticator(generator wallets.Generator) *Authenticator {
	return &Authenticator{generator: generator}
}

// denied - результат отказа.
func denied() Result {
	return Result{CanSign: false, Reason: ReasonDenied}
}

// Authenticate - метод для проверки права пользователя подписать контракт.
// Сначала быстрая проверка владельца: владелец подписывает всегда, даже при пустом
// списке допуска. Затем адрес кошелька пользователя выводится заново тем же
// детерминированным путём и проверяется на вхождение в список допуска.
func (a *Authenticator) Authenticate(userEmail, userIdentity string, contract contracts.Contract) (result Result) {
	// проверка закрывается при любой панике внутри вывода адреса
	defer func() {
		if r := recover(); r != nil {
			logger.ServerLog.Error("panic during signing authentication, access denied",
				zap.Any("panic", r),
				zap.String("contract", contract.ID))
			result = denied()
		}
	}()

	// Быстрая проверка владельца контракта.
	// Email нормализуется перед хэшированием так же, как при создании контракта.
	identity := userIdentity
	if checker.CheckEmail(identity) {
		identity = hasher.NormalizeEmail(identity)
	}
	if identity != "" && checker.IsAuthorize(contract.OwnerHash, hasher.Hash(identity)) {
		return Result{CanSign: true, Reason: ReasonOwner}
	}

	// Пустой список допуска никогда не разрешает подпись
	if len(contract.AuthorizedUsers) == 0 {
		return denied()
	}

	// Вывожу предвычисленный кошелёк пользователя для этого контракта
	w, err := a.generator.Generate(userEmail, contract.ID)
	if err != nil {
		// ошибка вывода означает отказ, а не сбой проверки
		logger.ServerLog.Error("failed to derive user wallet, access denied",
			zap.String("identity", hasher.Preview(userEmail)),
			zap.String("contract", contract.ID),
			zap.String("error", err.Error()))
		return denied()
	}

	for _, authorized := range contract.AuthorizedUsers {
		if w.Address == authorized {
			return Result{
				CanSign:           true,
				Reason:            ReasonAuthorized,
				UserWalletAddress: w.Address,
				AuthorizedWallets: contract.AuthorizedUsers,
			}
		}
	}

	return Result{
		CanSign:           false,
		Reason:            ReasonDenied,
		UserWalletAddress: w.Address,
		AuthorizedWallets: contract.AuthorizedUsers,
	}
}
