package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/abezemskiy/suisign/internal/allowlist"
	"github.com/abezemskiy/suisign/internal/chain/rpc"
	"github.com/abezemskiy/suisign/internal/common/identity/tools/checker"
	"github.com/abezemskiy/suisign/internal/common/identity/tools/hasher"
	"github.com/abezemskiy/suisign/internal/common/identity/tools/id"
	"github.com/abezemskiy/suisign/internal/common/identity/tools/token"
	"github.com/abezemskiy/suisign/internal/repositories/contracts"
	"github.com/abezemskiy/suisign/internal/repositories/identity"
	"github.com/abezemskiy/suisign/internal/repositories/users"
	"github.com/abezemskiy/suisign/internal/repositories/wallets"
	"github.com/abezemskiy/suisign/internal/server/identity/auth"
	"github.com/abezemskiy/suisign/internal/server/logger"
	"github.com/abezemskiy/suisign/internal/server/signing"
	"github.com/abezemskiy/suisign/internal/wallet/salt"
)

// WalletRequest - структура запроса на вывод предвычисленного кошелька.
type WalletRequest struct {
	Identity   string `json:"identity"`             // email или хэш идентификатора пользователя
	ContractID string `json:"contractId,omitempty"` // идентификатор контракта для контрактной области действия
}

// BatchWalletRequest - структура запроса на пакетный вывод кошельков.
type BatchWalletRequest struct {
	Identities []string `json:"identities"`           // список идентификаторов
	ContractID string   `json:"contractId,omitempty"` // идентификатор контракта
}

// BatchWalletResponse - структура ответа на пакетный вывод кошельков.
type BatchWalletResponse struct {
	Wallets []wallets.Wallet `json:"wallets"`           // успешно выведенные кошельки в порядке входных значений
	Skipped []string         `json:"skipped,omitempty"` // ошибки пропущенных записей
}

// CreateContractRequest - структура запроса на создание контракта.
type CreateContractRequest struct {
	Title   string   `json:"title"`             // название контракта
	Signers []string `json:"signers,omitempty"` // входные значения подписантов
}

// CreateContractResponse - структура ответа на создание контракта.
type CreateContractResponse struct {
	ID        string            `json:"id"`                  // идентификатор созданного контракта
	Title     string            `json:"title"`               // название контракта
	Allowlist *allowlist.Result `json:"allowlist,omitempty"` // результат авторизации подписантов
}

// AuthorizeSignersRequest - структура запроса на авторизацию дополнительных подписантов.
type AuthorizeSignersRequest struct {
	Signers []string `json:"signers"` // входные значения подписантов
}

// Register - хэндлер для регистрации пользователя в системе. Если пользователь успешно зарегистрирован, то в заголовок ответа устанавливается
// токен пользователя. Email пользователя сохраняется в хранилище только в виде хэша.
func Register(res http.ResponseWriter, req *http.Request, ident identity.Identifier) {
	res.Header().Set("Content-Type", "text/plain")
	defer req.Body.Close()

	var regData identity.IdentityData
	if err := json.NewDecoder(req.Body).Decode(&regData); err != nil {
		logger.ServerLog.Error("failed to parse identity data to structer", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("failed to parse identity data to structer, %w", err).Error(), http.StatusBadRequest)
		return
	}

	// Проверяю корректность email
	if ok := checker.CheckEmail(regData.Email); !ok {
		logger.ServerLog.Error("email is not valid", zap.String("address", req.URL.String()))
		http.Error(res, "email is not valid", http.StatusBadRequest)
		return
	}
	// Проверяю корректность хэша от суммы email+пароль
	if ok := checker.CheckHash(regData.Hash); !ok {
		logger.ServerLog.Error("hash is not valid", zap.String("address", req.URL.String()))
		http.Error(res, "hash is not valid", http.StatusBadRequest)
		return
	}

	// вычисляю идентификатор пользователя
	id, err := id.GenerateId()
	if err != nil {
		logger.ServerLog.Error("failed to generate id", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("failed to generate id, %w", err).Error(), http.StatusInternalServerError)
		return
	}

	// Регистрирую пользователя в хранилище по хэшу email
	emailHash := hasher.Hash(hasher.NormalizeEmail(regData.Email))
	err = ident.Register(req.Context(), emailHash, regData.Hash, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// пользователь с данным email уже зарегистрирован в системе
			logger.ServerLog.Error("email already exists", zap.String("address", req.URL.String()), zap.String("email", hasher.Preview(emailHash)))
			http.Error(res, "email already exists", http.StatusConflict)
		} else {
			logger.ServerLog.Error("register user error", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
			http.Error(res, fmt.Errorf("register user error, %w", err).Error(), http.StatusInternalServerError)
		}
		return
	}

	// При успешной регистрации создаю токен и устанавливаю токен в заголовок
	token, err := token.BuildJWT(id, regData.Email)
	if err != nil {
		logger.ServerLog.Error("build JWT error", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("build JWT error, %w", err).Error(), http.StatusInternalServerError)
		return
	}
	// устанавливаю токен в заголовок
	res.Header().Set("Authorization", "Bearer "+token)
	res.WriteHeader(200)
}

// RegisterHandler - обертка над функцией Register.
func RegisterHandler(ident identity.Identifier) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		Register(res, req, ident)
	}
	return fn
}

// Authorize - хэндлер для авторизации пользователя в системе. Если пользователь авторизирован, то в заголовок ответа устанавливается
// токен пользователя.
func Authorize(res http.ResponseWriter, req *http.Request, ident identity.Identifier) {
	res.Header().Set("Content-Type", "text/plain")
	defer req.Body.Close()

	var regData identity.IdentityData
	if err := json.NewDecoder(req.Body).Decode(&regData); err != nil {
		logger.ServerLog.Error("failed to parse identity data to structer", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("failed to parse identity data to structer, %w", err).Error(), http.StatusBadRequest)
		return
	}

	// Проверяю корректность email
	if ok := checker.CheckEmail(regData.Email); !ok {
		logger.ServerLog.Error("email is not valid", zap.String("address", req.URL.String()))
		http.Error(res, "email is not valid", http.StatusBadRequest)
		return
	}
	// Проверяю корректность хэша
	if ok := checker.CheckHash(regData.Hash); !ok {
		logger.ServerLog.Error("hash is not valid", zap.String("address", req.URL.String()))
		http.Error(res, "hash is not valid", http.StatusBadRequest)
		return
	}

	// Получаю авторизационные данные пользователя из хранилища
	emailHash := hasher.Hash(hasher.NormalizeEmail(regData.Email))
	data, ok, err := ident.Authorize(req.Context(), emailHash)
	if err != nil {
		// внутренняя ошибка сервера
		logger.ServerLog.Error("authorize user error", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("authorize user error, %w", err).Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		// не найдено записей по представленному email. Пользователь не зарегистрирован.
		logger.ServerLog.Error("user not register", zap.String("address", req.URL.String()), zap.String("email", hasher.Preview(emailHash)))
		http.Error(res, "user not register", http.StatusBadRequest)
		return
	}

	// проверяю что хэш пары email+пароль отправленный пользователем для авторизации совпадает с тем, что хранится в хранилище.
	if !checker.IsAuthorize(data.Hash, regData.Hash) {
		logger.ServerLog.Error("password is wrong", zap.String("address", req.URL.String()))
		http.Error(res, "password is wrong", http.StatusBadRequest)
		return
	}

	// При успешной авторизации создаю токен и устанавливаю токен в заголовок
	token, err := token.BuildJWT(data.ID, regData.Email)
	if err != nil {
		logger.ServerLog.Error("build JWT error", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("build JWT error, %w", err).Error(), http.StatusInternalServerError)
		return
	}
	// устанавливаю токен в заголовок
	res.Header().Set("Authorization", "Bearer "+token)
	res.WriteHeader(200)
}

// AuthorizeHandler - обертка над функцией Authorize.
func AuthorizeHandler(ident identity.Identifier) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		Authorize(res, req, ident)
	}
	return fn
}

// GeneratePredeterminedWallet - хэндлер для вывода предвычисленного кошелька по идентификатору пользователя.
// Идентификатором может быть email или уже готовый хэш идентификатора.
// Глобальный кошелёк, выведенный по email, дополнительно сохраняется в хранилище:
// при последующей авторизации подписантов адрес будет найден без повторного вывода.
func GeneratePredeterminedWallet(res http.ResponseWriter, req *http.Request, generator wallets.Generator, keeper users.WalletKeeper) {
	defer req.Body.Close()

	var walletReq WalletRequest
	if err := json.NewDecoder(req.Body).Decode(&walletReq); err != nil {
		logger.ServerLog.Error("can't parse data from request", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		http.Error(res, "can't parse data from request", http.StatusBadRequest)
		return
	}
	if walletReq.Identity == "" {
		logger.ServerLog.Error("identity is not valid", zap.String("address", req.URL.String()))
		http.Error(res, "identity is not valid", http.StatusBadRequest)
		return
	}

	wallet, err := generator.Generate(walletReq.Identity, walletReq.ContractID)
	if err != nil {
		if errors.Is(err, salt.ErrConfiguration) {
			// отсутствие мастер-секрета фатально, запасного пути вывода нет
			logger.ServerLog.Error("wallet derivation is not configured", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
			http.Error(res, "wallet derivation is not configured", http.StatusInternalServerError)
			return
		}
		logger.ServerLog.Error("failed to generate wallet", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		http.Error(res, fmt.Errorf("failed to generate wallet, %w", err).Error(), http.StatusBadRequest)
		return
	}

	// связь email-кошелёк сохраняется только для глобальной области действия,
	// ошибка сохранения не мешает вернуть уже выведенный кошелёк
	if wallet.Identity != "" && wallet.ContractID == "" {
		if err := keeper.SaveUserWallet(req.Context(), wallet.IdentityHash, wallet.Address); err != nil {
			logger.ServerLog.Warn("failed to save user wallet",
				zap.String("identity", hasher.Preview(wallet.IdentityHash)),
				zap.String("error", err.Error()))
		}
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(res)
	if err := enc.Encode(wallet); err != nil {
		logger.ServerLog.Error("encoding response error", zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("encoding response error, %w", err).Error(), http.StatusInternalServerError)
		return
	}
	logger.ServerLog.Debug("successful generate predetermined wallet", zap.String("identity", hasher.Preview(wallet.IdentityHash)))
}

// GeneratePredeterminedWalletHandler - обертка над GeneratePredeterminedWallet.
func GeneratePredeterminedWalletHandler(generator wallets.Generator, keeper users.WalletKeeper) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		GeneratePredeterminedWallet(res, req, generator, keeper)
	}
	return fn
}

// GenerateWalletBatch - хэндлер для пакетного вывода кошельков.
// Сбойные записи пропускаются, успешные возвращаются в порядке входных значений.
func GenerateWalletBatch(res http.ResponseWriter, req *http.Request, generator wallets.Generator) {
	defer req.Body.Close()

	var batchReq BatchWalletRequest
	if err := json.NewDecoder(req.Body).Decode(&batchReq); err != nil {
		logger.ServerLog.Error("can't parse data from request", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		http.Error(res, "can't parse data from request", http.StatusBadRequest)
		return
	}
	if len(batchReq.Identities) == 0 {
		logger.ServerLog.Error("identities list is empty", zap.String("address", req.URL.String()))
		http.Error(res, "identities list is empty", http.StatusBadRequest)
		return
	}

	generated, errs := generator.GenerateMany(batchReq.Identities, batchReq.ContractID)

	response := BatchWalletResponse{
		Wallets: generated,
	}
	for _, err := range errs {
		response.Skipped = append(response.Skipped, err.Error())
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(res)
	if err := enc.Encode(response); err != nil {
		logger.ServerLog.Error("encoding response error", zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("encoding response error, %w", err).Error(), http.StatusInternalServerError)
		return
	}
	logger.ServerLog.Debug("successful generate wallet batch", zap.Int("wallets", len(generated)), zap.Int("skipped", len(errs)))
}

// GenerateWalletBatchHandler - обертка над GenerateWalletBatch.
func GenerateWalletBatchHandler(generator wallets.Generator) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		GenerateWalletBatch(res, req, generator)
	}
	return fn
}

// CreateContract - хэндлер для создания контракта. Владельцем становится текущий пользователь.
// Если в запросе переданы подписанты, то для контракта создается список допуска в блокчейне
// и подписанты авторизируются. Результат авторизации сохраняется на записи контракта.
func CreateContract(res http.ResponseWriter, req *http.Request, stor contracts.Store, service *allowlist.Service) {
	// получаю email пользователя из контекста
	email, ok := req.Context().Value(auth.UserEmailKey).(string)
	if !ok {
		logger.ServerLog.Error("user email not found in context", zap.String("address", req.URL.String()))
		http.Error(res, "user email not found in context", http.StatusInternalServerError)
		return
	}
	defer req.Body.Close()

	var createReq CreateContractRequest
	if err := json.NewDecoder(req.Body).Decode(&createReq); err != nil {
		logger.ServerLog.Error("can't parse data from request", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		http.Error(res, "can't parse data from request", http.StatusBadRequest)
		return
	}
	if createReq.Title == "" {
		logger.ServerLog.Error("contract title is empty", zap.String("address", req.URL.String()))
		http.Error(res, "contract title is empty", http.StatusBadRequest)
		return
	}

	// вычисляю идентификатор контракта
	contractID, err := id.GenerateId()
	if err != nil {
		logger.ServerLog.Error("failed to generate id", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("failed to generate id, %w", err).Error(), http.StatusInternalServerError)
		return
	}

	contract := contracts.Contract{
		ID:              contractID,
		Title:           createReq.Title,
		OwnerHash:       hasher.Hash(hasher.NormalizeEmail(email)),
		AuthorizedUsers: []string{},
		CreatedAt:       time.Now().UTC(),
	}
	if err := stor.CreateContract(req.Context(), contract); err != nil {
		logger.ServerLog.Error("create contract error", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		http.Error(res, fmt.Errorf("create contract error, %w", err).Error(), http.StatusInternalServerError)
		return
	}

	response := CreateContractResponse{
		ID:    contractID,
		Title: createReq.Title,
	}

	if len(createReq.Signers) > 0 {
		result, err := authorizeAndStore(res, req, stor, service, contractID, createReq.Signers)
		if err != nil {
			return
		}
		response.Allowlist = result
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(res)
	if err := enc.Encode(response); err != nil {
		logger.ServerLog.Error("encoding response error", zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("encoding response error, %w", err).Error(), http.StatusInternalServerError)
		return
	}
	logger.ServerLog.Debug("successful create contract", zap.String("contract", contractID))
}

// CreateContractHandler - обертка над CreateContract.
func CreateContractHandler(stor contracts.Store, service *allowlist.Service) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		CreateContract(res, req, stor, service)
	}
	return fn
}

// authorizeAndStore - создает список допуска, авторизирует подписантов и сохраняет результат на записи контракта.
// Ответ с ошибкой записывается внутри, вызывающему достаточно проверить ошибку и выйти.
// При сбое регистрации адресов список авторизованных кошельков не сохраняется: адреса не попали в блокчейн.
func authorizeAndStore(res http.ResponseWriter, req *http.Request, stor contracts.Store, service *allowlist.Service,
	contractID string, signers []string) (*allowlist.Result, error) {
	result, err := service.CreateAndAuthorize(req.Context(), contractID, signers)
	if err != nil {
		if errors.Is(err, rpc.ErrChainUnavailable) {
			logger.ServerLog.Error("chain is unavailable", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
			http.Error(res, "chain is unavailable", http.StatusBadGateway)
			return nil, err
		}
		logger.ServerLog.Error("authorize signers error", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		http.Error(res, fmt.Errorf("authorize signers error, %w", err).Error(), http.StatusInternalServerError)
		return nil, err
	}

	authorized := result.AuthorizedWallets
	if result.RegisterFailed {
		authorized = []string{}
	}
	ok, err := stor.SetAllowlist(req.Context(), contractID, result.AllowlistID, result.CapID, authorized, result.SignerCount)
	if err != nil {
		logger.ServerLog.Error("save allowlist error", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		http.Error(res, fmt.Errorf("save allowlist error, %w", err).Error(), http.StatusInternalServerError)
		return nil, err
	}
	if !ok {
		logger.ServerLog.Error("contract does not exist", zap.String("address", req.URL.String()), zap.String("contract", contractID))
		http.Error(res, "contract does not exist", http.StatusNotFound)
		return nil, fmt.Errorf("contract %s does not exist", contractID)
	}

	return result, nil
}

// appendAndStore - дописывает подписантов в существующий список допуска контракта и сохраняет результат.
// Идентификаторы allowlist и capability контракта не меняются. При сбое регистрации
// запись контракта остаётся прежней: новые адреса не попали в блокчейн.
func appendAndStore(res http.ResponseWriter, req *http.Request, stor contracts.Store, service *allowlist.Service,
	contract contracts.Contract, signers []string) (*allowlist.Result, error) {
	result, err := service.AppendAuthorize(req.Context(), contract.ID, contract.AllowlistID, contract.CapID,
		contract.AuthorizedUsers, signers)
	if err != nil {
		logger.ServerLog.Error("authorize signers error", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		http.Error(res, fmt.Errorf("authorize signers error, %w", err).Error(), http.StatusInternalServerError)
		return nil, err
	}

	if result.RegisterFailed {
		return result, nil
	}
	ok, err := stor.SetAllowlist(req.Context(), contract.ID, result.AllowlistID, result.CapID, result.AuthorizedWallets, result.SignerCount)
	if err != nil {
		logger.ServerLog.Error("save allowlist error", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		http.Error(res, fmt.Errorf("save allowlist error, %w", err).Error(), http.StatusInternalServerError)
		return nil, err
	}
	if !ok {
		logger.ServerLog.Error("contract does not exist", zap.String("address", req.URL.String()), zap.String("contract", contract.ID))
		http.Error(res, "contract does not exist", http.StatusNotFound)
		return nil, fmt.Errorf("contract %s does not exist", contract.ID)
	}

	return result, nil
}

// AuthorizeSigners - хэндлер для авторизации дополнительных подписантов контракта.
// Если у контракта еще нет списка допуска, то список создается в блокчейне.
// Иначе новые подписанты дописываются в существующий список: его идентификаторы
// сохраняются, уже авторизованные кошельки не теряют допуск.
// Доступ есть только у владельца контракта.
func AuthorizeSigners(res http.ResponseWriter, req *http.Request, stor contracts.Store, service *allowlist.Service) {
	// получаю email пользователя из контекста
	email, ok := req.Context().Value(auth.UserEmailKey).(string)
	if !ok {
		logger.ServerLog.Error("user email not found in context", zap.String("address", req.URL.String()))
		http.Error(res, "user email not found in context", http.StatusInternalServerError)
		return
	}
	defer req.Body.Close()

	contractID := chi.URLParam(req, "id")
	contract, ok, err := stor.GetContract(req.Context(), contractID)
	if err != nil {
		logger.ServerLog.Error("get contract error", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		http.Error(res, fmt.Errorf("get contract error, %w", err).Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		logger.ServerLog.Error("contract does not exist", zap.String("address", req.URL.String()), zap.String("contract", contractID))
		http.Error(res, "contract does not exist", http.StatusNotFound)
		return
	}

	// авторизировать подписантов может только владелец контракта
	if !checker.IsAuthorize(contract.OwnerHash, hasher.Hash(hasher.NormalizeEmail(email))) {
		logger.ServerLog.Error("user is not contract owner", zap.String("address", req.URL.String()), zap.String("contract", contractID))
		http.Error(res, "user is not contract owner", http.StatusForbidden)
		return
	}

	var signersReq AuthorizeSignersRequest
	if err := json.NewDecoder(req.Body).Decode(&signersReq); err != nil {
		logger.ServerLog.Error("can't parse data from request", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		http.Error(res, "can't parse data from request", http.StatusBadRequest)
		return
	}
	if len(signersReq.Signers) == 0 {
		logger.ServerLog.Error("signers list is empty", zap.String("address", req.URL.String()))
		http.Error(res, "signers list is empty", http.StatusBadRequest)
		return
	}

	var result *allowlist.Result
	if contract.AllowlistID == "" {
		result, err = authorizeAndStore(res, req, stor, service, contractID, signersReq.Signers)
	} else {
		result, err = appendAndStore(res, req, stor, service, contract, signersReq.Signers)
	}
	if err != nil {
		return
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(res)
	if err := enc.Encode(result); err != nil {
		logger.ServerLog.Error("encoding response error", zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("encoding response error, %w", err).Error(), http.StatusInternalServerError)
		return
	}
	logger.ServerLog.Debug("successful authorize signers", zap.String("contract", contractID), zap.Int("signers", result.SignerCount))
}

// AuthorizeSignersHandler - обертка над AuthorizeSigners.
func AuthorizeSignersHandler(stor contracts.Store, service *allowlist.Service) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		AuthorizeSigners(res, req, stor, service)
	}
	return fn
}

// CanSign - хэндлер для проверки права текущего пользователя подписать контракт.
// Проверка вычисляется на каждый запрос и всегда возвращает структурированный результат.
func CanSign(res http.ResponseWriter, req *http.Request, stor contracts.Store, authenticator *signing.Authenticator) {
	// получаю email пользователя из контекста
	email, ok := req.Context().Value(auth.UserEmailKey).(string)
	if !ok {
		logger.ServerLog.Error("user email not found in context", zap.String("address", req.URL.String()))
		http.Error(res, "user email not found in context", http.StatusInternalServerError)
		return
	}
	defer req.Body.Close()

	contractID := chi.URLParam(req, "id")
	contract, ok, err := stor.GetContract(req.Context(), contractID)
	if err != nil {
		logger.ServerLog.Error("get contract error", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		http.Error(res, fmt.Errorf("get contract error, %w", err).Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		logger.ServerLog.Error("contract does not exist", zap.String("address", req.URL.String()), zap.String("contract", contractID))
		http.Error(res, "contract does not exist", http.StatusNotFound)
		return
	}

	result := authenticator.Authenticate(email, email, contract)

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(res)
	if err := enc.Encode(result); err != nil {
		logger.ServerLog.Error("encoding response error", zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("encoding response error, %w", err).Error(), http.StatusInternalServerError)
		return
	}
	logger.ServerLog.Debug("signing authentication computed",
		zap.String("contract", contractID),
		zap.Bool("canSign", result.CanSign),
		zap.String("reason", result.Reason))
}

// CanSignHandler - обертка над CanSign.
func CanSignHandler(stor contracts.Store, authenticator *signing.Authenticator) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		CanSign(res, req, stor, authenticator)
	}
	return fn
}

// HandleOtherRequest - обработка нераспознанных http запросов к сервису.
func HandleOtherRequest() http.HandlerFunc {
	return func(res http.ResponseWriter, _ *http.Request) {
		res.Header().Set("Content-Type", "text/plain")
		res.WriteHeader(http.StatusNotFound)
	}
}
