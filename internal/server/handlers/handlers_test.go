package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abezemskiy/suisign/internal/allowlist"
	"github.com/abezemskiy/suisign/internal/chain/rpc"
	"github.com/abezemskiy/suisign/internal/common/identity/tools/hasher"
	"github.com/abezemskiy/suisign/internal/common/identity/tools/header"
	"github.com/abezemskiy/suisign/internal/common/identity/tools/token"
	"github.com/abezemskiy/suisign/internal/repositories/contracts"
	"github.com/abezemskiy/suisign/internal/repositories/identity"
	"github.com/abezemskiy/suisign/internal/repositories/mocks"
	"github.com/abezemskiy/suisign/internal/repositories/wallets"
	"github.com/abezemskiy/suisign/internal/server/identity/auth"
	"github.com/abezemskiy/suisign/internal/server/signing"
	"github.com/abezemskiy/suisign/internal/wallet/predetermined"
	"github.com/abezemskiy/suisign/internal/wallet/predetermined/cache"
	"github.com/abezemskiy/suisign/internal/wallet/salt"
)

func TestRegister(t *testing.T) {
	// регистрирую мок хранилища данных пользователей
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mocks.NewMockIdentifier(ctrl)

	// Test. success register---------------------------------------------------------
	regData := identity.IdentityData{
		Email: "success@example.com",
		Hash:  "success hash",
	}
	successBody, err := json.Marshal(regData)
	require.NoError(t, err)
	m.EXPECT().Register(gomock.Any(), hasher.Hash(regData.Email), regData.Hash, gomock.Any()).Return(nil)

	// Test. user already register------------------------------------------------------------
	alreadyData := identity.IdentityData{
		Email: "already@example.com",
		Hash:  "already hash",
	}
	alreadyBody, err := json.Marshal(alreadyData)
	require.NoError(t, err)
	m.EXPECT().Register(gomock.Any(), hasher.Hash(alreadyData.Email), alreadyData.Hash, gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

	// Test. register error (internal server error) ------------------------------------------------------------
	internalData := identity.IdentityData{
		Email: "internal@example.com",
		Hash:  "internal hash",
	}
	internalBody, err := json.Marshal(internalData)
	require.NoError(t, err)
	m.EXPECT().Register(gomock.Any(), hasher.Hash(internalData.Email), internalData.Hash, gomock.Any()).Return(errors.New("some error"))

	// Test. bad email ------------------------------------------------------------------------------------------
	badEmailBody, err := json.Marshal(identity.IdentityData{
		Email: "not an email",
		Hash:  "hash",
	})
	require.NoError(t, err)

	// Test. bad hash ------------------------------------------------------------------------------------------
	badHashBody, err := json.Marshal(identity.IdentityData{
		Email: "user@example.com",
		Hash:  "",
	})
	require.NoError(t, err)

	type request struct {
		body []byte
		stor identity.Identifier
	}
	type want struct {
		status int
	}
	tests := []struct {
		name string
		req  request
		want want
	}{
		{
			name: "success register",
			req: request{
				body: successBody,
				stor: m,
			},
			want: want{
				status: 200,
			},
		},
		{
			name: "user already register",
			req: request{
				body: alreadyBody,
				stor: m,
			},
			want: want{
				status: 409,
			},
		},
		{
			name: "internal server error while register",
			req: request{
				body: internalBody,
				stor: m,
			},
			want: want{
				status: 500,
			},
		},
		{
			name: "bad body",
			req: request{
				body: []byte("bad body"),
				stor: nil,
			},
			want: want{
				status: 400,
			},
		},
		{
			name: "bad email",
			req: request{
				body: badEmailBody,
				stor: nil,
			},
			want: want{
				status: 400,
			},
		},
		{
			name: "bad hash",
			req: request{
				body: badHashBody,
				stor: nil,
			},
			want: want{
				status: 400,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// устанавливаю секретный ключ для подписи токена
			token.SetSecretKey("test key")
			// устанавливаю время жизни токена
			token.SetExpireHour(1)

			// создаю тестовый http сервер
			r := chi.NewRouter()
			r.Post("/test", func(res http.ResponseWriter, req *http.Request) {
				Register(res, req, tt.req.stor)
			})

			// создаю тестовый запрос
			request := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBuffer(tt.req.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, request)

			res := w.Result()
			defer res.Body.Close() // закрываю тело ответа
			assert.Equal(t, tt.want.status, res.StatusCode)

			// если ожидается успешная регистрация, то проверяю корректность JWT в заголовке
			if tt.want.status == 200 {
				getToken, err := header.GetTokenFromResponseHeader(res)
				require.NoError(t, err)
				claims, err := token.GetClaimsFromToken(getToken)
				require.NoError(t, err)
				assert.NotEqual(t, "", claims.UserID)
				assert.Equal(t, regData.Email, claims.Email)
			}
		})
	}
}

func TestAuthorize(t *testing.T) {
	// регистрирую мок хранилища данных пользователей
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mocks.NewMockIdentifier(ctrl)

	// Test. success authorization ---------------------------------------------------------
	testHash := "success hash"
	authData := identity.IdentityData{
		Email: "success@example.com",
		Hash:  testHash,
	}
	successBody, err := json.Marshal(authData)
	require.NoError(t, err)

	wantID := "2362362"
	m.EXPECT().Authorize(gomock.Any(), hasher.Hash(authData.Email)).Return(identity.AuthorizationData{
		Hash: testHash,
		ID:   wantID,
	}, true, nil)

	// Test. authorization error, user not register ---------------------------------------------------------
	notRegisterData := identity.IdentityData{
		Email: "notregister@example.com",
		Hash:  "not register hash",
	}
	notRegisterBody, err := json.Marshal(notRegisterData)
	require.NoError(t, err)
	m.EXPECT().Authorize(gomock.Any(), hasher.Hash(notRegisterData.Email)).Return(identity.AuthorizationData{}, false, nil)

	// Test. authorization error, get auth data from storage error ---------------------------------------------------------
	errorData := identity.IdentityData{
		Email: "error@example.com",
		Hash:  "error hash",
	}
	errorBody, err := json.Marshal(errorData)
	require.NoError(t, err)
	m.EXPECT().Authorize(gomock.Any(), hasher.Hash(errorData.Email)).Return(identity.AuthorizationData{}, false, errors.New("get data error"))

	// Test. wrong password ----------------------------------------------------------------------------------------------
	wrongPasswordData := identity.IdentityData{
		Email: "wrongpassword@example.com",
		Hash:  "wrong password hash",
	}
	wrongPasswordBody, err := json.Marshal(wrongPasswordData)
	require.NoError(t, err)
	m.EXPECT().Authorize(gomock.Any(), hasher.Hash(wrongPasswordData.Email)).Return(identity.AuthorizationData{
		Hash: "want hash",
		ID:   "",
	}, true, nil)

	// Test. email is invalid ---------------------------------------------------------
	invalidEmailBody, err := json.Marshal(identity.IdentityData{
		Email: "",
		Hash:  "hash",
	})
	require.NoError(t, err)

	type request struct {
		body []byte
		stor identity.Identifier
	}
	type want struct {
		status int
	}
	tests := []struct {
		name string
		req  request
		want want
	}{
		{
			name: "success authorization",
			req: request{
				body: successBody,
				stor: m,
			},
			want: want{
				status: 200,
			},
		},
		{
			name: "user not register",
			req: request{
				body: notRegisterBody,
				stor: m,
			},
			want: want{
				status: 400,
			},
		},
		{
			name: "get auth data from storage error",
			req: request{
				body: errorBody,
				stor: m,
			},
			want: want{
				status: 500,
			},
		},
		{
			name: "wrong password",
			req: request{
				body: wrongPasswordBody,
				stor: m,
			},
			want: want{
				status: 400,
			},
		},
		{
			name: "invalid email",
			req: request{
				body: invalidEmailBody,
				stor: nil,
			},
			want: want{
				status: 400,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token.SetSecretKey("test key")
			token.SetExpireHour(1)

			r := chi.NewRouter()
			r.Post("/test", func(res http.ResponseWriter, req *http.Request) {
				Authorize(res, req, tt.req.stor)
			})

			request := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBuffer(tt.req.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, request)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.want.status, res.StatusCode)

			if tt.want.status == 200 {
				getToken, err := header.GetTokenFromResponseHeader(res)
				require.NoError(t, err)
				claims, err := token.GetClaimsFromToken(getToken)
				require.NoError(t, err)
				assert.Equal(t, wantID, claims.UserID)
				assert.Equal(t, authData.Email, claims.Email)
			}
		})
	}
}

// newTestGenerator - настоящий генератор кошельков с тестовым мастер-секретом.
func newTestGenerator() *predetermined.Generator {
	return predetermined.NewGenerator(salt.NewDeriver("test master seed", "test-client-id"), cache.New())
}

func TestGeneratePredeterminedWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	generator := newTestGenerator()
	// для контрактной области действия связь email-кошелёк не сохраняется,
	// поэтому вызовы keeper для таких запросов не ожидаются
	keeper := mocks.NewMockWalletKeeper(ctrl)

	// успешный вывод кошелька
	body, err := json.Marshal(WalletRequest{Identity: "alice@example.com", ContractID: "c-123"})
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	GeneratePredeterminedWallet(w, request, generator, keeper)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var got wallets.Wallet
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.Equal(t, "alice@example.com", got.Identity)
	assert.Equal(t, "c-123", got.ContractID)
	assert.Regexp(t, "^0x[0-9a-f]{64}$", got.Address)
	assert.Equal(t, predetermined.MethodContract, got.Method)

	// повторный запрос возвращает тот же адрес
	request = httptest.NewRequest(http.MethodPost, "/test", bytes.NewBuffer(body))
	w = httptest.NewRecorder()
	GeneratePredeterminedWallet(w, request, generator, keeper)
	res2 := w.Result()
	defer res2.Body.Close()
	require.Equal(t, http.StatusOK, res2.StatusCode)

	var repeated wallets.Wallet
	require.NoError(t, json.NewDecoder(res2.Body).Decode(&repeated))
	assert.Equal(t, got.Address, repeated.Address)

	// глобальный кошелёк по email сохраняется в хранилище
	globalBody, err := json.Marshal(WalletRequest{Identity: "carol@example.com"})
	require.NoError(t, err)
	keeper.EXPECT().SaveUserWallet(gomock.Any(), hasher.Hash("carol@example.com"), gomock.Not(gomock.Eq(""))).Return(nil)
	request = httptest.NewRequest(http.MethodPost, "/test", bytes.NewBuffer(globalBody))
	w = httptest.NewRecorder()
	GeneratePredeterminedWallet(w, request, generator, keeper)
	res3 := w.Result()
	defer res3.Body.Close()
	require.Equal(t, http.StatusOK, res3.StatusCode)

	var global wallets.Wallet
	require.NoError(t, json.NewDecoder(res3.Body).Decode(&global))
	assert.Equal(t, predetermined.MethodGlobal, global.Method)

	// сбой сохранения кошелька не мешает вернуть результат
	failBody, err := json.Marshal(WalletRequest{Identity: "dave@example.com"})
	require.NoError(t, err)
	keeper.EXPECT().SaveUserWallet(gomock.Any(), hasher.Hash("dave@example.com"), gomock.Any()).Return(errors.New("storage error"))
	request = httptest.NewRequest(http.MethodPost, "/test", bytes.NewBuffer(failBody))
	w = httptest.NewRecorder()
	GeneratePredeterminedWallet(w, request, generator, keeper)
	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	// пустой идентификатор
	emptyBody, err := json.Marshal(WalletRequest{Identity: ""})
	require.NoError(t, err)
	request = httptest.NewRequest(http.MethodPost, "/test", bytes.NewBuffer(emptyBody))
	w = httptest.NewRecorder()
	GeneratePredeterminedWallet(w, request, generator, keeper)
	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)

	// некорректное тело запроса
	request = httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString("bad body"))
	w = httptest.NewRecorder()
	GeneratePredeterminedWallet(w, request, generator, keeper)
	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)

	// вывод не настроен: мастер-секрет отсутствует
	unconfigured := predetermined.NewGenerator(salt.NewDeriver("", ""), cache.New())
	request = httptest.NewRequest(http.MethodPost, "/test", bytes.NewBuffer(body))
	w = httptest.NewRecorder()
	GeneratePredeterminedWallet(w, request, unconfigured, keeper)
	assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
}

func TestGenerateWalletBatch(t *testing.T) {
	generator := newTestGenerator()

	// пакет с одной сбойной записью: пустая строка пропускается
	body, err := json.Marshal(BatchWalletRequest{
		Identities: []string{"alice@example.com", "", "bob@example.com"},
		ContractID: "c-123",
	})
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	GenerateWalletBatch(w, request, generator)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var got BatchWalletResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	require.Len(t, got.Wallets, 2)
	assert.Equal(t, "alice@example.com", got.Wallets[0].Identity)
	assert.Equal(t, "bob@example.com", got.Wallets[1].Identity)
	assert.Len(t, got.Skipped, 1)

	// пустой список идентификаторов
	emptyBody, err := json.Marshal(BatchWalletRequest{ContractID: "c-123"})
	require.NoError(t, err)
	request = httptest.NewRequest(http.MethodPost, "/test", bytes.NewBuffer(emptyBody))
	w = httptest.NewRecorder()
	GenerateWalletBatch(w, request, generator)
	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

// withUserEmail - добавляет email пользователя в контекст запроса, имитируя работу auth middleware.
func withUserEmail(req *http.Request, email string) *http.Request {
	ctx := context.WithValue(req.Context(), auth.UserEmailKey, email)
	ctx = context.WithValue(ctx, auth.UserIDKey, "test-user-id")
	return req.WithContext(ctx)
}

func TestCreateContract(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	generator := newTestGenerator()

	// контракт без подписантов: список допуска не создается
	t.Run("without signers", func(t *testing.T) {
		stor := mocks.NewMockStore(ctrl)
		stor.EXPECT().CreateContract(gomock.Any(), gomock.Any()).Return(nil)

		body, err := json.Marshal(CreateContractRequest{Title: "Test contract"})
		require.NoError(t, err)
		request := withUserEmail(httptest.NewRequest(http.MethodPost, "/test", bytes.NewBuffer(body)), "owner@example.com")
		w := httptest.NewRecorder()
		CreateContract(w, request, stor, nil)

		res := w.Result()
		defer res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)

		var got CreateContractResponse
		require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
		assert.NotEqual(t, "", got.ID)
		assert.Equal(t, "Test contract", got.Title)
		assert.Nil(t, got.Allowlist)
	})

	// контракт с подписантами: список допуска создается и сохраняется
	t.Run("with signers", func(t *testing.T) {
		stor := mocks.NewMockStore(ctrl)
		stor.EXPECT().CreateContract(gomock.Any(), gomock.Any()).Return(nil)
		stor.EXPECT().SetAllowlist(gomock.Any(), gomock.Any(), "0xallow", "0xcap", gomock.Len(1), 1).Return(true, nil)

		finder := mocks.NewMockWalletFinder(ctrl)
		caller := mocks.NewMockCaller(ctrl)
		caller.EXPECT().CreateAllowlist(gomock.Any(), gomock.Any()).Return("0xallow", "0xcap", nil)
		caller.EXPECT().WaitForObjects(gomock.Any(), []string{"0xallow", "0xcap"}).Return(nil)
		caller.EXPECT().AddAllowlistEntries(gomock.Any(), "0xallow", "0xcap", gomock.Len(1)).Return(nil)

		service := allowlist.NewService(finder, generator, caller)

		directAddress := "0x4f2a1c09d3b7e8f6a5c4d3e2f1a0b9c8d7e6f5a4b3c2d1e0f9a8b7c6d5e4f3a2"
		body, err := json.Marshal(CreateContractRequest{
			Title:   "Signed contract",
			Signers: []string{directAddress},
		})
		require.NoError(t, err)
		request := withUserEmail(httptest.NewRequest(http.MethodPost, "/test", bytes.NewBuffer(body)), "owner@example.com")
		w := httptest.NewRecorder()
		CreateContract(w, request, stor, service)

		res := w.Result()
		defer res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)

		var got CreateContractResponse
		require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
		require.NotNil(t, got.Allowlist)
		assert.Equal(t, "0xallow", got.Allowlist.AllowlistID)
		assert.Equal(t, []string{directAddress}, got.Allowlist.AuthorizedWallets)
		assert.Equal(t, 1, got.Allowlist.SignerCount)
	})

	// блокчейн недоступен
	t.Run("chain unavailable", func(t *testing.T) {
		stor := mocks.NewMockStore(ctrl)
		stor.EXPECT().CreateContract(gomock.Any(), gomock.Any()).Return(nil)

		finder := mocks.NewMockWalletFinder(ctrl)
		caller := mocks.NewMockCaller(ctrl)
		caller.EXPECT().CreateAllowlist(gomock.Any(), gomock.Any()).Return("0xallow", "0xcap", nil)
		caller.EXPECT().WaitForObjects(gomock.Any(), gomock.Any()).Return(fmt.Errorf("objects are not visible, %w", rpc.ErrChainUnavailable))

		service := allowlist.NewService(finder, generator, caller)

		body, err := json.Marshal(CreateContractRequest{
			Title:   "Unavailable",
			Signers: []string{"alice@example.com"},
		})
		require.NoError(t, err)
		finder.EXPECT().FindUserWalletByEmail(gomock.Any(), gomock.Any()).Return("", false, nil)

		request := withUserEmail(httptest.NewRequest(http.MethodPost, "/test", bytes.NewBuffer(body)), "owner@example.com")
		w := httptest.NewRecorder()
		CreateContract(w, request, stor, service)
		assert.Equal(t, http.StatusBadGateway, w.Result().StatusCode)
	})

	// пустое название контракта
	t.Run("empty title", func(t *testing.T) {
		body, err := json.Marshal(CreateContractRequest{Title: ""})
		require.NoError(t, err)
		request := withUserEmail(httptest.NewRequest(http.MethodPost, "/test", bytes.NewBuffer(body)), "owner@example.com")
		w := httptest.NewRecorder()
		CreateContract(w, request, nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	})

	// email пользователя не установлен в контекст
	t.Run("no user email in context", func(t *testing.T) {
		body, err := json.Marshal(CreateContractRequest{Title: "Test contract"})
		require.NoError(t, err)
		request := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		CreateContract(w, request, nil, nil)
		assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
	})
}

// newContractRouter - тестовый роутер с параметром id в пути, имитирует боевую маршрутизацию.
func newContractRouter(h func(res http.ResponseWriter, req *http.Request)) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/api/contract/{id}/allowlist", h)
	r.Get("/api/contract/{id}/can-sign", h)
	return r
}

func TestAuthorizeSigners(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	generator := newTestGenerator()
	ownerHash := hasher.Hash("owner@example.com")

	// у контракта еще нет списка допуска: список создается в блокчейне
	t.Run("first allowlist", func(t *testing.T) {
		contract := contracts.Contract{
			ID:              "c-1",
			Title:           "Test contract",
			OwnerHash:       ownerHash,
			AuthorizedUsers: []string{},
		}

		stor := mocks.NewMockStore(ctrl)
		stor.EXPECT().GetContract(gomock.Any(), "c-1").Return(contract, true, nil)
		stor.EXPECT().SetAllowlist(gomock.Any(), "c-1", "0xallow", "0xcap", gomock.Len(1), 1).Return(true, nil)

		finder := mocks.NewMockWalletFinder(ctrl)
		finder.EXPECT().FindUserWalletByEmail(gomock.Any(), gomock.Any()).Return("", false, nil)
		caller := mocks.NewMockCaller(ctrl)
		caller.EXPECT().CreateAllowlist(gomock.Any(), "c-1").Return("0xallow", "0xcap", nil)
		caller.EXPECT().WaitForObjects(gomock.Any(), []string{"0xallow", "0xcap"}).Return(nil)
		caller.EXPECT().AddAllowlistEntries(gomock.Any(), "0xallow", "0xcap", gomock.Len(1)).Return(nil)

		service := allowlist.NewService(finder, generator, caller)

		body, err := json.Marshal(AuthorizeSignersRequest{Signers: []string{"bob@example.com"}})
		require.NoError(t, err)

		r := newContractRouter(func(res http.ResponseWriter, req *http.Request) {
			AuthorizeSigners(res, req, stor, service)
		})
		request := withUserEmail(httptest.NewRequest(http.MethodPost, "/api/contract/c-1/allowlist", bytes.NewBuffer(body)), "owner@example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, request)

		res := w.Result()
		defer res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)

		var got allowlist.Result
		require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
		assert.Equal(t, "0xallow", got.AllowlistID)
		assert.Equal(t, 1, got.SignerCount)
	})

	// у контракта уже есть список допуска: новые подписанты дописываются в него,
	// идентификаторы allowlist и capability не меняются, новый список не создается
	t.Run("append to existing allowlist", func(t *testing.T) {
		knownAddress := "0x4f2a1c09d3b7e8f6a5c4d3e2f1a0b9c8d7e6f5a4b3c2d1e0f9a8b7c6d5e4f3a2"
		contract := contracts.Contract{
			ID:              "c-1",
			Title:           "Test contract",
			OwnerHash:       ownerHash,
			AllowlistID:     "0xallow",
			CapID:           "0xcap",
			AuthorizedUsers: []string{knownAddress},
			SignerCount:     1,
		}

		stor := mocks.NewMockStore(ctrl)
		stor.EXPECT().GetContract(gomock.Any(), "c-1").Return(contract, true, nil)
		stor.EXPECT().SetAllowlist(gomock.Any(), "c-1", "0xallow", "0xcap", gomock.Len(2), 2).Return(true, nil)

		finder := mocks.NewMockWalletFinder(ctrl)
		finder.EXPECT().FindUserWalletByEmail(gomock.Any(), gomock.Any()).Return("", false, nil)
		// в блокчейне регистрируется только новый адрес, CreateAllowlist не вызывается
		caller := mocks.NewMockCaller(ctrl)
		caller.EXPECT().AddAllowlistEntries(gomock.Any(), "0xallow", "0xcap", gomock.Len(1)).Return(nil)

		service := allowlist.NewService(finder, generator, caller)

		body, err := json.Marshal(AuthorizeSignersRequest{Signers: []string{"bob@example.com"}})
		require.NoError(t, err)

		r := newContractRouter(func(res http.ResponseWriter, req *http.Request) {
			AuthorizeSigners(res, req, stor, service)
		})
		request := withUserEmail(httptest.NewRequest(http.MethodPost, "/api/contract/c-1/allowlist", bytes.NewBuffer(body)), "owner@example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, request)

		res := w.Result()
		defer res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)

		var got allowlist.Result
		require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
		assert.Equal(t, "0xallow", got.AllowlistID)
		assert.Equal(t, "0xcap", got.CapID)
		assert.Equal(t, 2, got.SignerCount)
		assert.Equal(t, knownAddress, got.AuthorizedWallets[0])
	})

	// контракт не существует
	t.Run("contract does not exist", func(t *testing.T) {
		stor := mocks.NewMockStore(ctrl)
		stor.EXPECT().GetContract(gomock.Any(), "missing").Return(contracts.Contract{}, false, nil)

		body, err := json.Marshal(AuthorizeSignersRequest{Signers: []string{"bob@example.com"}})
		require.NoError(t, err)

		r := newContractRouter(func(res http.ResponseWriter, req *http.Request) {
			AuthorizeSigners(res, req, stor, nil)
		})
		request := withUserEmail(httptest.NewRequest(http.MethodPost, "/api/contract/missing/allowlist", bytes.NewBuffer(body)), "owner@example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, request)
		assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
	})

	// пользователь не владелец контракта
	t.Run("not contract owner", func(t *testing.T) {
		stor := mocks.NewMockStore(ctrl)
		stor.EXPECT().GetContract(gomock.Any(), "c-1").Return(contracts.Contract{
			ID:        "c-1",
			OwnerHash: ownerHash,
		}, true, nil)

		body, err := json.Marshal(AuthorizeSignersRequest{Signers: []string{"bob@example.com"}})
		require.NoError(t, err)

		r := newContractRouter(func(res http.ResponseWriter, req *http.Request) {
			AuthorizeSigners(res, req, stor, nil)
		})
		request := withUserEmail(httptest.NewRequest(http.MethodPost, "/api/contract/c-1/allowlist", bytes.NewBuffer(body)), "intruder@example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, request)
		assert.Equal(t, http.StatusForbidden, w.Result().StatusCode)
	})
}

func TestCanSign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	generator := newTestGenerator()
	authenticator := signing.NewAuthenticator(generator)
	ownerHash := hasher.Hash("owner@example.com")

	// владелец контракта подписывает всегда
	t.Run("owner can sign", func(t *testing.T) {
		stor := mocks.NewMockStore(ctrl)
		stor.EXPECT().GetContract(gomock.Any(), "c-1").Return(contracts.Contract{
			ID:        "c-1",
			OwnerHash: ownerHash,
		}, true, nil)

		r := newContractRouter(func(res http.ResponseWriter, req *http.Request) {
			CanSign(res, req, stor, authenticator)
		})
		request := withUserEmail(httptest.NewRequest(http.MethodGet, "/api/contract/c-1/can-sign", nil), "owner@example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, request)

		res := w.Result()
		defer res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)

		var got signing.Result
		require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
		assert.True(t, got.CanSign)
		assert.Equal(t, signing.ReasonOwner, got.Reason)
	})

	// авторизованный подписант: его выведенный кошелёк входит в список допуска
	t.Run("authorized wallet can sign", func(t *testing.T) {
		wallet, err := generator.Generate("bob@example.com", "c-1")
		require.NoError(t, err)

		stor := mocks.NewMockStore(ctrl)
		stor.EXPECT().GetContract(gomock.Any(), "c-1").Return(contracts.Contract{
			ID:              "c-1",
			OwnerHash:       ownerHash,
			AuthorizedUsers: []string{wallet.Address},
		}, true, nil)

		r := newContractRouter(func(res http.ResponseWriter, req *http.Request) {
			CanSign(res, req, stor, authenticator)
		})
		request := withUserEmail(httptest.NewRequest(http.MethodGet, "/api/contract/c-1/can-sign", nil), "bob@example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, request)

		res := w.Result()
		defer res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)

		var got signing.Result
		require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
		assert.True(t, got.CanSign)
		assert.Equal(t, signing.ReasonAuthorized, got.Reason)
		assert.Equal(t, wallet.Address, got.UserWalletAddress)
	})

	// пользователь без допуска получает структурированный отказ со статусом 200
	t.Run("not authorized", func(t *testing.T) {
		stor := mocks.NewMockStore(ctrl)
		stor.EXPECT().GetContract(gomock.Any(), "c-1").Return(contracts.Contract{
			ID:        "c-1",
			OwnerHash: ownerHash,
		}, true, nil)

		r := newContractRouter(func(res http.ResponseWriter, req *http.Request) {
			CanSign(res, req, stor, authenticator)
		})
		request := withUserEmail(httptest.NewRequest(http.MethodGet, "/api/contract/c-1/can-sign", nil), "stranger@example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, request)

		res := w.Result()
		defer res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)

		var got signing.Result
		require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
		assert.False(t, got.CanSign)
		assert.Equal(t, signing.ReasonDenied, got.Reason)
	})

	// контракт не существует
	t.Run("contract does not exist", func(t *testing.T) {
		stor := mocks.NewMockStore(ctrl)
		stor.EXPECT().GetContract(gomock.Any(), "missing").Return(contracts.Contract{}, false, nil)

		r := newContractRouter(func(res http.ResponseWriter, req *http.Request) {
			CanSign(res, req, stor, authenticator)
		})
		request := withUserEmail(httptest.NewRequest(http.MethodGet, "/api/contract/missing/can-sign", nil), "owner@example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, request)
		assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
	})
}

func TestHandleOtherRequest(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/unknown", nil)
	w := httptest.NewRecorder()
	HandleOtherRequest()(w, request)
	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}
