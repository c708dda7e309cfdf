// auth - пакет, который реализует middleware для аутентификации пользователя.
package auth

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/abezemskiy/suisign/internal/common/identity/tools/header"
	"github.com/abezemskiy/suisign/internal/common/identity/tools/token"
	"github.com/abezemskiy/suisign/internal/server/logger"
)

type contextKey string

// UserIDKey - ключ для установки ID пользователя в контекст.
const UserIDKey = contextKey("userID")

// UserEmailKey - ключ для установки email пользователя в контекст.
const UserEmailKey = contextKey("userEmail")

// Middleware - проверяет JWT входящих запросов к серверу.
// Позволит установить доступ к ресурсам только для аутентифицированных пользователей.
// Из полученного токена извлекаются ID и email пользователя и устанавливаются в контекст.
func Middleware(h http.Handler) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {

		getToken, err := header.GetTokenFromHeader(req)
		// В случае ошибки получения токена возвращаю статус 401 - пользователь не аутентифицирован.
		if err != nil {
			logger.ServerLog.Error("failed to get token from request", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
			http.Error(res, fmt.Errorf("failed to get token from request, %w", err).Error(), http.StatusUnauthorized)
			return
		}
		claims, err := token.GetClaimsFromToken(getToken)
		if err != nil {
			logger.ServerLog.Error("failed to get claims from token", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
			http.Error(res, fmt.Errorf("failed to get claims from token, %w", err).Error(), http.StatusUnauthorized)
			return
		}

		// В случае успешной проверки токена устанавливаю данные пользователя в контекст для дальнейшей обработки.
		ctx := context.WithValue(req.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UserEmailKey, claims.Email)

		// вызываю основной обработчик
		h.ServeHTTP(res, req.WithContext(ctx))
	}
}
