// header - пакет для извлечения JWT из http заголовков.
package header

import (
	"fmt"
	"net/http"
	"strings"
)

// parseAuthorization - извлекает токен из значения заголовка Authorization.
func parseAuthorization(authHeader string) (string, error) {
	if authHeader == "" {
		return "", fmt.Errorf("missing authorization header")
	}

	// Проверяю, что заголовок начинается с "Bearer "
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", fmt.Errorf("invalid authorization header format")
	}

	return parts[1], nil
}

// GetTokenFromHeader - функция для получения токена из заголовка запроса.
func GetTokenFromHeader(req *http.Request) (string, error) {
	return parseAuthorization(req.Header.Get("Authorization"))
}

// GetTokenFromResponseHeader - извлекает JWT из заголовка в ответе сервера.
// Необходима для тестирования хэндлеров: имитирую работу клиента и получение им токена из заголовка.
func GetTokenFromResponseHeader(res *http.Response) (string, error) {
	return parseAuthorization(res.Header.Get("Authorization"))
}
