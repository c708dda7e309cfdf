package identity

import "context"

// Identifier - интерфейс для реализации процедур регистрации и авторизации пользователя.
type Identifier interface {
	Register(ctx context.Context, emailHash, hash, id string) error                               // Метод для регистрации пользователя.
	Authorize(ctx context.Context, emailHash string) (data AuthorizationData, ok bool, err error) // Метод для авторизации пользователя.
}

// IdentityData - структура данных для аутентификации пользователя.
type IdentityData struct {
	Email string `json:"email"` // email пользователя
	Hash  string `json:"hash"`  // хэш от суммы email+пароль
}

// AuthorizationData - структура для авторизационных данных пользователя.
type AuthorizationData struct {
	Hash string
	ID   string
}
