package contracts

import (
	"context"
	"time"
)

// Contract - структура записи контракта.
type Contract struct {
	ID              string    `json:"id"`                // идентификатор контракта
	Title           string    `json:"title"`             // название контракта
	OwnerHash       string    `json:"ownerHash"`         // хэш идентификатора владельца
	AllowlistID     string    `json:"allowlistId"`       // идентификатор объекта списка допуска в блокчейне
	CapID           string    `json:"capId"`             // идентификатор capability-объекта списка допуска
	AuthorizedUsers []string  `json:"authorizedUsers"`   // адреса кошельков, допущенных к подписанию
	SignerCount     int       `json:"signerCount"`       // число адресов, фактически зарегистрированных в блокчейне
	CreatedAt       time.Time `json:"createdAt"`         // время создания записи
}

// Store - интерфейс хранилища контрактов.
type Store interface {
	CreateContract(ctx context.Context, contract Contract) error                                                            // Метод для создания записи контракта.
	GetContract(ctx context.Context, id string) (contract Contract, ok bool, err error)                                     // Метод для получения контракта по идентификатору.
	SetAllowlist(ctx context.Context, id, allowlistID, capID string, wallets []string, signerCount int) (ok bool, err error) // Метод для сохранения результата авторизации подписантов.
}
