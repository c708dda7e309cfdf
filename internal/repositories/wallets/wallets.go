package wallets

import "time"

// Wallet - структура предвычисленного кошелька.
// Адрес является чистой функцией от (идентификатор, контракт, мастер-секрет),
// поэтому кошелёк можно вывести до того, как пользователь впервые войдёт в систему.
type Wallet struct {
	Identity     string    `json:"identity,omitempty"`   // нормализованный email, если вход был email-ом
	IdentityHash string    `json:"identityHash"`         // хэш идентификатора пользователя
	ContractID   string    `json:"contractId,omitempty"` // идентификатор контракта для контрактной области действия
	Address      string    `json:"predeterminedAddress"` // выведенный адрес кошелька
	CreatedAt    time.Time `json:"timestamp"`            // время вычисления
	Method       string    `json:"method"`               // способ вывода: глобальный или контрактный
}

// Generator - интерфейс генератора предвычисленных кошельков.
type Generator interface {
	Generate(identityInput, contractID string) (Wallet, error)                 // Метод для вывода кошелька по email или хэшу идентификатора.
	GenerateMany(identityInputs []string, contractID string) ([]Wallet, []error) // Метод для пакетного вывода кошельков с пропуском сбойных записей.
}
