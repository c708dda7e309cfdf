package chain

import "context"

// Caller - интерфейс для операций с блокчейном, которые нужны службе авторизации подписантов.
// Реализация выполняет транзакции и запросы через JSON-RPC узла Sui.
type Caller interface {
	CreateAllowlist(ctx context.Context, name string) (allowlistID, capID string, err error) // Метод для создания объекта списка допуска.
	AddAllowlistEntries(ctx context.Context, allowlistID, capID string, addresses []string) error // Метод для регистрации адресов в списке допуска.
	WaitForObjects(ctx context.Context, ids []string) error // Метод для ожидания видимости созданных объектов в узле.
}
