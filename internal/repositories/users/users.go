package users

import "context"

// WalletFinder - интерфейс для поиска уже известного кошелька пользователя по хэшу email.
// Используется службой авторизации подписантов, чтобы не выводить адрес заново,
// когда пользователь уже входил в систему со своим кошельком.
type WalletFinder interface {
	FindUserWalletByEmail(ctx context.Context, emailHash string) (address string, ok bool, err error)
}

// WalletKeeper - интерфейс для сохранения связи хэша email с адресом кошелька.
type WalletKeeper interface {
	WalletFinder
	SaveUserWallet(ctx context.Context, emailHash, address string) error
}
