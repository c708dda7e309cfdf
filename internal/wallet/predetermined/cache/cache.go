// cache - потокобезопасный кэш предвычисленных кошельков в оперативной памяти.
// Кэш передаётся генератору как явная зависимость, живёт время жизни процесса
// и не вытесняет записи. Гонка записей безопасна: значения детерминированы,
// поэтому повторная запись кладёт то же самое значение.
package cache

import (
	"sync"

	"github.com/abezemskiy/suisign/internal/repositories/wallets"
)

// WalletCache - хранилище выведенных кошельков с ключом (хэш идентификатора, контракт).
type WalletCache struct {
	mu      sync.RWMutex
	wallets map[string]wallets.Wallet
}

// New - возвращает новый пустой кэш кошельков.
func New() *WalletCache {
	return &WalletCache{
		wallets: make(map[string]wallets.Wallet),
	}
}

// key - собирает ключ кэша из хэша идентификатора и идентификатора контракта.
func key(identityHash, contractID string) string {
	return identityHash + "/" + contractID
}

// Get - метод для получения кошелька из кэша.
func (c *WalletCache) Get(identityHash, contractID string) (wallets.Wallet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	w, ok := c.wallets[key(identityHash, contractID)]
	return w, ok
}

// Set - метод для сохранения кошелька в кэш.
func (c *WalletCache) Set(identityHash, contractID string, wallet wallets.Wallet) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.wallets[key(identityHash, contractID)] = wallet
}

// Len - метод для получения количества записей в кэше.
func (c *WalletCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.wallets)
}

// Clear - метод для полной очистки кэша.
func (c *WalletCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.wallets = make(map[string]wallets.Wallet)
}
