// pg - пакет хранилища на базе СУБД PostgreSQL.
// Реализует интерфейсы identity.Identifier, users.WalletKeeper и contracts.Store.
package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/abezemskiy/suisign/internal/repositories/contracts"
	"github.com/abezemskiy/suisign/internal/repositories/identity"
)

// Store - хранилище данных сервиса в PostgreSQL.
type Store struct {
	// Поле conn содержит объект соединения с СУБД
	conn *sql.DB
}

// NewStore - возвращает новый экземпляр PostgreSQL-хранилища.
func NewStore(conn *sql.DB) *Store {
	return &Store{
		conn: conn,
	}
}

// Bootstrap - подготавливает БД к работе, создавая необходимые таблицы и индексы.
func (s Store) Bootstrap(ctx context.Context) error {
	// запускаю транзакцию
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction error, %w", err)
	}

	// откат транзакции в случае ошибки
	defer tx.Rollback()

	// создаю таблицу для аутентификационных данных пользователя -------------------------
	// email пользователя хранится только в виде хэша
	_, err = tx.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS auth (
			email_hash varchar(128) PRIMARY KEY,
			hash varchar(128),
			id varchar(128)
		)
	`)
	if err != nil {
		return fmt.Errorf("create table auth error, %w", err)
	}

	// создаю таблицу для связи хэша email с известным адресом кошелька -------------------
	_, err = tx.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS user_wallets (
			email_hash varchar(128) PRIMARY KEY,
			wallet_address varchar(128) NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("create table user_wallets error, %w", err)
	}

	// создаю таблицу контрактов ----------------------------------------------------------
	_, err = tx.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS contracts (
			id varchar(128) PRIMARY KEY,
			title varchar(256) NOT NULL,
			owner_hash varchar(128) NOT NULL,
			allowlist_id varchar(128),
			cap_id varchar(128),
			authorized_users text[],
			signer_count INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("create table contracts error, %w", err)
	}
	// создаю индекс по владельцу контракта
	_, err = tx.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS owner_hash ON contracts (owner_hash)`)
	if err != nil {
		return fmt.Errorf("create index in contracts table error, %w", err)
	}

	// коммитим транзакцию
	return tx.Commit()
}

// Disable - очищает БД, удаляя записи из таблиц.
// Метод необходим для тестирования, чтобы в процессе удалять тестовые записи.
func (s Store) Disable(ctx context.Context) error {
	// запускаем транзакцию
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction error, %w", err)
	}
	// в случае неуспешного коммита все изменения транзакции будут отменены
	defer tx.Rollback()

	for _, table := range []string{"auth", "user_wallets", "contracts"} {
		_, err = tx.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s", table))
		if err != nil {
			return fmt.Errorf("truncate table %s error, %w", table, err)
		}
	}

	// коммитим транзакцию
	return tx.Commit()
}

// Register - метод для регистрации пользователя в хранилище.
func (s Store) Register(ctx context.Context, emailHash, hash, id string) error {
	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO auth (email_hash, hash, id)
		VALUES ($1, $2, $3)
	`, emailHash, hash, id)
	if err != nil {
		return fmt.Errorf("insert user error, %w", err)
	}
	return nil
}

// Authorize - метод для получения авторизационных данных пользователя по хэшу email.
func (s Store) Authorize(ctx context.Context, emailHash string) (identity.AuthorizationData, bool, error) {
	row := s.conn.QueryRowContext(ctx, `
		SELECT hash, id
		FROM auth
		WHERE email_hash = $1
	`, emailHash)

	var data identity.AuthorizationData
	err := row.Scan(&data.Hash, &data.ID)
	if errors.Is(err, sql.ErrNoRows) {
		// пользователь с таким email не зарегистрирован
		return identity.AuthorizationData{}, false, nil
	}
	if err != nil {
		return identity.AuthorizationData{}, false, fmt.Errorf("scan authorization data error, %w", err)
	}

	return data, true, nil
}

// FindUserWalletByEmail - метод для поиска известного адреса кошелька пользователя по хэшу email.
func (s Store) FindUserWalletByEmail(ctx context.Context, emailHash string) (string, bool, error) {
	row := s.conn.QueryRowContext(ctx, `
		SELECT wallet_address
		FROM user_wallets
		WHERE email_hash = $1
	`, emailHash)

	var address string
	err := row.Scan(&address)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("scan wallet address error, %w", err)
	}

	return address, true, nil
}

// SaveUserWallet - метод для сохранения связи хэша email с адресом кошелька.
// Повторное сохранение заменяет прежний адрес.
func (s Store) SaveUserWallet(ctx context.Context, emailHash, address string) error {
	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO user_wallets (email_hash, wallet_address)
		VALUES ($1, $2)
		ON CONFLICT (email_hash) DO UPDATE SET wallet_address = $2
	`, emailHash, address)
	if err != nil {
		return fmt.Errorf("insert user wallet error, %w", err)
	}
	return nil
}

// CreateContract - метод для создания записи контракта.
func (s Store) CreateContract(ctx context.Context, contract contracts.Contract) error {
	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO contracts (id, title, owner_hash, allowlist_id, cap_id, authorized_users, signer_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, contract.ID, contract.Title, contract.OwnerHash, contract.AllowlistID, contract.CapID,
		pq.Array(contract.AuthorizedUsers), contract.SignerCount, contract.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contract error, %w", err)
	}
	return nil
}

// GetContract - метод для получения контракта по идентификатору.
func (s Store) GetContract(ctx context.Context, id string) (contracts.Contract, bool, error) {
	row := s.conn.QueryRowContext(ctx, `
		SELECT id, title, owner_hash, COALESCE(allowlist_id, ''), COALESCE(cap_id, ''), authorized_users, signer_count, created_at
		FROM contracts
		WHERE id = $1
	`, id)

	var contract contracts.Contract
	err := row.Scan(&contract.ID, &contract.Title, &contract.OwnerHash, &contract.AllowlistID,
		&contract.CapID, pq.Array(&contract.AuthorizedUsers), &contract.SignerCount, &contract.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return contracts.Contract{}, false, nil
	}
	if err != nil {
		return contracts.Contract{}, false, fmt.Errorf("scan contract error, %w", err)
	}

	return contract, true, nil
}

// SetAllowlist - метод для сохранения результата авторизации подписантов на записи контракта.
// Возвращает false, если контракт с данным идентификатором не существует.
func (s Store) SetAllowlist(ctx context.Context, id, allowlistID, capID string, wallets []string, signerCount int) (bool, error) {
	result, err := s.conn.ExecContext(ctx, `
		UPDATE contracts
		SET allowlist_id = $2, cap_id = $3, authorized_users = $4, signer_count = $5
		WHERE id = $1
	`, id, allowlistID, capID, pq.Array(wallets), signerCount)
	if err != nil {
		return false, fmt.Errorf("update contract allowlist error, %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("get affected rows error, %w", err)
	}

	return affected > 0, nil
}
