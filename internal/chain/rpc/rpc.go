// rpc - пакет клиента JSON-RPC узла Sui.
// Клиент выполняет move-вызовы модуля списка допуска и проверяет видимость
// созданных объектов с ограниченным числом повторов и последовательным
// переключением на резервный узел.
package rpc

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/abezemskiy/suisign/internal/chain/signer"
	"github.com/abezemskiy/suisign/internal/server/logger"
)

// ErrChainUnavailable - узлы блокчейна недоступны или созданные объекты так и не стали видимыми.
var ErrChainUnavailable = errors.New("blockchain rpc is unavailable")

// networks - отображение имени сети в адрес fullnode-узла.
var networks = map[string]string{
	"mainnet":  "https://fullnode.mainnet.sui.io:443",
	"testnet":  "https://fullnode.testnet.sui.io:443",
	"devnet":   "https://fullnode.devnet.sui.io:443",
	"localnet": "http://127.0.0.1:9000",
}

// URLForNetwork - функция для получения адреса fullnode-узла по имени сети.
func URLForNetwork(name string) (string, error) {
	url, ok := networks[name]
	if !ok {
		return "", fmt.Errorf("unknown network name %s", name)
	}
	return url, nil
}

// Config - конфигурация клиента узла Sui.
type Config struct {
	PrimaryURL   string         // адрес основного узла
	SecondaryURL string         // адрес резервного узла, может быть пустым
	PackageID    string         // идентификатор пакета Move со списком допуска
	Module       string         // имя модуля списка допуска
	GasBudget    uint64         // бюджет газа на транзакцию
	Signer       *signer.Signer // серверный подписант транзакций
}

// Client - клиент JSON-RPC узла Sui.
type Client struct {
	http     *resty.Client
	cfg      Config
	attempts int
	delay    time.Duration
}

// NewClient - возвращает новый клиент узла Sui.
// Политика повторов по умолчанию: не больше 10 попыток с фиксированной паузой в 1 секунду.
func NewClient(cfg Config) *Client {
	return &Client{
		http:     resty.New(),
		cfg:      cfg,
		attempts: 10,
		delay:    time.Second,
	}
}

// SetRetryPolicy - метод для переопределения числа попыток и паузы между ними.
func (c *Client) SetRetryPolicy(attempts int, delay time.Duration) {
	c.attempts = attempts
	c.delay = delay
}

// rpcRequest - структура запроса JSON-RPC 2.0.
type rpcRequest struct {
	Jsonrpc string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// rpcError - структура ошибки JSON-RPC.
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// rpcResponse - структура ответа JSON-RPC.
type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// call - метод для выполнения одного запроса JSON-RPC к заданному узлу.
func (c *Client) call(ctx context.Context, endpoint, method string, params []any) (json.RawMessage, error) {
	var rpcResp rpcResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(rpcRequest{Jsonrpc: "2.0", ID: 1, Method: method, Params: params}).
		SetResult(&rpcResp).
		Post(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to post rpc request %s, %w", method, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("rpc request %s failed with status %d", method, resp.StatusCode())
	}
	if rpcResp.Error != nil {
		return nil, fmt.Errorf("rpc request %s failed, code %d: %s", method, rpcResp.Error.Code, rpcResp.Error.Message)
	}

	return rpcResp.Result, nil
}

// createdObject - созданный транзакцией объект из списка objectChanges.
type createdObject struct {
	Type       string `json:"type"`
	ObjectType string `json:"objectType"`
	ObjectID   string `json:"objectId"`
}

// executeMoveCall - метод для выполнения move-вызова: построение транзакции узлом,
// подписание серверным ключом и исполнение. Возвращает созданные объекты.
func (c *Client) executeMoveCall(ctx context.Context, function string, args []any) ([]createdObject, error) {
	if c.cfg.Signer == nil {
		return nil, fmt.Errorf("chain signer is not configured")
	}

	// строю байты транзакции через узел
	buildResult, err := c.call(ctx, c.cfg.PrimaryURL, "unsafe_moveCall", []any{
		c.cfg.Signer.Address(),
		c.cfg.PackageID,
		c.cfg.Module,
		function,
		[]string{},
		args,
		nil,
		fmt.Sprintf("%d", c.cfg.GasBudget),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build move call %s, %w", function, err)
	}

	var build struct {
		TxBytes string `json:"txBytes"`
	}
	if err := json.Unmarshal(buildResult, &build); err != nil {
		return nil, fmt.Errorf("failed to parse tx bytes, %w", err)
	}

	rawTx, err := base64.StdEncoding.DecodeString(build.TxBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tx bytes, %w", err)
	}
	signature := c.cfg.Signer.Sign(rawTx)

	// исполняю подписанную транзакцию с ожиданием локального исполнения
	execResult, err := c.call(ctx, c.cfg.PrimaryURL, "sui_executeTransactionBlock", []any{
		build.TxBytes,
		[]string{signature},
		map[string]bool{"showObjectChanges": true},
		"WaitForLocalExecution",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute move call %s, %w", function, err)
	}

	var exec struct {
		Digest        string          `json:"digest"`
		ObjectChanges []createdObject `json:"objectChanges"`
	}
	if err := json.Unmarshal(execResult, &exec); err != nil {
		return nil, fmt.Errorf("failed to parse execution result, %w", err)
	}

	created := make([]createdObject, 0, len(exec.ObjectChanges))
	for _, change := range exec.ObjectChanges {
		if change.Type == "created" {
			created = append(created, change)
		}
	}

	logger.ServerLog.Debug("move call executed",
		zap.String("function", function),
		zap.String("digest", exec.Digest),
		zap.Int("created", len(created)))

	return created, nil
}

// CreateAllowlist - метод для создания объекта списка допуска вместе с capability-объектом.
func (c *Client) CreateAllowlist(ctx context.Context, name string) (string, string, error) {
	created, err := c.executeMoveCall(ctx, "create_allowlist_entry", []any{name})
	if err != nil {
		return "", "", fmt.Errorf("failed to create allowlist, %w", err)
	}

	var allowlistID, capID string
	for _, obj := range created {
		switch {
		case strings.HasSuffix(obj.ObjectType, "::"+c.cfg.Module+"::Allowlist"):
			allowlistID = obj.ObjectID
		case strings.HasSuffix(obj.ObjectType, "::"+c.cfg.Module+"::Cap"):
			capID = obj.ObjectID
		}
	}
	if allowlistID == "" || capID == "" {
		return "", "", fmt.Errorf("allowlist objects not found in transaction results")
	}

	return allowlistID, capID, nil
}

// AddAllowlistEntries - метод для регистрации адресов кошельков в списке допуска.
func (c *Client) AddAllowlistEntries(ctx context.Context, allowlistID, capID string, addresses []string) error {
	for _, addr := range addresses {
		if _, err := c.executeMoveCall(ctx, "add", []any{allowlistID, capID, addr}); err != nil {
			return fmt.Errorf("failed to add address %s to allowlist, %w", addr, err)
		}
	}
	return nil
}

// objectStatus - статус одного объекта в ответе sui_multiGetObjects.
type objectStatus struct {
	Data *struct {
		ObjectID string `json:"objectId"`
	} `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

// objectsVisible - метод для проверки видимости всех объектов на заданном узле.
func (c *Client) objectsVisible(ctx context.Context, endpoint string, ids []string) (bool, error) {
	result, err := c.call(ctx, endpoint, "sui_multiGetObjects", []any{ids, map[string]bool{"showType": true}})
	if err != nil {
		return false, err
	}

	var statuses []objectStatus
	if err := json.Unmarshal(result, &statuses); err != nil {
		return false, fmt.Errorf("failed to parse multiGetObjects result, %w", err)
	}
	if len(statuses) != len(ids) {
		return false, nil
	}

	for _, st := range statuses {
		if st.Data == nil || st.Error != nil {
			return false, nil
		}
	}
	return true, nil
}

// WaitForObjects - метод для ожидания видимости созданных объектов.
// На каждом узле выполняется не больше attempts попыток с фиксированной паузой,
// после исчерпания бюджета основного узла клиент последовательно переходит
// на резервный узел, если тот настроен.
func (c *Client) WaitForObjects(ctx context.Context, ids []string) error {
	endpoints := []string{c.cfg.PrimaryURL}
	if c.cfg.SecondaryURL != "" {
		endpoints = append(endpoints, c.cfg.SecondaryURL)
	}

	for _, endpoint := range endpoints {
		for attempt := 1; attempt <= c.attempts; attempt++ {
			visible, err := c.objectsVisible(ctx, endpoint, ids)
			if err == nil && visible {
				return nil
			}
			if err != nil {
				logger.ServerLog.Warn("objects visibility check failed",
					zap.String("endpoint", endpoint),
					zap.Int("attempt", attempt),
					zap.String("error", err.Error()))
			}

			// после последней попытки пауза не нужна
			if attempt == c.attempts {
				break
			}

			// пауза перед следующей попыткой с учётом отмены контекста
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.delay):
			}
		}
		logger.ServerLog.Warn("retry budget exhausted for endpoint", zap.String("endpoint", endpoint))
	}

	return ErrChainUnavailable
}
