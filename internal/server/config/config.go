package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// Configs представляет структуру конфигурации.
type Configs struct {
	Address         string `json:"address"`           // аналог переменной окружения SUISIGN_SERVER_ADDRESS или флага -a
	LogLevel        string `json:"log_level"`         // аналог переменной окружения SUISIGN_SERVER_LOG_LEVEL или флага -l
	DatabaseDSN     string `json:"database_dsn"`      // аналог переменной окружения SUISIGN_SERVER_DATABASE_URL или флага -d
	SecretKey       string `json:"secret_key"`        // аналог переменной окружения SUISIGN_SERVER_SECRET_KEY или флага -secret-key
	ExpireToken     int    `json:"expire_token"`      // аналог переменной окружения SUISIGN_SERVER_EXPIRE_TOKEN или флага -expire-token
	MasterSeed      string `json:"master_seed"`       // аналог переменной окружения SUISIGN_MASTER_SEED или флага -master-seed
	OAuthClientID   string `json:"oauth_client_id"`   // аналог переменной окружения SUISIGN_OAUTH_CLIENT_ID или флага -oauth-client-id
	PackageID       string `json:"package_id"`        // аналог переменной окружения SUISIGN_PACKAGE_ID или флага -package-id
	AllowlistModule string `json:"allowlist_module"`  // аналог переменной окружения SUISIGN_ALLOWLIST_MODULE или флага -allowlist-module
	Network         string `json:"network"`           // аналог переменной окружения SUISIGN_NETWORK или флага -network
	SecondaryRPCURL string `json:"secondary_rpc_url"` // аналог переменной окружения SUISIGN_SECONDARY_RPC_URL или флага -secondary-rpc-url
	SponsorKey      string `json:"sponsor_key"`       // аналог переменной окружения SUISIGN_SPONSOR_KEY или флага -sponsor-key
}

// ParseConfigFile - функция для переопределения параметров конфигурации из файла конфигурации.
func ParseConfigFile(configFileName string) (Configs, error) {
	var configs Configs
	f, err := os.Open(configFileName)
	if err != nil {
		return Configs{}, fmt.Errorf("open configuration file error: %w", err)
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	dec := json.NewDecoder(reader)
	err = dec.Decode(&configs)
	if err != nil {
		return Configs{}, fmt.Errorf("parse configuration file error: %w", err)
	}

	return configs, nil
}
