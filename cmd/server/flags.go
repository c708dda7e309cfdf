package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/abezemskiy/suisign/internal/common/identity/tools/token"
	"github.com/abezemskiy/suisign/internal/server/config"
)

var (
	netAddr         string // адрес запуска сервиса
	databaseDsn     string // адрес базы данных
	logLevel        string // уровень логирования
	configFile      string // путь к файлу конфигурации
	secretKey       string // секретный ключ для создания JWT
	expireToken     int    // время действия JWT
	masterSeed      string // мастер-секрет для вывода соли кошельков
	oauthClientID   string // идентификатор клиента OAuth
	packageID       string // идентификатор пакета Move со списком допуска
	allowlistModule string // имя модуля списка допуска
	network         string // имя сети Sui
	secondaryRPCURL string // адрес резервного узла RPC
	sponsorKey      string // приватный ключ серверного подписанта транзакций
)

// parseVariables - функция для установки конфигурационных параметров приложения.
// Конфигурирование приложения с приоритетом в порядке убывания: значения флагов, значения из файла, значения переменных окружения.
func parseVariables() error {
	parseFlags()
	parseConfigFile()
	parseEnvironment()

	// Проверяю корректность установки глобальных переменных
	err := checkVariables()
	if err != nil {
		return fmt.Errorf("failed to set global variable, %w", err)
	}

	// Устанавливаю полученные значения глобальных переменных
	token.SetSecretKey(secretKey)
	token.SetExpireHour(expireToken)
	return nil
}

// parseFlags - функция для определения параметров конфигурации из флагов.
func parseFlags() {
	flag.StringVar(&netAddr, "a", "", "address and port to run server")
	flag.StringVar(&databaseDsn, "d", "", "database connection address") // по умолчанию адрес не задан
	flag.StringVar(&logLevel, "l", "", "log level")
	flag.StringVar(&configFile, "c", "", "name of configuration file")
	flag.StringVar(&secretKey, "secret-key", "", "secret key for generating JWT")
	flagExpireToken := flag.Int("expire-token", 0, "JWT expiration date in hours")
	flag.StringVar(&masterSeed, "master-seed", "", "master seed for wallet salt derivation")
	flag.StringVar(&oauthClientID, "oauth-client-id", "", "oauth client id for zklogin derivation")
	flag.StringVar(&packageID, "package-id", "", "move package id of the allowlist module")
	flag.StringVar(&allowlistModule, "allowlist-module", "", "name of the allowlist move module")
	flag.StringVar(&network, "network", "", "sui network name: mainnet, testnet, devnet or localnet")
	flag.StringVar(&secondaryRPCURL, "secondary-rpc-url", "", "secondary sui rpc node url")
	flag.StringVar(&sponsorKey, "sponsor-key", "", "sui private key of the server transaction signer")

	// Вызов flag.Parse() для парсинга аргументов
	flag.Parse()
	expireToken = *flagExpireToken
}

// parseConfigFile - функция для переопределения параметров конфигурации из файла конфигурации.
func parseConfigFile() {
	// если не указан файл конфигурации, то оставляю параметры запуска без изменения
	if configFile == "" {
		return
	}
	configs, err := config.ParseConfigFile(configFile)
	if err != nil {
		log.Fatalf("parse config file error: %v\n", err)
	}

	// обновляю параметры запуска если они не определены флагами
	if netAddr == "" {
		netAddr = configs.Address
	}
	if logLevel == "" {
		logLevel = configs.LogLevel
	}
	if databaseDsn == "" {
		databaseDsn = configs.DatabaseDSN
	}
	if secretKey == "" {
		secretKey = configs.SecretKey
	}
	if expireToken == 0 {
		expireToken = configs.ExpireToken
	}
	if masterSeed == "" {
		masterSeed = configs.MasterSeed
	}
	if oauthClientID == "" {
		oauthClientID = configs.OAuthClientID
	}
	if packageID == "" {
		packageID = configs.PackageID
	}
	if allowlistModule == "" {
		allowlistModule = configs.AllowlistModule
	}
	if network == "" {
		network = configs.Network
	}
	if secondaryRPCURL == "" {
		secondaryRPCURL = configs.SecondaryRPCURL
	}
	if sponsorKey == "" {
		sponsorKey = configs.SponsorKey
	}
}

// parseEnvironment - функция для переопределения конфигурации из глобальных переменных.
// Переопределяет конфигурацию, если значения не установлены флагами или файлом конфигурации.
func parseEnvironment() {
	if netAddr == "" {
		netAddr = os.Getenv("SUISIGN_SERVER_ADDRESS")
	}
	if databaseDsn == "" {
		databaseDsn = os.Getenv("SUISIGN_SERVER_DATABASE_URL")
	}
	if logLevel == "" {
		logLevel = os.Getenv("SUISIGN_SERVER_LOG_LEVEL")
	}
	if secretKey == "" {
		secretKey = os.Getenv("SUISIGN_SERVER_SECRET_KEY")
	}
	if expireToken == 0 {
		envExpireToken := os.Getenv("SUISIGN_SERVER_EXPIRE_TOKEN")
		if envExpireToken != "" {
			expire, err := strconv.Atoi(envExpireToken)
			if err == nil {
				expireToken = expire
			}
		}
	}
	if masterSeed == "" {
		masterSeed = os.Getenv("SUISIGN_MASTER_SEED")
	}
	if oauthClientID == "" {
		oauthClientID = os.Getenv("SUISIGN_OAUTH_CLIENT_ID")
	}
	if packageID == "" {
		packageID = os.Getenv("SUISIGN_PACKAGE_ID")
	}
	if allowlistModule == "" {
		allowlistModule = os.Getenv("SUISIGN_ALLOWLIST_MODULE")
	}
	if network == "" {
		network = os.Getenv("SUISIGN_NETWORK")
	}
	if secondaryRPCURL == "" {
		secondaryRPCURL = os.Getenv("SUISIGN_SECONDARY_RPC_URL")
	}
	if sponsorKey == "" {
		sponsorKey = os.Getenv("SUISIGN_SPONSOR_KEY")
	}
}

// checkVariables - функция для проверки корректности установки глобальных переменных.
// Мастер-секрет и идентификатор клиента OAuth обязательны: без них вывод адресов
// кошельков невозможен, запасного пути нет.
func checkVariables() error {
	if netAddr == "" {
		return fmt.Errorf("address and port to run server must be set")
	}
	if logLevel == "" {
		return fmt.Errorf("log level must be set")
	}
	if databaseDsn == "" {
		return fmt.Errorf("database connection address must be set")
	}
	if secretKey == "" {
		return fmt.Errorf("secret key must be set")
	}
	if expireToken == 0 {
		return fmt.Errorf("expire token must be set")
	}
	if masterSeed == "" {
		return fmt.Errorf("master seed must be set")
	}
	if oauthClientID == "" {
		return fmt.Errorf("oauth client id must be set")
	}
	if packageID == "" {
		return fmt.Errorf("move package id must be set")
	}
	if allowlistModule == "" {
		return fmt.Errorf("allowlist module name must be set")
	}
	if network == "" {
		return fmt.Errorf("sui network name must be set")
	}
	if sponsorKey == "" {
		return fmt.Errorf("sponsor private key must be set")
	}
	return nil
}
