package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/abezemskiy/suisign/internal/allowlist"
	"github.com/abezemskiy/suisign/internal/chain/rpc"
	"github.com/abezemskiy/suisign/internal/chain/signer"
	"github.com/abezemskiy/suisign/internal/server/handlers"
	"github.com/abezemskiy/suisign/internal/server/identity/auth"
	"github.com/abezemskiy/suisign/internal/server/logger"
	"github.com/abezemskiy/suisign/internal/server/signing"
	"github.com/abezemskiy/suisign/internal/server/storage/pg"
	"github.com/abezemskiy/suisign/internal/wallet/predetermined"
	"github.com/abezemskiy/suisign/internal/wallet/predetermined/cache"
	"github.com/abezemskiy/suisign/internal/wallet/salt"
)

const shutdownWaitPeriod = 20 * time.Second // для установки в контекст для реализации graceful shutdown

const defaultGasBudget uint64 = 100_000_000 // бюджет газа на одну транзакцию

func main() {
	err := parseVariables()
	if err != nil {
		log.Fatalf("failed to set global variables, %v", err)
	}

	ctx := context.Background()

	// открываю соединение с БД и подготавливаю хранилище
	conn, err := sql.Open("pgx", databaseDsn)
	if err != nil {
		log.Fatalf("Failed to open database connection: %v\n", err)
	}
	defer conn.Close()
	if err := conn.PingContext(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v\n", err)
	}

	stor := pg.NewStore(conn)
	if err := stor.Bootstrap(ctx); err != nil {
		log.Fatalf("Failed to bootstrap storage: %v\n", err)
	}
	// ------------------------------------------------------------------------------

	run(ctx, stor)
}

// функция run будет необходима для инициализации зависимостей сервера перед запуском
func run(ctx context.Context, stor *pg.Store) {
	// Инициализация логера
	if err := logger.Initialize(logLevel); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}

	logger.ServerLog.Info("Running suisign", zap.String("address", netAddr))

	// генератор предвычисленных кошельков
	generator := predetermined.NewGenerator(salt.NewDeriver(masterSeed, oauthClientID), cache.New())

	// серверный подписант транзакций
	txSigner, err := signer.New(sponsorKey)
	if err != nil {
		log.Fatalf("Failed to create transaction signer: %v", err)
	}

	// клиент узла Sui
	primaryURL, err := rpc.URLForNetwork(network)
	if err != nil {
		log.Fatalf("Failed to resolve rpc node url: %v", err)
	}
	chainClient := rpc.NewClient(rpc.Config{
		PrimaryURL:   primaryURL,
		SecondaryURL: secondaryRPCURL,
		PackageID:    packageID,
		Module:       allowlistModule,
		GasBudget:    defaultGasBudget,
		Signer:       txSigner,
	})

	// служба авторизации подписантов и проверка права подписи
	service := allowlist.NewService(stor, generator, chainClient)
	authenticator := signing.NewAuthenticator(generator)

	// запускаю сам сервис с проверкой отмены контекста для реализации graceful shutdown--------------
	srv := &http.Server{
		Addr:    netAddr,
		Handler: SigningRouter(stor, generator, service, authenticator),
	}
	// Канал для получения сигнала прерывания
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Горутина для запуска сервера
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	// Блокирование до тех пор, пока не поступит сигнал о прерывании
	<-quit
	logger.ServerLog.Info("Shutting down server...", zap.String("address", netAddr))

	// Create a context with timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(ctx, shutdownWaitPeriod)
	defer cancel()

	// останавливаю сервер, чтобы он перестал принимать новые запросы
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Stopping server error: %v", err)
	}

	logger.ServerLog.Info("Shutdown the server gracefully", zap.String("address", netAddr))
}

// SigningRouter - дирижирует обработку http запросов к серверу.
func SigningRouter(stor *pg.Store, generator *predetermined.Generator,
	service *allowlist.Service, authenticator *signing.Authenticator) chi.Router {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", logger.RequestLogger(handlers.RegisterHandler(stor)))
			r.Post("/authorize", logger.RequestLogger(handlers.AuthorizeHandler(stor)))
		})

		r.Route("/wallet", func(r chi.Router) {
			r.Post("/predetermined", logger.RequestLogger(auth.Middleware(handlers.GeneratePredeterminedWalletHandler(generator, stor))))
			r.Post("/batch", logger.RequestLogger(auth.Middleware(handlers.GenerateWalletBatchHandler(generator))))
		})

		r.Route("/contract", func(r chi.Router) {
			r.Post("/create", logger.RequestLogger(auth.Middleware(handlers.CreateContractHandler(stor, service))))
			r.Post("/{id}/allowlist", logger.RequestLogger(auth.Middleware(handlers.AuthorizeSignersHandler(stor, service))))
			r.Get("/{id}/can-sign", logger.RequestLogger(auth.Middleware(handlers.CanSignHandler(stor, authenticator))))
		})
	})

	// Определяем маршрут по умолчанию для некорректных запросов
	r.NotFound(logger.RequestLogger(handlers.HandleOtherRequest()))

	return r
}
