package app

import (
	"context"
	adminAPI "gamehub_backend/internal/api/admin"
	authAPI "gamehub_backend/internal/api/auth"
	gameAPI "gamehub_backend/internal/api/game"
	walletAPI "gamehub_backend/internal/api/wallet"
	"gamehub_backend/internal/config"
	"gamehub_backend/internal/config/env"
	"gamehub_backend/internal/middleware"
	"gamehub_backend/internal/repository"
	"gamehub_backend/internal/repository/auth_repo"
	"gamehub_backend/internal/repository/game_config_repo"
	"gamehub_backend/internal/repository/round_repo"
	"gamehub_backend/internal/repository/user_repo"
	"gamehub_backend/internal/service"
	"gamehub_backend/internal/service/auth"
	"gamehub_backend/internal/service/cricket"
	"gamehub_backend/internal/service/engine"
	"gamehub_backend/internal/service/gameconfig"
	"gamehub_backend/internal/service/payment"
	"log"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// User bits
	userRepo    repository.UserRepository
	paymentServ service.PaymentService
	walletHand  *walletAPI.Handler

	// Game config bits
	gameCfgRepo repository.GameConfigRepository
	gameCfgServ service.GameConfigService
	adminHand   *adminAPI.Handler

	// Engine bits
	roundRepo   repository.RoundRepository
	rng         engine.RandomSource
	gameServ    service.GameService
	cricketServ service.CricketService
	gameHand    *gameAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) GameConfigRepo(ctx context.Context) repository.GameConfigRepository {
	if sp.gameCfgRepo == nil {
		sp.gameCfgRepo = game_config_repo.NewGameConfigRepository(sp.DBClient(ctx))
	}
	return sp.gameCfgRepo
}

func (sp *ServiceProvider) RoundRepo(ctx context.Context) repository.RoundRepository {
	if sp.roundRepo == nil {
		sp.roundRepo = round_repo.NewRoundRepository(sp.DBClient(ctx))
	}
	return sp.roundRepo
}

func (sp *ServiceProvider) GameConfigService(ctx context.Context) service.GameConfigService {
	if sp.gameCfgServ == nil {
		// Стартовые значения из config.yaml, при его отсутствии - зашитые
		seed, err := env.NewGameConfigsFromYAML("config.yaml")
		if err != nil {
			log.Printf("failed to load config.yaml, using built-in defaults: %v", err)
			seed = gameconfig.DefaultConfigs()
		}

		sp.gameCfgServ = gameconfig.NewGameConfigService(seed, sp.GameConfigRepo(ctx))

		// Значения из БД перекрывают стартовые
		if err := sp.gameCfgServ.Reload(ctx); err != nil {
			log.Printf("failed to reload game configs from storage: %v", err)
		}
	}
	return sp.gameCfgServ
}

func (sp *ServiceProvider) RandomSource() engine.RandomSource {
	if sp.rng == nil {
		sp.rng = engine.NewSecureSource()
	}
	return sp.rng
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = engine.NewGameService(
			sp.GameConfigService(ctx),
			sp.RoundRepo(ctx),
			sp.UserRepo(ctx),
			sp.TXManager(ctx),
			sp.RandomSource(),
		)
	}
	return sp.gameServ
}

func (sp *ServiceProvider) CricketService(ctx context.Context) service.CricketService {
	if sp.cricketServ == nil {
		sp.cricketServ = cricket.NewCricketService(sp.GameService(ctx), sp.GameConfigService(ctx))
	}
	return sp.cricketServ
}

func (sp *ServiceProvider) PaymentService(ctx context.Context) service.PaymentService {
	if sp.paymentServ == nil {
		sp.paymentServ = payment.NewPaymentService(sp.UserRepo(ctx), sp.TXManager(ctx))
	}
	return sp.paymentServ
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(sp.UserRepo(ctx), sp.AuthRepo(ctx), sp.TXManager(ctx), sp.JWTCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Serv:        sp.GameService(ctx),
			CricketServ: sp.CricketService(ctx),
			ConfigServ:  sp.GameConfigService(ctx),
			PaymentServ: sp.PaymentService(ctx),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) AdminHandler(ctx context.Context) *adminAPI.Handler {
	if sp.adminHand == nil {
		sp.adminHand = adminAPI.NewHandler(adminAPI.HandlerDeps{ConfigServ: sp.GameConfigService(ctx)})
	}
	return sp.adminHand
}

func (sp *ServiceProvider) WalletHandler(ctx context.Context) *walletAPI.Handler {
	if sp.walletHand == nil {
		sp.walletHand = walletAPI.NewHandler(walletAPI.HandlerDeps{PaymentServ: sp.PaymentService(ctx)})
	}
	return sp.walletHand
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		authMW := middleware.Auth(sp.JWTCfg().AccessTokenSecretKey())

		// Game endpoints
		gameHandler := sp.GameHandler(ctx)
		r.Route("/games", func(rr chi.Router) {
			rr.Use(authMW)
			rr.Get("/", gameHandler.List)
			rr.Post("/{game}/play", gameHandler.Play)
			rr.Get("/{game}/can-play", gameHandler.CanPlay)
			rr.Post("/cricket/bet", gameHandler.CricketBet)
		})

		// Wallet endpoints
		walletHandler := sp.WalletHandler(ctx)
		r.Route("/wallet", func(rr chi.Router) {
			rr.Use(authMW)
			rr.Post("/deposit", walletHandler.Deposit)
			rr.Get("/balance", walletHandler.Balance)
		})

		// Admin endpoints
		adminHandler := sp.AdminHandler(ctx)
		r.Route("/admin", func(rr chi.Router) {
			rr.Use(authMW)
			rr.Get("/configs", adminHandler.GetAllConfigs)
			rr.Get("/configs/{game}", adminHandler.GetConfig)
			rr.Patch("/configs/{game}", adminHandler.UpdateConfig)
			rr.Post("/configs/reload", adminHandler.ReloadConfigs)
		})

		sp.router = r
	}

	return sp.router
}
