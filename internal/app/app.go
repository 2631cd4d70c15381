package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/kakemizuh/gameeconomy/internal/config"
	"go.uber.org/fx"
)

// Application provides application level setup
type Application interface {
	Setup()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting Game Economy Service...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	err := a.setupViper(*path)
	if err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(
		fx.Provide(
			a.InitLogger,
			a.InitDatabase,
			a.InitJWTService,
			a.InitPlayerRepository,
			a.InitItemRepository,
			a.InitInventoryRepository,
			a.InitPlayerUseCase,
			a.InitEconomyUseCase,
			a.InitPlayerHandler,
			a.InitItemHandler,
			a.InitEconomyHandler,
			a.InitErrorHandler,
			a.InitHTTPServer,
		),
		fx.Invoke(a.RunHTTPServer),
	)

	app.Run()
}
