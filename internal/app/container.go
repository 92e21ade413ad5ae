package app

import (
	"go.uber.org/zap"

	"github.com/askshell/ask/internal/infrastructure/ai"
	"github.com/askshell/ask/internal/infrastructure/config"
	"github.com/askshell/ask/internal/infrastructure/history"
	"github.com/askshell/ask/internal/infrastructure/pane"
	"github.com/askshell/ask/internal/infrastructure/parse"
	"github.com/askshell/ask/internal/infrastructure/prompt"
	"github.com/askshell/ask/internal/pkg/logger"
	"github.com/askshell/ask/internal/ports"
	"github.com/askshell/ask/internal/services"
)

// Container wires up the query service with its infrastructure adapters.
type Container struct {
	QueryService *services.QueryService
	ConfigLoader *config.FileLoader
	History      ports.HistoryRepository
	Logger       *zap.Logger
	LogLevel     zap.AtomicLevel
}

// BuildContainer constructs the dependency graph.
func BuildContainer(debug bool) (*Container, error) {
	log, level, err := logger.New(debug)
	if err != nil {
		return nil, err
	}

	cfgLoader := config.NewFileLoader("")

	// The pipeline survives without a history store.
	var store ports.HistoryRepository
	if sqliteStore, err := history.NewSQLiteStore(""); err != nil {
		log.Warn("history store unavailable", zap.Error(err))
	} else {
		store = sqliteStore
	}

	queryService := &services.QueryService{
		ConfigProvider: cfgLoader,
		PaneCapturer:   pane.NewEnvCapturer(),
		PromptBuilder:  prompt.NewEngine(),
		Factory:        ai.NewFactory(),
		Parser:         parse.NewCommandParser(),
		History:        store,
		Logger:         log,
	}

	return &Container{
		QueryService: queryService,
		ConfigLoader: cfgLoader,
		History:      store,
		Logger:       log,
		LogLevel:     level,
	}, nil
}
