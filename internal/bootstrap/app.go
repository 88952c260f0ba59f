package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/generate"
	"resume-builder/internal/llm"
	openai "resume-builder/internal/llm/openai"
	"resume-builder/internal/prompts"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	PromptStore     prompts.Store
	PromptService   *prompts.Service
	LLM             llm.Client
	GenerateService *generate.Service
	PromptHandler   *prompts.Handler
	GenerateHandler *generate.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.PromptsFile) == "" {
		cfg.PromptsFile = "./data/prompts.json"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var store prompts.Store
	if sqlDB != nil {
		store = prompts.NewPGStore(sqlDB)
	} else {
		store = prompts.NewFileStore(cfg.PromptsFile)
	}

	promptSvc := prompts.NewService(store)

	llmClient := llm.Client(llm.PlaceholderClient{})
	if cfg.LLMProvider == "openai" && strings.TrimSpace(cfg.LLMModel) != "" {
		client, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), cfg.LLMModel)
		if err != nil {
			return nil, err
		}
		llmClient = client
	}

	genSvc := &generate.Service{
		Registry: promptSvc,
		LLM:      llmClient,
	}

	app := &App{
		Config:          cfg,
		DB:              sqlDB,
		PromptStore:     store,
		PromptService:   promptSvc,
		LLM:             llmClient,
		GenerateService: genSvc,
		PromptHandler:   prompts.NewHandler(promptSvc),
		GenerateHandler: generate.NewHandler(genSvc),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		PromptHandler:   app.PromptHandler,
		GenerateHandler: app.GenerateHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using file-backed prompt store: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using file-backed prompt store: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
