package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/braindump/internal/cli"
	"github.com/alexanderramin/braindump/internal/compression"
	"github.com/alexanderramin/braindump/internal/config"
	"github.com/alexanderramin/braindump/internal/db"
	"github.com/alexanderramin/braindump/internal/httpapi"
	"github.com/alexanderramin/braindump/internal/llm"
	"github.com/alexanderramin/braindump/internal/repository"
	"github.com/alexanderramin/braindump/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// BRAINDUMP_CONFIG points at an explicit config file; otherwise
	// ~/.braindump/config.yaml is used when present.
	cfg, err := config.Load(config.Options{ConfigFile: os.Getenv("BRAINDUMP_CONFIG")})
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	logs := cli.NewLogSwitch(os.Stderr, cfg.LLM.LogCalls)

	llmCfg := cfg.LLMConfig()
	backend, err := llm.NewBackend(context.Background(), llmCfg, llm.NewLogObserver(logs))
	if err != nil {
		return fmt.Errorf("configuring AI backend: %w", err)
	}

	// Wire repositories
	taskRepo := repository.NewSQLiteTaskRepo(database)
	dumpRepo := repository.NewSQLiteDumpRepo(database)
	kvRepo := repository.NewSQLiteKVRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewLogUseCaseObserver(logs)

	// Wire services
	engine := compression.NewEngine(backend, compression.WithTaskConfig(llmCfg.Task(llm.TaskCompress)))
	planSvc := service.NewPlanService(engine, dumpRepo, uow,
		string(llmCfg.Primary.Provider), llmCfg.RequestTimeout(), observer)
	scheduleSvc := service.NewScheduleService(taskRepo, cfg.Preferences())
	daySvc := service.NewDayService(kvRepo)
	nudgeSvc := service.NewNudgeService(taskRepo, daySvc)

	server := httpapi.New(httpapi.Deps{
		Compress: planSvc,
		Plan:     scheduleSvc,
		Nudges:   nudgeSvc,
	}, httpapi.Options{
		Addr:           cfg.Server.Addr,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		JWTSecret:      cfg.Server.JWTSecret,
		Logs:           os.Stderr,
	})

	app := &cli.App{
		Plan:     planSvc,
		Tasks:    service.NewTaskService(taskRepo, uow, observer),
		Schedule: scheduleSvc,
		Day:      daySvc,
		Nudges:   nudgeSvc,
		Serve:    server.Run,
		Logs:     logs,
	}

	// Prompts and the focus view need a terminal on both ends.
	app.IsInteractive = func() bool {
		in := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		out := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		return in && out
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
