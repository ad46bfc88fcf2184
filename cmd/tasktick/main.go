package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tasktick/tasktick/internal/config"
	"github.com/tasktick/tasktick/internal/storage"
	"github.com/tasktick/tasktick/internal/store"
	"github.com/tasktick/tasktick/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tasktick failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultPath(), config.Default())
	if err != nil {
		return err
	}

	logger := log.New(io.Discard)
	if cfg.Log.Path != "" {
		f, err := os.OpenFile(cfg.Log.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = log.New(f)
		logger.SetReportTimestamp(true)
	}

	repo := storage.NewJSONRepository(cfg.State.Path, uuid.NewString)
	state, err := repo.Load(context.Background())
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	svc := store.NewService(state, uuid.NewString)

	logger.Info("starting", "state_path", repo.Path(), "tasks", len(state.Tasks))
	program := tea.NewProgram(update.NewModel(svc, repo, logger, cfg))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
