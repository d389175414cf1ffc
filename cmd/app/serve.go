package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-copilot/internal/config"
	"github.com/BuzzLyutic/todo-copilot/internal/handler"
	"github.com/BuzzLyutic/todo-copilot/internal/intent"
	"github.com/BuzzLyutic/todo-copilot/internal/model"
	"github.com/BuzzLyutic/todo-copilot/internal/repo"
	"github.com/BuzzLyutic/todo-copilot/internal/service"
	"github.com/BuzzLyutic/todo-copilot/internal/worker"
)

func serveCmd() *cobra.Command {
	cfg := config.Load() // Загрузка конфигурации, флаги ниже ее переопределяют

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API for the UI and the assistant",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.Port, "port", "p", cfg.Port, "HTTP port")
	cmd.Flags().IntVarP(&cfg.WorkerCount, "workers", "w", cfg.WorkerCount, "assistant action workers")
	cmd.Flags().StringVar(&cfg.Timezone, "timezone", cfg.Timezone, "timezone for deadlines without offset")
	cmd.Flags().BoolVar(&cfg.SeedSampleTask, "seed", cfg.SeedSampleTask, "start with a sample task")

	return cmd
}

func runServe(cfg config.Config) error {
	// Подключаем логгер
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	taskService := service.NewTaskService(repo.NewTaskRepo(), loc)
	if cfg.SeedSampleTask {
		if err := seedSampleTask(context.Background(), taskService, loc); err != nil {
			return fmt.Errorf("seed sample task: %w", err)
		}
	}

	adapter := intent.NewAdapter(taskService, logger)
	workerPool := worker.NewPool(adapter, logger, cfg.WorkerCount)
	workerPool.Start(context.Background())
	defer workerPool.Stop()

	srv := http.Server{ // Создаем сервер
		Addr: ":" + cfg.Port,
		Handler: handler.NewRouter(
			handler.NewTaskHandler(taskService, logger),
			handler.NewAssistantHandler(taskService, workerPool, logger),
		),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { // Запуск сервера и обработка ошибок
		logger.Info("Server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
	case err := <-errCh:
		logger.Error("Server failed", zap.Error(err))
		return err
	}

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error", zap.Error(err))
		return err
	}
	logger.Info("Server stopped successfully!")
	return nil
}

// seedSampleTask кладет в пустой список пример задачи со сроком через 8 часов
func seedSampleTask(ctx context.Context, s *service.TaskService, loc *time.Location) error {
	deadline := time.Now().In(loc).Add(8 * time.Hour)
	_, err := s.Create(ctx, model.CreateTaskInput{
		Title:       "Read Newspaper",
		Description: "Write keypoints related to economics.",
		Deadline:    deadline.Format("2006-01-02 15:04"),
		Priority:    string(model.PriorityHigh),
	})
	return err
}
