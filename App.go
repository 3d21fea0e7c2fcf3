package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.alis.build/alog"
)

const ExitCodeMainError = 1

const ShutdownTimeout = time.Second * 5

// RunApp serves the HTTP API until ctx is cancelled
func RunApp(ctx context.Context, config AppConfig) error {
	gin.SetMode(gin.ReleaseMode)

	if err := ConfigureLogging(config); err != nil {
		return err
	}

	serviceContainer, err := BuildServiceContainer(config)
	if err != nil {
		return err
	}
	defer serviceContainer.Database.Close()

	serviceContainer.WebhookDispatcher.Start()
	defer serviceContainer.WebhookDispatcher.Close()

	server := &http.Server{
		Addr:    config.ListenAddress,
		Handler: serviceContainer.Router,
	}

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				alog.Warnf(ctx, "server shutdown: %v", err)
			}
		case <-stopped:
		}
	}()

	alog.Infof(ctx, "listening on %s, database %s", config.ListenAddress, config.DatabasePath)
	err = server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		alog.Infof(ctx, "server stopped")
		return nil
	}

	return err
}

// RunExport writes one stored sheet into an xlsx file
func RunExport(ctx context.Context, config AppConfig, sheetId string, outputPath string) (err error) {
	if err = ConfigureLogging(config); err != nil {
		return err
	}

	serviceContainer, err := BuildServiceContainer(config)
	if err != nil {
		return err
	}
	defer serviceContainer.Database.Close()

	snapshot, err := serviceContainer.SheetRepository.GetSheet(sheetId)
	if err != nil {
		return err
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	if err = serviceContainer.XlsxExporter.Export(snapshot, file); err != nil {
		return fmt.Errorf("export %s: %w", sheetId, err)
	}

	alog.Infof(ctx, "sheet %s exported to %s", sheetId, outputPath)
	return nil
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
		return ExitCodeMainError
	}

	return 0
}
