package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/runplot/internal/api/router"
	apiserver "github.com/DjordjeVuckovic/runplot/internal/api/server"
	"github.com/DjordjeVuckovic/runplot/internal/report"
	"github.com/DjordjeVuckovic/runplot/internal/storage/factory"
	"github.com/DjordjeVuckovic/runplot/pkg/config/env"
	pkgserver "github.com/DjordjeVuckovic/runplot/pkg/server"
)

const storeConnectTimeout = 30 * time.Second

func main() {
	sCfg, err := apiserver.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	env.SetupLogging()

	appCfg, err := LoadAppConfig()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	var healthChecker pkgserver.HealthChecker = pkgserver.NewOkHealthChecker()
	var routerOpts []router.ReportRouterOption
	routerOpts = append(routerOpts, router.WithTempDir(sCfg.ReportDir), router.WithLogRoot(sCfg.LogRoot))
	slog.Info("Serving run logs", "root", sCfg.LogRoot)

	if appCfg.StorageConfig != nil {
		ctx, cancel := context.WithTimeout(context.Background(), storeConnectTimeout)
		storer, hc, err := factory.NewStorer(ctx, appCfg.StorageConfig)
		cancel()
		if err != nil {
			slog.Error("Failed to create summary store", "error", err)
			os.Exit(1)
		}
		defer storer.Close()
		healthChecker = hc
		routerOpts = append(routerOpts, router.WithStorer(storer))
		slog.Info("Summary store enabled", "type", appCfg.StorageConfig.Type)
	} else {
		slog.Info("Summary store disabled")
	}

	s := apiserver.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "runplot API is running")
	})

	renderer := report.NewRenderer(report.WithCatalog(appCfg.Catalog))
	router.NewReportRouter(s.Echo, renderer, routerOpts...).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
