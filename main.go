package main

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/finucity/finucity-calc/config"
	"github.com/finucity/finucity-calc/database"
	"github.com/finucity/finucity-calc/handler"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

func main() {
	boot := zap.Must(zap.NewProduction())

	cfg, err := config.Load()
	if err != nil {
		boot.Fatal("cannot load config", zap.Error(err))
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		boot.Fatal("cannot build logger", zap.String("level", cfg.LogLevel), zap.Error(err))
	}
	defer logger.Sync() //nolint:errcheck

	rules, err := config.LoadRules(cfg.RulesFile)
	if err != nil {
		logger.Fatal("cannot load rules", zap.String("file", cfg.RulesFile), zap.Error(err))
	}

	db, err := database.NewDB(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("cannot connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.Ping(ctx); err != nil {
		logger.Fatal("database is not reachable", zap.Error(err))
	}

	if err := db.Migrate(ctx); err != nil {
		logger.Fatal("cannot migrate database", zap.Error(err))
	}

	vl := validator.New()
	calculators := handler.NewCalculatorHandler(vl, db, rules, logger)
	admin := handler.NewAdminHandler(vl, db, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.BodyLimit))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogMethod:  true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	e.GET("/", handler.Healthcheck)

	g := e.Group("/calculators")
	g.POST("/income-tax", calculators.CalculateIncomeTax)
	g.POST("/income-tax/compare", calculators.CompareRegimes)
	g.POST("/hra", calculators.CalculateHRA)
	g.POST("/capital-gains", calculators.CalculateCapitalGains)
	g.POST("/sip", calculators.CalculateSIP)
	g.POST("/gst", calculators.CalculateGST)
	g.POST("/gst/csv", calculators.CalculateGSTWithCSV)
	g.POST("/tds", calculators.CalculateTDS)
	g.POST("/gratuity", calculators.CalculateGratuity)
	g.GET("/financial-year", calculators.FinancialYear)

	a := e.Group("/admin")
	a.Use(middleware.BasicAuth(func(username, password string, c echo.Context) (bool, error) {
		if subtle.ConstantTimeCompare([]byte(username), []byte(cfg.AdminUsername)) == 1 &&
			subtle.ConstantTimeCompare([]byte(password), []byte(cfg.AdminPassword)) == 1 {
			return true, nil
		}
		return false, nil
	}))
	a.POST("/deductions/:code", admin.UpdateDeductionLimit)
	a.POST("/tds/:section", admin.UpdateTDSRate)

	go func() {
		logger.Info("starting server", zap.String("addr", cfg.Addr()))
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()

	logger.Info("shutting down the server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
