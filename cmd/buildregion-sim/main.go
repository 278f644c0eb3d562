package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/buildregion/internal/config"
	"github.com/annel0/buildregion/internal/logging"
	"github.com/annel0/buildregion/internal/observability"
	"github.com/annel0/buildregion/internal/sim"
)

func main() {
	var (
		configPath = flag.String("config", "", "Путь к YAML конфигурации (по умолчанию $"+config.ConfigEnv+")")
		scriptPath = flag.String("script", "configs/scenario.yaml", "Путь к YAML сценарию")
		seed       = flag.Int64("seed", 0, "Сид мира (переопределяет конфигурацию)")
		hold       = flag.Duration("hold", 0, "Сколько держать /metrics после сценария (0 - не ждать)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}
	if *seed != 0 {
		cfg.World.Seed = *seed
	}

	logging.Apply(cfg.Logging.Options())
	if err := logging.InitDefaultLogger("sim"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}

	code := run(cfg, *scriptPath, *hold)

	if err := logging.Shutdown(); err != nil {
		log.Printf("⚠️ Ошибка закрытия логов: %v", err)
	}
	os.Exit(code)
}

func run(cfg *config.Config, scriptPath string, hold time.Duration) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info("🧱 Запуск симулятора региона строительства")

	shutdownTelemetry, err := observability.InitTelemetry(ctx, cfg.Telemetry.GetServiceName(), cfg.Telemetry.Enabled)
	if err != nil {
		logging.Error("❌ Ошибка инициализации OpenTelemetry: %v", err)
		return 1
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			logging.Warn("Ошибка остановки OpenTelemetry: %v", err)
		}
	}()

	script, err := sim.LoadScript(scriptPath)
	if err != nil {
		logging.Error("❌ %v", err)
		return 1
	}

	simulator, err := sim.New(cfg, os.Stdout)
	if err != nil {
		logging.Error("❌ Ошибка создания симулятора: %v", err)
		return 1
	}
	defer simulator.Close()

	if cfg.Metrics.Enabled {
		shutdownMetrics := simulator.Metrics.Serve(fmt.Sprintf(":%d", cfg.Metrics.GetPort()))
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownMetrics(ctx); err != nil {
				logging.Warn("Ошибка остановки /metrics: %v", err)
			}
		}()
	}

	results, err := simulator.Run(ctx, script)
	code := 0
	switch {
	case errors.Is(err, sim.ErrExpectation):
		for _, r := range sim.Mismatches(results) {
			logging.Warn("Шаг #%d (%s) завершился исходом %s", r.Step, r.Op, r.Outcome)
		}
		logging.Error("❌ %v", err)
		code = 2
	case err != nil:
		logging.Error("❌ %v", err)
		code = 1
	default:
		logging.Info("✅ Сценарий выполнен: %d шагов", len(results))
	}

	logging.Info("⏱️  Время работы: %s", simulator.Metrics.Process().GetUptime())

	if hold > 0 && cfg.Metrics.Enabled {
		logging.Info("📈 /metrics доступен ещё %v (Ctrl+C для выхода)", hold)
		select {
		case <-time.After(hold):
		case <-ctx.Done():
		}
	}
	return code
}
