package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/annel0/buildregion/internal/logging"
	"github.com/annel0/buildregion/internal/mode"
	"github.com/annel0/buildregion/internal/region"
	"github.com/annel0/buildregion/internal/vec"
)

// ConfigEnv - переменная окружения с путём к файлу конфигурации
const ConfigEnv = "BUILDREGION_CONFIG"

// Config корневая структура конфигурации приложения.
type Config struct {
	Region    RegionConfig    `yaml:"region"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	EventBus  EventBusConfig  `yaml:"eventbus"`
	World     WorldConfig     `yaml:"world"`
}

type RegionConfig struct {
	Mode        mode.Mode      `yaml:"mode"`
	MaxDistance float64        `yaml:"max_distance"`
	SetDistance float64        `yaml:"set_distance"`
	DefaultSize *vec.Vec3Float `yaml:"default_size"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"`
	FileLevel   string `yaml:"file_level"`
	Dir         string `yaml:"dir"`
	DisableFile bool   `yaml:"disable_file"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
}

type EventBusConfig struct {
	Capacity  int  `yaml:"capacity"`
	LogEvents bool `yaml:"log_events"`
}

type WorldConfig struct {
	Seed   int64 `yaml:"seed"`
	Radius int   `yaml:"radius"`
}

// GetMaxDistance возвращает расстояние, на котором регион автоматически снимается
func (r *RegionConfig) GetMaxDistance() float64 {
	return getFloatWithEnvFallback(r.MaxDistance, "BUILDREGION_MAX_DISTANCE", 50)
}

// GetSetDistance возвращает расстояние перед игроком для нового региона
func (r *RegionConfig) GetSetDistance() float64 {
	return getFloatWithEnvFallback(r.SetDistance, "BUILDREGION_SET_DISTANCE", 2)
}

// GetDefaultSize возвращает размеры прототипа региона по умолчанию
func (r *RegionConfig) GetDefaultSize() vec.Vec3Float {
	if r.DefaultSize == nil {
		return region.DefaultSize
	}
	return *r.DefaultSize
}

// GetConsoleLevel возвращает порог для консоли (config -> env -> INFO)
func (l *LoggingConfig) GetConsoleLevel() logging.LogLevel {
	return getLevelWithEnvFallback(l.Level, "BUILDREGION_LOG_LEVEL", logging.INFO)
}

// GetFileLevel возвращает порог для файла логов
func (l *LoggingConfig) GetFileLevel() logging.LogLevel {
	return getLevelWithEnvFallback(l.FileLevel, "BUILDREGION_LOG_FILE_LEVEL", logging.TRACE)
}

// Options собирает параметры для logging.Apply
func (l *LoggingConfig) Options() logging.Options {
	opts := logging.DefaultOptions()
	if l.Dir != "" {
		opts.Dir = l.Dir
	}
	opts.ConsoleLevel = l.GetConsoleLevel()
	opts.FileLevel = l.GetFileLevel()
	opts.DisableFile = l.DisableFile
	return opts
}

// GetPort возвращает Prometheus метрики порт с поддержкой fallback значений
func (m *MetricsConfig) GetPort() int {
	return getPortWithEnvFallback(m.Port, "BUILDREGION_METRICS_PORT", 2112)
}

// GetServiceName возвращает имя сервиса для трассировки
func (t *TelemetryConfig) GetServiceName() string {
	if t.ServiceName != "" {
		return t.ServiceName
	}
	if env := os.Getenv("OTEL_SERVICE_NAME"); env != "" {
		return env
	}
	return "buildregion"
}

// GetCapacity возвращает размер буфера шины событий
func (e *EventBusConfig) GetCapacity() int {
	return getPortWithEnvFallback(e.Capacity, "BUILDREGION_EVENTBUS_CAPACITY", 256)
}

// GetSeed возвращает сид генератора мира
func (w *WorldConfig) GetSeed() int64 {
	if w.Seed != 0 {
		return w.Seed
	}
	if envVal := os.Getenv("BUILDREGION_SEED"); envVal != "" {
		if seed, err := strconv.ParseInt(envVal, 10, 64); err == nil {
			return seed
		}
	}
	return 1
}

// GetRadius возвращает радиус генерируемой области в блоках
func (w *WorldConfig) GetRadius() int {
	return getPortWithEnvFallback(w.Radius, "BUILDREGION_WORLD_RADIUS", 24)
}

// getPortWithEnvFallback возвращает положительное целое с приоритетом: config -> env -> default
func getPortWithEnvFallback(configValue int, envVar string, defaultValue int) int {
	// Если значение задано в конфиге и больше 0, используем его
	if configValue > 0 {
		return configValue
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if v, err := strconv.Atoi(envVal); err == nil && v > 0 {
			return v
		}
	}

	// Используем дефолтное значение
	return defaultValue
}

func getFloatWithEnvFallback(configValue float64, envVar string, defaultValue float64) float64 {
	if configValue > 0 {
		return configValue
	}
	if envVal := os.Getenv(envVar); envVal != "" {
		if v, err := strconv.ParseFloat(envVal, 64); err == nil && v > 0 {
			return v
		}
	}
	return defaultValue
}

func getLevelWithEnvFallback(configValue, envVar string, defaultValue logging.LogLevel) logging.LogLevel {
	for _, s := range []string{configValue, os.Getenv(envVar)} {
		if s == "" {
			continue
		}
		if level, err := logging.ParseLevel(s); err == nil {
			return level
		}
	}
	return defaultValue
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать путь из ENV BUILDREGION_CONFIG; если
// и он пуст, возвращает пустую конфигурацию (все значения по умолчанию).
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(ConfigEnv)
		if path == "" {
			return &Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение конфигурации %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("разбор конфигурации %s: %w", path, err)
	}

	return &cfg, nil
}
