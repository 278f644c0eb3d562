package logging

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Component - подсистема со своим логгером и своим файлом
type Component string

const (
	ComponentClick      Component = "click"
	ComponentController Component = "controller"
	ComponentEventBus   Component = "eventbus"
	ComponentSim        Component = "sim"
)

// registry держит по одному логгеру на компонент.
// Все логгеры создаются с текущими Options и переживают Apply.
type registry struct {
	mu      sync.Mutex
	loggers map[Component]*Logger
}

func newRegistry() *registry {
	return &registry{loggers: make(map[Component]*Logger)}
}

var components = newRegistry()

func (r *registry) get(c Component) *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()

	if logger, ok := r.loggers[c]; ok {
		return logger
	}

	opts := options()
	logger, err := newLogger(string(c), opts)
	if err != nil {
		// Файл недоступен: компонент пишет только в консоль
		opts.DisableFile = true
		logger, _ = newLogger(string(c), opts)
		logger.Warn("файловый лог отключён: %v", err)
	}
	r.loggers[c] = logger
	return logger
}

func (r *registry) relevel(opts Options) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, logger := range r.loggers {
		logger.SetLevels(opts.ConsoleLevel, opts.FileLevel)
	}
}

func (r *registry) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.loggers))
	for c := range r.loggers {
		names = append(names, string(c))
	}
	sort.Strings(names)
	return names
}

func (r *registry) close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for c, logger := range r.loggers {
		if err := logger.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s log: %w", c, err))
		}
	}
	r.loggers = make(map[Component]*Logger)
	return errors.Join(errs...)
}

// Apply задаёт параметры логирования. Новые логгеры создаются с opts,
// у уже выданных логгеров компонентов меняются пороги уровней.
func Apply(opts Options) {
	Configure(opts)
	components.relevel(opts)
}

// For возвращает логгер компонента. Никогда не возвращает nil.
func For(c Component) *Logger {
	return components.get(c)
}

// Components перечисляет компоненты, у которых уже есть логгер
func Components() []string {
	return components.names()
}

// Shutdown закрывает файлы всех логгеров, включая логгер по умолчанию
func Shutdown() error {
	err := components.close()
	CloseDefaultLogger()
	return err
}

func GetClickLogger() *Logger {
	return For(ComponentClick)
}

func GetControllerLogger() *Logger {
	return For(ComponentController)
}

func GetSimLogger() *Logger {
	return For(ComponentSim)
}
