package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/annel0/buildregion/internal/click"
	"github.com/annel0/buildregion/internal/config"
	"github.com/annel0/buildregion/internal/controller"
	"github.com/annel0/buildregion/internal/eventbus"
	"github.com/annel0/buildregion/internal/logging"
	"github.com/annel0/buildregion/internal/metrics"
	"github.com/annel0/buildregion/internal/vec"
	"github.com/annel0/buildregion/internal/world"
	"github.com/annel0/buildregion/internal/world/block"
)

// ErrExpectation - исход хотя бы одного шага не совпал с ожидаемым
var ErrExpectation = errors.New("script expectation failed")

// Simulator связывает мир, контроллер региона и валидатор кликов
type Simulator struct {
	World      *world.WorldManager
	Controller *controller.Controller
	Validator  *click.Validator
	Bus        eventbus.EventBus
	Metrics    *metrics.Metrics

	exporter   *eventbus.MetricsExporter
	generator  *world.WorldGenerator
	out        io.Writer
	logger     *logging.Logger
	worldRange int

	yaw, pitch float64
	held       block.ItemStack
}

// New собирает симулятор по конфигурации и генерирует мир.
// Сообщения игроку и итоги шагов пишутся в out.
func New(cfg *config.Config, out io.Writer) (*Simulator, error) {
	logger := logging.GetSimLogger()

	m := metrics.New()
	bus := eventbus.NewMemoryBus(cfg.EventBus.GetCapacity())

	exporter := eventbus.NewMetricsExporter(bus, m.Registry)
	exporter.Start(time.Second)

	if cfg.EventBus.LogEvents {
		if _, err := eventbus.StartLoggingListener(bus, logging.For(logging.ComponentEventBus)); err != nil {
			exporter.Stop()
			bus.Close()
			return nil, fmt.Errorf("подписка логгера событий: %w", err)
		}
	}

	opts := controller.Options{
		Mode:        cfg.Region.Mode,
		MaxDistance: cfg.Region.GetMaxDistance(),
		SetDistance: cfg.Region.GetSetDistance(),
		DefaultSize: cfg.Region.GetDefaultSize(),
	}

	s := &Simulator{
		World:      world.NewWorldManager(),
		Bus:        bus,
		Metrics:    m,
		exporter:   exporter,
		generator:  world.NewWorldGenerator(cfg.World.GetSeed()),
		out:        out,
		logger:     logger,
		worldRange: cfg.World.GetRadius(),
		held:       block.Empty(),
	}
	s.Controller = controller.New(opts, WriterNotifier{W: out}, bus, m)
	s.Validator = click.NewValidator(s.World, s.Controller, s.Controller, m)

	start := time.Now()
	written := s.generator.Generate(s.World, vec.Vec3{}, s.worldRange)
	logger.Info("🌍 Мир сгенерирован: seed=%d, радиус=%d, блоков=%d, чанков=%d за %v",
		s.generator.Seed, s.worldRange, written, s.World.ChunkCount(), time.Since(start))

	// Изменения блоков после генерации уходят на шину
	s.World.OnBlockChange(s.publishBlockChange)
	return s, nil
}

// SurfaceSpawn возвращает точку на твёрдой поверхности в колонке (0, 0)
func (s *Simulator) SurfaceSpawn() vec.Vec3Float {
	y, ok := s.World.HighestSolidY(0, 0, s.generator.BaseHeight-8, s.generator.BaseHeight+s.generator.Amplitude+2)
	if !ok {
		y = s.generator.HeightAt(0, 0)
	}
	return vec.Vec3Float{X: 0.5, Y: float64(y + 1), Z: 0.5}
}

// Close останавливает шину и экспортер метрик
func (s *Simulator) Close() error {
	s.exporter.Stop()
	err := s.Bus.Close()
	s.exporter.Update()
	return err
}

type blockChange struct {
	Event    string      `json:"event"`
	Position vec.Vec3    `json:"position"`
	Old      world.Block `json:"old"`
	New      world.Block `json:"new"`
}

func (s *Simulator) publishBlockChange(ev world.BlockEvent) {
	env, err := eventbus.NewEnvelope("world", eventbus.EventBlockChanged, blockChange{
		Event:    ev.EventType.String(),
		Position: ev.Position,
		Old:      ev.Old,
		New:      ev.New,
	})
	if err != nil {
		s.logger.Error("событие изменения блока: %v", err)
		return
	}
	env.Priority = eventbus.PriorityLow
	if err := s.Bus.Publish(context.Background(), env); err != nil {
		s.logger.Warn("событие изменения блока не опубликовано: %v", err)
	}
}

// WriterNotifier печатает сообщения игроку в поток вывода
type WriterNotifier struct {
	W io.Writer
}

func (n WriterNotifier) Info(msg string) {
	fmt.Fprintf(n.W, "  💬 %s\n", msg)
}

func (n WriterNotifier) Error(msg string) {
	fmt.Fprintf(n.W, "  ⚠️  %s\n", msg)
}
