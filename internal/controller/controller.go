package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/annel0/buildregion/internal/click"
	"github.com/annel0/buildregion/internal/eventbus"
	"github.com/annel0/buildregion/internal/logging"
	"github.com/annel0/buildregion/internal/metrics"
	"github.com/annel0/buildregion/internal/mode"
	"github.com/annel0/buildregion/internal/observability"
	"github.com/annel0/buildregion/internal/region"
	"github.com/annel0/buildregion/internal/vec"
)

var (
	// ErrAmbiguousDirection - взгляд игрока не указывает однозначно на одну из шести сторон
	ErrAmbiguousDirection = errors.New("ambiguous direction")
	// ErrNoRegion - команда требует активного региона
	ErrNoRegion = errors.New("no build region")
	// ErrCannotAdjust - регион бесконечен вдоль оси и не меняет размер
	ErrCannotAdjust = errors.New("region cannot be resized along axis")
)

// Результаты команд для метрик
const (
	resultOK        = "ok"
	resultNoop      = "noop"
	resultAmbiguous = "ambiguous"
	resultError     = "error"
)

// Источник событий на шине
const eventSource = "controller"

// Options - параметры контроллера
type Options struct {
	Mode        mode.Mode
	MaxDistance float64       // Расстояние автоматического снятия региона
	SetDistance float64       // Расстояние перед игроком для нового региона
	DefaultSize vec.Vec3Float // Размеры прототипа по умолчанию
}

// DefaultOptions возвращает параметры по умолчанию
func DefaultOptions() Options {
	return Options{
		Mode:        mode.Default,
		MaxDistance: 50,
		SetDistance: 2,
		DefaultSize: region.DefaultSize,
	}
}

// Controller владеет активным регионом и режимом.
// Работает в одном логическом потоке и не берёт блокировок; асинхронна
// только доставка событий по шине.
type Controller struct {
	opts Options

	region      region.Region
	userDefined bool
	// factory живёт между последовательными Convert и сбрасывается любой
	// другой командой, меняющей регион
	factory *region.Factory
	mode    mode.Mode
	player  vec.Vec3Float

	session  string
	bus      eventbus.EventBus
	notifier Notifier
	metrics  *metrics.Metrics
	logger   *logging.Logger
	tracer   trace.Tracer
}

// New создаёт контроллер. bus, notifier и m могут быть nil.
func New(opts Options, notifier Notifier, bus eventbus.EventBus, m *metrics.Metrics) *Controller {
	if !opts.Mode.Valid() {
		opts.Mode = mode.Default
	}
	if opts.MaxDistance <= 0 {
		opts.MaxDistance = DefaultOptions().MaxDistance
	}
	if opts.SetDistance <= 0 {
		opts.SetDistance = DefaultOptions().SetDistance
	}
	if opts.DefaultSize == (vec.Vec3Float{}) {
		opts.DefaultSize = region.DefaultSize
	}

	c := &Controller{
		opts:     opts,
		mode:     opts.Mode,
		session:  uuid.NewString(),
		bus:      bus,
		notifier: notifier,
		metrics:  m,
		logger:   logging.GetControllerLogger(),
		tracer:   observability.Tracer(),
	}
	c.metrics.SetActiveRegion(region.TypeNone.String(), 0)
	c.logger.Debug("контроллер создан: сессия %s, режим %s", c.session, c.mode)
	return c
}

// ActiveRegion возвращает активный регион или nil
func (c *Controller) ActiveRegion() region.Region {
	return c.region
}

// Mode возвращает текущий режим
func (c *Controller) Mode() mode.Mode {
	return c.mode
}

// UserDefined - активный регион задан игроком, а не является прототипом
func (c *Controller) UserDefined() bool {
	return c.userDefined
}

// Session возвращает идентификатор сессии, которым помечаются события
func (c *Controller) Session() string {
	return c.session
}

// PlayerPosition возвращает последнюю известную позицию игрока
func (c *Controller) PlayerPosition() vec.Vec3Float {
	return c.player
}

// Set делает r активным регионом
func (c *Controller) Set(ctx context.Context, r region.Region) {
	ctx, span := c.start(ctx, "set")
	if r == nil {
		c.clear(ctx, false)
		c.finish(span, "set", resultOK, nil)
		return
	}
	c.replace(ctx, "set", r)
	infof(c.notifier, MsgLocked, r)
	c.finish(span, "set", resultOK, nil)
}

// SetFromLook ставит регион на SetDistance блоков перед игроком в направлении
// взгляда. Существующий регион переносится с сохранением формы, иначе
// используется прототип по умолчанию.
func (c *Controller) SetFromLook(ctx context.Context, pos vec.Vec3Float, yaw, pitch float64) error {
	ctx, span := c.start(ctx, "set_from_look")
	c.player = pos

	dir, ok := c.facing(yaw, pitch)
	if !ok {
		c.finish(span, "set_from_look", resultAmbiguous, ErrAmbiguousDirection)
		return ErrAmbiguousDirection
	}

	c.setFacing(ctx, dir)
	c.finish(span, "set_from_look", resultOK, nil)
	return nil
}

func (c *Controller) setFacing(ctx context.Context, dir region.Direction) {
	origin := dir.Offset(c.player, c.opts.SetDistance)

	proto := c.region
	if proto == nil {
		proto = region.NewDefault(c.opts.DefaultSize)
	}

	next := proto.CopyUsing(origin, dir.Axis)
	c.replace(ctx, "set", next)
	infof(c.notifier, MsgLocked, next)
}

// Shift сдвигает регион вдоль оси
func (c *Controller) Shift(ctx context.Context, axis region.Axis, amount float64) error {
	ctx, span := c.start(ctx, "shift")
	if c.region == nil {
		c.finish(span, "shift", resultError, ErrNoRegion)
		return ErrNoRegion
	}

	before := c.region.Origin()
	c.region.ShiftOriginCoord(axis, amount)
	if c.region.Origin() == before {
		c.finish(span, "shift", resultNoop, nil)
		return nil
	}

	c.factory = nil
	c.publishRegion(ctx, "shift")
	infof(c.notifier, MsgShifted, c.region)
	c.finish(span, "shift", resultOK, nil)
	return nil
}

// ShiftFromLook сдвигает регион на amount блоков в направлении взгляда.
// Без региона, или если плоскость смотрит вдоль другой оси, регион
// ставится заново перед игроком.
func (c *Controller) ShiftFromLook(ctx context.Context, amount, yaw, pitch float64) error {
	ctx, span := c.start(ctx, "shift_from_look")

	dir, ok := c.facing(yaw, pitch)
	if !ok {
		c.finish(span, "shift_from_look", resultAmbiguous, ErrAmbiguousDirection)
		return ErrAmbiguousDirection
	}

	if c.region == nil || (c.region.Type() == region.TypePlane && c.region.Axis() != dir.Axis) {
		c.setFacing(ctx, dir)
		c.finish(span, "shift_from_look", resultOK, nil)
		return nil
	}

	err := c.Shift(ctx, dir.Axis, amount*float64(dir.Sign))
	c.finish(span, "shift_from_look", resultOf(err), err)
	return err
}

// Expand меняет размер региона вдоль оси (amount < 0 уменьшает).
// Возвращает true, если размер действительно изменился.
func (c *Controller) Expand(ctx context.Context, axis region.Axis, amount float64) (bool, error) {
	ctx, span := c.start(ctx, "expand")
	if c.region == nil {
		c.finish(span, "expand", resultError, ErrNoRegion)
		return false, ErrNoRegion
	}
	if !c.region.CanAdjustAlongAxis(true, axis) {
		err := fmt.Errorf("%w %s: %s", ErrCannotAdjust, axis, c.region.Type())
		c.finish(span, "expand", resultError, err)
		return false, err
	}

	if !c.region.Expand(axis, amount) {
		c.finish(span, "expand", resultNoop, nil)
		return false, nil
	}

	c.factory = nil
	c.publishRegion(ctx, "expand")
	infof(c.notifier, MsgResized, c.region)
	c.finish(span, "expand", resultOK, nil)
	return true, nil
}

// ChangeAxis переориентирует регион вдоль другой оси
func (c *Controller) ChangeAxis(ctx context.Context, axis region.Axis) error {
	ctx, span := c.start(ctx, "axis")
	if c.region == nil {
		c.finish(span, "axis", resultError, ErrNoRegion)
		return ErrNoRegion
	}
	if c.region.Axis() == axis {
		c.finish(span, "axis", resultNoop, nil)
		return nil
	}

	next := c.region.CopyUsing(c.region.Origin(), axis)
	c.replace(ctx, "axis", next)
	infof(c.notifier, MsgLocked, next)
	c.finish(span, "axis", resultOK, nil)
	return nil
}

// Convert заменяет регион регионом другого типа. Последовательные
// вызовы используют одну фабрику, поэтому цепочка преобразований не теряет
// размеры. Без активного региона за основу берётся прототип по умолчанию,
// перенесённый в точку reference.
func (c *Controller) Convert(ctx context.Context, t region.Type, reference vec.Vec3Float) (region.Region, error) {
	ctx, span := c.start(ctx, "convert")
	span.SetAttributes(attribute.String("region.target_type", t.String()))

	if c.factory == nil {
		proto, userDefined := c.region, c.userDefined
		if proto == nil {
			proto, userDefined = region.NewDefault(c.opts.DefaultSize), false
		}
		c.factory = region.NewFactory(proto, userDefined, reference)
	}

	next, err := c.factory.Convert(t)
	if err != nil {
		err = fmt.Errorf("преобразование в %s: %w", t, err)
		c.finish(span, "convert", resultError, err)
		return nil, err
	}

	if next == nil {
		c.clear(ctx, false)
		c.finish(span, "convert", resultOK, nil)
		return nil, nil
	}

	factory := c.factory
	c.replace(ctx, "convert", next)
	c.factory = factory
	infof(c.notifier, MsgLocked, next)
	c.finish(span, "convert", resultOK, nil)
	return next, nil
}

// Clear снимает регион. silent подавляет сообщение игроку.
// Возвращает false, если региона не было.
func (c *Controller) Clear(ctx context.Context, silent bool) bool {
	ctx, span := c.start(ctx, "clear")
	cleared := c.clear(ctx, silent)
	result := resultOK
	if !cleared {
		result = resultNoop
	}
	c.finish(span, "clear", result, nil)
	return cleared
}

func (c *Controller) clear(ctx context.Context, silent bool) bool {
	c.factory = nil
	if c.region == nil {
		return false
	}

	c.region = nil
	c.userDefined = false
	c.metrics.SetActiveRegion(region.TypeNone.String(), 0)
	c.publish(ctx, eventbus.EventRegionCleared, eventbus.PriorityHigh,
		snapshotOf(c.session, "clear", nil, c.mode, false))

	if !silent {
		infof(c.notifier, MsgUnlocked)
	}
	return true
}

// IsInside - точка внутри активного региона
func (c *Controller) IsInside(p vec.Vec3Float) bool {
	return c.region != nil && c.region.IsInside(p.X, p.Y, p.Z)
}

// CanBuild - режим разрешает строить в точке. Без региона разрешено всё.
func (c *Controller) CanBuild(p vec.Vec3Float) bool {
	if c.region == nil {
		return true
	}
	return c.mode.Permits(c.IsInside(p))
}

// SetMode устанавливает режим
func (c *Controller) SetMode(ctx context.Context, m mode.Mode) error {
	ctx, span := c.start(ctx, "mode")
	if !m.Valid() {
		err := fmt.Errorf("неизвестный режим %s", m)
		c.finish(span, "mode", resultError, err)
		return err
	}

	c.setMode(ctx, m)
	c.finish(span, "mode", resultOK, nil)
	return nil
}

// CycleMode переключает режим по кругу и возвращает новый
func (c *Controller) CycleMode(ctx context.Context) mode.Mode {
	ctx, span := c.start(ctx, "cycle_mode")
	next := c.mode.Next()
	c.setMode(ctx, next)
	c.finish(span, "cycle_mode", resultOK, nil)
	return next
}

// setMode применяет уже проверенный режим
func (c *Controller) setMode(ctx context.Context, m mode.Mode) {
	prev := c.mode
	c.mode = m
	c.publish(ctx, eventbus.EventModeChanged, eventbus.PriorityNormal,
		ModeSnapshot{Session: c.session, Previous: prev.String(), Mode: m.String()})
	infof(c.notifier, MsgModeFormat, m)
}

// UpdatePlayerPosition запоминает позицию игрока и снимает регион, если
// игрок ушёл от него дальше MaxDistance. Возвращает true, если регион снят.
func (c *Controller) UpdatePlayerPosition(ctx context.Context, p vec.Vec3Float) bool {
	c.player = p
	if c.region == nil {
		return false
	}

	distance := region.Distance(c.region, p)
	if distance <= c.opts.MaxDistance {
		return false
	}

	ctx, span := c.start(ctx, "auto_unlock")
	span.SetAttributes(attribute.Float64("region.distance", distance))
	c.logger.Info("игрок в %.1f блоках от региона %s, регион снят", distance, c.region)
	c.clear(ctx, true)
	errorf(c.notifier, MsgTooFar, region.Whole.Format(c.opts.MaxDistance))
	c.finish(span, "auto_unlock", resultOK, nil)
	return true
}

// NotifyDenied сообщает игроку о заблокированном клике
func (c *Controller) NotifyDenied(ctx context.Context, in click.Interaction, d click.Decision) {
	infof(c.notifier, MsgMisclick)
	c.publish(ctx, eventbus.EventClickDenied, eventbus.PriorityLow, DeniedSnapshot{
		Session:     c.session,
		Interaction: in,
		Decision:    d,
		Mode:        c.mode.String(),
	})
}

// replace подменяет активный регион новым экземпляром
func (c *Controller) replace(ctx context.Context, action string, r region.Region) {
	c.region = r
	c.userDefined = true
	c.factory = nil
	c.publishRegion(ctx, action)
}

func (c *Controller) publishRegion(ctx context.Context, action string) {
	c.metrics.SetActiveRegion(c.region.Type().String(), c.region.Size())
	c.publish(ctx, eventbus.EventRegionUpdated, eventbus.PriorityHigh,
		snapshotOf(c.session, action, c.region, c.mode, c.userDefined))
	c.logger.Debug("%s: %s", action, c.region)
}

func (c *Controller) publish(ctx context.Context, eventType string, priority int, payload interface{}) {
	if c.bus == nil {
		return
	}
	env, err := eventbus.NewEnvelope(eventSource, eventType, payload)
	if err != nil {
		c.logger.Error("не удалось собрать событие %s: %v", eventType, err)
		return
	}
	env.Priority = priority
	env.Metadata["session"] = c.session
	if err := c.bus.Publish(ctx, env); err != nil {
		c.logger.Warn("событие %s не опубликовано: %v", eventType, err)
	}
}

func (c *Controller) facing(yaw, pitch float64) (region.Direction, bool) {
	dir, ok := region.FromYawPitch(yaw, pitch)
	if !ok {
		errorf(c.notifier, MsgAmbiguous)
		c.logger.Debug("неоднозначное направление: yaw=%.1f pitch=%.1f", yaw, pitch)
	}
	return dir, ok
}

func (c *Controller) start(ctx context.Context, command string) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, "controller."+command,
		trace.WithAttributes(attribute.String("session", c.session)))
}

func (c *Controller) finish(span trace.Span, command, result string, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.String("command.result", result))
	span.End()
	c.metrics.ObserveCommand(command, result)
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, ErrAmbiguousDirection):
		return resultAmbiguous
	default:
		return resultError
	}
}
