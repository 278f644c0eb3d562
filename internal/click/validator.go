package click

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/annel0/buildregion/internal/logging"
	"github.com/annel0/buildregion/internal/metrics"
	"github.com/annel0/buildregion/internal/mode"
	"github.com/annel0/buildregion/internal/observability"
	"github.com/annel0/buildregion/internal/region"
	"github.com/annel0/buildregion/internal/vec"
	"github.com/annel0/buildregion/internal/world"
)

// RegionSource отдаёт активный регион и режим
type RegionSource interface {
	// ActiveRegion возвращает активный регион или nil
	ActiveRegion() region.Region
	Mode() mode.Mode
}

// DenyNotifier получает уведомление о заблокированном клике
type DenyNotifier interface {
	NotifyDenied(ctx context.Context, in Interaction, d Decision)
}

// DenyNotifierFunc позволяет использовать функцию как DenyNotifier
type DenyNotifierFunc func(ctx context.Context, in Interaction, d Decision)

func (f DenyNotifierFunc) NotifyDenied(ctx context.Context, in Interaction, d Decision) {
	f(ctx, in, d)
}

// Validator решает, разрешён ли клик игрока с учётом региона и режима.
// Работает в одном потоке с контроллером и не берёт блокировок.
type Validator struct {
	world    world.Reader
	source   RegionSource
	notifier DenyNotifier
	metrics  *metrics.Metrics
	logger   *logging.Logger
	tracer   trace.Tracer
}

// NewValidator создаёт валидатор. notifier и m могут быть nil.
func NewValidator(w world.Reader, source RegionSource, notifier DenyNotifier, m *metrics.Metrics) *Validator {
	return &Validator{
		world:    w,
		source:   source,
		notifier: notifier,
		metrics:  m,
		logger:   logging.GetClickLogger(),
		tracer:   observability.Tracer(),
	}
}

// TryInteraction проверяет клик. Функция тотальна: на любой вход
// возвращается решение. При запрете уведомитель вызывается ровно один раз.
func (v *Validator) TryInteraction(ctx context.Context, in Interaction) Decision {
	ctx, span := v.tracer.Start(ctx, "click.TryInteraction",
		trace.WithAttributes(
			attribute.String("click.kind", in.Kind.String()),
			attribute.Int("click.face", in.Face),
		))
	defer span.End()

	d := v.decide(in)

	span.SetAttributes(
		attribute.Bool("click.allowed", d.Allowed),
		attribute.String("click.reason", d.Reason),
	)
	v.metrics.ObserveClick(in.Kind.String(), d.Allowed)

	if !d.Allowed {
		v.debugf("клик %s по %v запрещён: цель %v", in.Kind, in.Pos, d.Effective)
		if v.notifier != nil {
			v.notifier.NotifyDenied(ctx, in, d)
		}
	}
	return d
}

func (v *Validator) decide(in Interaction) Decision {
	target := v.world.GetBlock(in.Pos)
	interactive := in.Kind == Place && consumesRightClick(target, in.Held)

	// клетку установки считаем до любых ранних разрешений
	effective := in.Pos
	if in.Kind == Place && !interactive {
		effective = v.ResolvePlacement(in, target)
	}
	allow := func(reason string) Decision {
		return Decision{Allowed: true, Reason: reason, Effective: effective}
	}

	r := v.source.ActiveRegion()
	if r == nil {
		return allow(ReasonNoRegion)
	}
	m := v.source.Mode()
	if m == mode.Display {
		return allow(ReasonDisplay)
	}

	switch in.Kind {
	case Destroy:
		if destroyExcluded[target.ID] {
			return allow(ReasonExcluded)
		}
	default:
		if interactive {
			return allow(ReasonInteractive)
		}
		if heldExcluded(in.Held) {
			return allow(ReasonExcludedItem)
		}
	}

	inside := region.IsInsideBlock(r, effective)
	if m.Permits(inside) {
		return Decision{Allowed: true, Reason: ReasonPermitted, Effective: effective, Checked: true}
	}
	return Decision{Allowed: false, Reason: ReasonMisclick, Effective: effective, Checked: true}
}

// ResolvePlacement возвращает клетку, в которую встанет блок при клике
// по грани in.Face блока target
func (v *Validator) ResolvePlacement(in Interaction, target world.Block) vec.Vec3 {
	if replacedInPlace(target, in.Face, in.Held) {
		return in.Pos
	}
	if !region.ValidFace(in.Face) {
		v.warnf("неизвестная грань %d при клике по %v, проверяется сам блок", in.Face, in.Pos)
		return in.Pos
	}
	return region.FromFace(in.Face).Neighbor(in.Pos)
}

func (v *Validator) debugf(format string, args ...interface{}) {
	if v.logger != nil {
		v.logger.Debug(format, args...)
	}
}

func (v *Validator) warnf(format string, args ...interface{}) {
	if v.logger != nil {
		v.logger.Warn(format, args...)
		return
	}
	logging.Warn(format, args...)
}
