package sim

import (
	"context"
	"fmt"

	"github.com/annel0/buildregion/internal/click"
	"github.com/annel0/buildregion/internal/mode"
	"github.com/annel0/buildregion/internal/region"
	"github.com/annel0/buildregion/internal/world/block"
)

// Result - итог одного шага сценария
type Result struct {
	Step     int
	Op       string
	Outcome  string // allow, deny, ok, error
	Detail   string
	Err      error
	Mismatch bool // Исход не совпал с Step.Expect
}

// Run выполняет сценарий по шагам. Ошибки команд не прерывают сценарий,
// а попадают в Result. Если исход какого-либо шага не совпал с ожидаемым,
// возвращается ErrExpectation.
func (s *Simulator) Run(ctx context.Context, script *Script) ([]Result, error) {
	start := s.SurfaceSpawn()
	if script.Start != nil {
		start = *script.Start
	}
	s.Controller.UpdatePlayerPosition(ctx, start)

	name := script.Name
	if name == "" {
		name = "без имени"
	}
	s.logger.Info("▶️  Сценарий %q: %d шагов, старт %v", name, len(script.Steps), start)
	fmt.Fprintf(s.out, "scenario %q, player at %v\n", name, start)

	results := make([]Result, 0, len(script.Steps))
	mismatches := 0
	for i, step := range script.Steps {
		res := s.runStep(ctx, step)
		res.Step = i + 1
		res.Op = step.Op
		if step.Expect != "" && step.Expect != res.Outcome {
			res.Mismatch = true
			mismatches++
		}
		s.report(res, step.Expect)
		results = append(results, res)
	}

	s.Metrics.UpdateProcess()
	if mismatches > 0 {
		return results, fmt.Errorf("%w: %d из %d шагов", ErrExpectation, mismatches, len(results))
	}
	return results, nil
}

func (s *Simulator) report(res Result, expect string) {
	mark := "✅"
	if res.Mismatch {
		mark = "❌"
	}
	line := fmt.Sprintf("%s #%d %s -> %s", mark, res.Step, res.Op, res.Outcome)
	if res.Detail != "" {
		line += ": " + res.Detail
	}
	if res.Err != nil {
		line += fmt.Sprintf(" (%v)", res.Err)
	}
	if res.Mismatch {
		line += fmt.Sprintf(" [ожидалось %s]", expect)
	}
	fmt.Fprintln(s.out, line)
}

func (s *Simulator) runStep(ctx context.Context, step Step) Result {
	c := s.Controller

	switch step.Op {
	case OpLook:
		s.yaw, s.pitch = step.Yaw, step.Pitch
		detail := fmt.Sprintf("yaw=%g pitch=%g", s.yaw, s.pitch)
		if dir, ok := region.FromYawPitch(s.yaw, s.pitch); ok {
			detail += " facing " + dir.String()
		}
		return done(detail)

	case OpMove:
		if c.UpdatePlayerPosition(ctx, *step.Pos) {
			return done(fmt.Sprintf("%v, region auto-unlocked", *step.Pos))
		}
		return done(step.Pos.String())

	case OpSet:
		if step.Region != nil {
			r, err := step.Region.Build()
			if err != nil {
				return failed(err)
			}
			c.Set(ctx, r)
			return done(r.String())
		}
		return s.regionResult(c.SetFromLook(ctx, c.PlayerPosition(), s.yaw, s.pitch))

	case OpShift:
		if step.Axis == "" {
			return s.regionResult(c.ShiftFromLook(ctx, step.Amount, s.yaw, s.pitch))
		}
		axis, err := region.ParseAxis(step.Axis)
		if err != nil {
			return failed(err)
		}
		return s.regionResult(c.Shift(ctx, axis, step.Amount))

	case OpExpand:
		axis, err := region.ParseAxis(step.Axis)
		if err != nil {
			return failed(err)
		}
		changed, err := c.Expand(ctx, axis, step.Amount)
		if err == nil && !changed {
			return done("unchanged")
		}
		return s.regionResult(err)

	case OpAxis:
		axis, err := region.ParseAxis(step.Axis)
		if err != nil {
			return failed(err)
		}
		return s.regionResult(c.ChangeAxis(ctx, axis))

	case OpConvert:
		t, err := region.ParseType(step.Type)
		if err != nil {
			return failed(err)
		}
		_, err = c.Convert(ctx, t, c.PlayerPosition())
		return s.regionResult(err)

	case OpClear:
		if !c.Clear(ctx, step.Silent) {
			return done("no region")
		}
		return done("cleared")

	case OpMode:
		if step.Mode == "" {
			return done(c.CycleMode(ctx).String())
		}
		m, err := mode.Parse(step.Mode)
		if err != nil {
			return failed(err)
		}
		if err := c.SetMode(ctx, m); err != nil {
			return failed(err)
		}
		return done(m.String())

	case OpHold:
		if step.Item == "" {
			s.held = block.Empty()
			return done(s.held.String())
		}
		id, err := block.ParseItem(step.Item)
		if err != nil {
			return failed(err)
		}
		s.held = block.ItemStack{ID: id, Damage: step.Damage, Count: 1}
		return done(s.held.String())

	case OpPlace, OpDestroy:
		return s.interact(ctx, step)
	}

	return failed(fmt.Errorf("неизвестная операция %q", step.Op))
}

func (s *Simulator) interact(ctx context.Context, step Step) Result {
	in := click.Interaction{Kind: click.Destroy, Pos: *step.Block, Face: step.Face, Held: s.held}
	if step.Op == OpPlace {
		in.Kind = click.Place
	}

	target := s.World.GetBlock(in.Pos)
	d := s.Validator.TryInteraction(ctx, in)
	if !d.Allowed {
		return Result{Outcome: ExpectDeny, Detail: fmt.Sprintf("%s at %v -> %v", target, in.Pos, d.Effective)}
	}

	detail := fmt.Sprintf("%s at %v (%s)", target, in.Pos, d.Reason)
	switch in.Kind {
	case click.Destroy:
		s.World.Destroy(in.Pos)
	case click.Place:
		// Использование интерактивного блока ничего не ставит
		if d.Reason == click.ReasonInteractive {
			break
		}
		placed, err := s.World.Place(d.Effective, in.Face, s.held)
		if err != nil {
			detail += fmt.Sprintf(", nothing placed: %v", err)
			break
		}
		detail = fmt.Sprintf("%s placed at %v", placed, d.Effective)
	}
	return Result{Outcome: ExpectAllow, Detail: detail}
}

func (s *Simulator) regionResult(err error) Result {
	if err != nil {
		return failed(err)
	}
	if r := s.Controller.ActiveRegion(); r != nil {
		return done(r.String())
	}
	return done("no region")
}

func done(detail string) Result {
	return Result{Outcome: ExpectOK, Detail: detail}
}

func failed(err error) Result {
	return Result{Outcome: ExpectError, Err: err}
}

// Mismatches возвращает шаги, исход которых не совпал с ожидаемым
func Mismatches(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.Mismatch {
			out = append(out, r)
		}
	}
	return out
}
