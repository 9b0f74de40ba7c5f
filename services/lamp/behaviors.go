package lamp

import (
	"context"
	"time"

	"offtime-go/curves"
	"offtime-go/errcode"
	"offtime-go/types"
	"offtime-go/x/ramp"
)

// idleTick is how often an idle mode wakes to notice power loss on a host.
const idleTick = time.Second

// Behavior is what a mode does once dispatched. Run does not return while
// power is present.
type Behavior interface {
	Run(ctx context.Context, env *Env) error
}

// BehaviorFunc adapts a function to Behavior.
type BehaviorFunc func(ctx context.Context, env *Env) error

func (f BehaviorFunc) Run(ctx context.Context, env *Env) error { return f(ctx, env) }

// BuildBehaviors returns one behaviour per mode of p, indexed by mode.
func BuildBehaviors(p *types.Profile) ([]Behavior, error) {
	out := make([]Behavior, len(p.Modes))
	for i, m := range p.Modes {
		switch m.Kind {
		case types.ModeFixed:
			out[i] = FixedLevel(m.Level)
		case types.ModeResume:
			out[i] = ResumeLevel()
		case types.ModeRamp:
			table, ok := curves.Lookup(p.Ramp.Curve)
			if !ok || len(table) == 0 {
				return nil, &errcode.E{C: errcode.UnknownCurve, Op: "lamp.BuildBehaviors", Msg: p.Ramp.Curve}
			}
			out[i] = RampSelect(table, p.Ramp.Traversal, p.Ramp.Step())
		default:
			return nil, &errcode.E{C: errcode.InvalidProfile, Op: "lamp.BuildBehaviors", Msg: "unknown mode kind " + string(m.Kind)}
		}
	}
	return out, nil
}

// FixedLevel sets level once and idles.
func FixedLevel(level uint8) Behavior {
	return BehaviorFunc(func(ctx context.Context, env *Env) error {
		env.Out.Set(level)
		return idle(ctx, env)
	})
}

// ResumeLevel shows the level the ramp last recorded. If the ramp has not
// run since the capacitor last drained the byte is garbage and is shown as is.
func ResumeLevel() Behavior {
	return BehaviorFunc(func(ctx context.Context, env *Env) error {
		env.Out.Set(env.Mem.Load(SlotLevel))
		return idle(ctx, env)
	})
}

// RampSelect sweeps table, mirroring every level into SlotLevel so a short
// interruption locks in whatever was showing.
func RampSelect(table curves.Table, tr types.Traversal, step time.Duration) Behavior {
	return BehaviorFunc(func(ctx context.Context, env *Env) error {
		ramp.Walk(table, tr, step,
			func(d time.Duration) bool { return env.Sleep.Sleep(ctx, d) },
			func(level uint8) {
				env.Out.Set(level)
				env.Mem.Store(SlotLevel, level)
			})
		return errcode.PowerLost
	})
}

func idle(ctx context.Context, env *Env) error {
	for env.Sleep.Sleep(ctx, idleTick) {
	}
	return errcode.PowerLost
}
