package lamp

import (
	"context"

	"offtime-go/errcode"
	"offtime-go/types"
	"offtime-go/x/logx"
	"offtime-go/x/mathx"
)

const tag = "lamp"

// Decision is the outcome of one boot's mode selection.
type Decision struct {
	Class types.Class
	Prev  uint8 // mode read back from the previous boot (possibly garbage)
	Mode  uint8 // mode dispatched this boot, always < mode count
	Spec  types.ModeSpec
}

// NextMode applies the boot transition to the previously persisted mode.
//
// FullReset with ForgetOnReset restarts at 0; FullReset with
// RememberOnReset keeps prev; ShortPress advances by one. The result is
// then normalised into [0, count), which also absorbs garbage values.
func NextMode(prev uint8, class types.Class, count uint8, mem types.MemoryPolicy) uint8 {
	mode := prev
	if class != types.ShortPress && mem != types.RememberOnReset {
		mode = 0
	}
	if class == types.ShortPress {
		mode++ // 255 wraps to 0 here, which normalisation would produce anyway
	}
	return mathx.WrapZero(mode, count)
}

// Controller runs the per-boot state machine over a profile's modes.
type Controller struct {
	p         *types.Profile
	env       Env
	store     Store
	sensor    *Sensor
	behaviors []Behavior
}

// New prepares a controller. It fails only on a profile it cannot dispatch:
// no modes, too many modes, an unknown ramp curve, or a missing store.
func New(p *types.Profile, env Env) (*Controller, error) {
	if p == nil || len(p.Modes) == 0 || len(p.Modes) > 255 {
		return nil, &errcode.E{C: errcode.InvalidProfile, Op: "lamp.New", Msg: "mode count out of range"}
	}
	if env.Out == nil || env.Mem == nil {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "lamp.New", Msg: "output and volatile memory are required"}
	}
	if env.Sleep == nil {
		env.Sleep = RealSleeper{}
	}
	store := env.Store
	if p.Persist == types.PersistVolatile {
		store = VolatileStore{Mem: env.Mem}
	}
	if store == nil {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "lamp.New", Msg: "profile persists to eeprom but no store given"}
	}
	bs, err := BuildBehaviors(p)
	if err != nil {
		return nil, err
	}
	return &Controller{
		p:         p,
		env:       env,
		store:     store,
		sensor:    NewSensor(env.Mem),
		behaviors: bs,
	}, nil
}

// Boot runs one power-on cycle: sense and re-arm, load, advance, persist,
// dispatch. On hardware it never returns. Hosted, it returns
// errcode.PowerLost when the Sleeper reports the power window closed.
func (c *Controller) Boot(ctx context.Context) error {
	class := c.sensor.Sense()
	prev := c.load(ctx)
	mode := NextMode(prev, class, c.p.Count(), c.p.Memory)
	c.persist(ctx, mode)

	d := Decision{Class: class, Prev: prev, Mode: mode, Spec: c.p.Modes[mode]}
	logx.Info(tag, "boot", "class", class, "prev", prev, "mode", mode, "kind", d.Spec.Kind)
	if c.env.OnDecision != nil {
		c.env.OnDecision(d)
	}
	return c.behaviors[mode].Run(ctx, &c.env)
}

// load returns the previous mode, or 0 when the store cannot be read.
func (c *Controller) load(ctx context.Context) uint8 {
	if err := c.store.WaitReady(ctx); err != nil {
		logx.Warn(tag, "store not ready, assuming mode 0", "err", err)
		return 0
	}
	v, err := c.store.ReadByte(c.p.ModeAddr)
	if err != nil {
		logx.Warn(tag, "mode read failed, assuming mode 0", "err", err)
		return 0
	}
	return v
}

// persist writes the mode before dispatch. A failure is logged only: the
// light still comes on, and the next boot sees the older value.
func (c *Controller) persist(ctx context.Context, mode uint8) {
	if err := c.store.WaitReady(ctx); err != nil {
		logx.Warn(tag, "store not ready, mode not saved", "err", err)
		return
	}
	if err := c.store.WriteByte(c.p.ModeAddr, mode); err != nil {
		logx.Warn(tag, "mode write failed", "err", err)
	}
}

// Boot builds a controller for p and runs one boot cycle.
func Boot(ctx context.Context, p *types.Profile, env Env) error {
	c, err := New(p, env)
	if err != nil {
		return err
	}
	return c.Boot(ctx)
}
