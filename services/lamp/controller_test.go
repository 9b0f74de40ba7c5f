package lamp

import (
	"context"
	"testing"

	"pgregory.net/rapid"

	"offtime-go/errcode"
	"offtime-go/types"
	"offtime-go/x/logx"
)

const modeAddr = 0x10

func nanjg6(mem types.MemoryPolicy) *types.Profile {
	return &types.Profile{
		Name: "test6",
		Modes: []types.ModeSpec{
			types.Fixed(0xFF), types.Fixed(0x40), types.Fixed(0x10), types.Fixed(0x04),
			types.Ramp(), types.Resume(),
		},
		Memory:   mem,
		Persist:  types.PersistEEPROM,
		ModeAddr: modeAddr,
		Ramp:     types.RampSpec{Curve: "sin_squared_half", Traversal: types.RiseFall, StepMs: 30},
	}
}

func quiet(t testing.TB) {
	old := logx.Output
	logx.Output = func(string) {}
	t.Cleanup(func() { logx.Output = old })
}

type bootResult struct {
	d     Decision
	err   error
	out   *fakeOut
	mem   *fakeMem
	store *fakeStore
}

// bootOnce runs one boot with the given flag and persisted mode and an
// immediate power loss after dispatch.
func bootOnce(p *types.Profile, flag, persisted uint8) bootResult {
	r := bootResult{out: &fakeOut{}, mem: &fakeMem{}, store: newFakeStore()}
	r.mem[SlotDecay] = flag
	r.store.bytes[modeAddr] = persisted
	r.err = Boot(context.Background(), p, Env{
		Out: r.out, Mem: r.mem, Store: r.store, Sleep: &budgetSleeper{},
		OnDecision: func(d Decision) { r.d = d },
	})
	return r
}

func TestNextMode_Table(t *testing.T) {
	type C struct {
		prev  uint8
		class types.Class
		mem   types.MemoryPolicy
		want  uint8
	}
	for _, c := range []C{
		{0, types.ShortPress, types.ForgetOnReset, 1},
		{5, types.ShortPress, types.ForgetOnReset, 0},
		{5, types.ShortPress, types.RememberOnReset, 0},
		{2, types.FullReset, types.ForgetOnReset, 0},
		{2, types.FullReset, types.RememberOnReset, 2},
		{200, types.FullReset, types.RememberOnReset, 0},
		{255, types.ShortPress, types.RememberOnReset, 0},
		{6, types.ShortPress, types.RememberOnReset, 0},
	} {
		if got := NextMode(c.prev, c.class, 6, c.mem); got != c.want {
			t.Fatalf("NextMode(%d, %s, 6, %s) = %d, want %d", c.prev, c.class, c.mem, got, c.want)
		}
	}
}

func TestNextMode_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.Uint8Range(1, 16).Draw(t, "count")
		m := rapid.Uint8Range(0, count-1).Draw(t, "m")

		if got := NextMode(m, types.ShortPress, count, types.ForgetOnReset); got != (m+1)%count {
			t.Fatalf("short press from %d of %d = %d", m, count, got)
		}
		if got := NextMode(m, types.ShortPress, count, types.RememberOnReset); got != (m+1)%count {
			t.Fatalf("short press (memory) from %d of %d = %d", m, count, got)
		}
		if got := NextMode(m, types.FullReset, count, types.ForgetOnReset); got != 0 {
			t.Fatalf("full reset without memory from %d = %d", m, got)
		}
		if got := NextMode(m, types.FullReset, count, types.RememberOnReset); got != m {
			t.Fatalf("full reset with memory from %d = %d", m, got)
		}
		garbage := rapid.Uint8().Draw(t, "garbage")
		class := rapid.SampledFrom([]types.Class{types.ShortPress, types.FullReset}).Draw(t, "class")
		if got := NextMode(garbage, class, count, types.RememberOnReset); got >= count {
			t.Fatalf("NextMode(%d) = %d escapes [0,%d)", garbage, got, count)
		}
	})
}

func TestBoot_PersistsNextMode(t *testing.T) {
	quiet(t)
	rapid.Check(t, func(t *rapid.T) {
		m := rapid.Uint8Range(0, 5).Draw(t, "m")
		r := bootOnce(nanjg6(types.ForgetOnReset), 0, m)
		if got := r.store.bytes[modeAddr]; got != (m+1)%6 {
			t.Fatalf("persisted %d after short press from %d", got, m)
		}
		flag := rapid.Uint8Range(1, 255).Draw(t, "flag")
		r = bootOnce(nanjg6(types.ForgetOnReset), flag, m)
		if got := r.store.bytes[modeAddr]; got != 0 {
			t.Fatalf("persisted %d after full reset (forget) from %d", got, m)
		}
		r = bootOnce(nanjg6(types.RememberOnReset), flag, m)
		if got := r.store.bytes[modeAddr]; got != m {
			t.Fatalf("persisted %d after full reset (remember) from %d", got, m)
		}
	})
}

func TestBoot_Scenarios(t *testing.T) {
	quiet(t)

	// A: mode 3 of 6, short press -> 4, ramp.
	r := bootOnce(nanjg6(types.ForgetOnReset), 0, 3)
	if r.store.bytes[modeAddr] != 4 || r.d.Spec.Kind != types.ModeRamp {
		t.Fatalf("A: mode=%d kind=%s", r.store.bytes[modeAddr], r.d.Spec.Kind)
	}
	if lvl, _ := r.out.last(); lvl != r.mem[SlotLevel] {
		t.Fatalf("A: output %d, volatile level %d", lvl, r.mem[SlotLevel])
	}

	// B: mode 5 of 6, short press wraps to 0, which is full output.
	r = bootOnce(nanjg6(types.ForgetOnReset), 0, 5)
	if lvl, _ := r.out.last(); r.store.bytes[modeAddr] != 0 || r.d.Mode != 0 || lvl != 0xFF {
		t.Fatalf("B: mode=%d level=%#x", r.store.bytes[modeAddr], lvl)
	}

	// C: forget, mode 2, full reset -> 0, high level.
	r = bootOnce(nanjg6(types.ForgetOnReset), 0xA5, 2)
	if lvl, ok := r.out.last(); r.d.Mode != 0 || !ok || lvl != 0xFF {
		t.Fatalf("C: mode=%d level=%#x", r.d.Mode, lvl)
	}

	// D: remember, mode 2, full reset -> 2, low level.
	r = bootOnce(nanjg6(types.RememberOnReset), 0xA5, 2)
	if lvl, ok := r.out.last(); r.d.Mode != 2 || !ok || lvl != 0x10 {
		t.Fatalf("D: mode=%d level=%#x", r.d.Mode, lvl)
	}
}

func TestBoot_ResumeShowsVolatileLevel(t *testing.T) {
	quiet(t)
	out, mem, st := &fakeOut{}, &fakeMem{}, newFakeStore()
	st.bytes[modeAddr] = 4
	mem[SlotLevel] = 0x77
	err := Boot(context.Background(), nanjg6(types.ForgetOnReset), Env{Out: out, Mem: mem, Store: st, Sleep: &budgetSleeper{}})
	if errcode.Of(err) != errcode.PowerLost {
		t.Fatalf("err = %v", err)
	}
	if lvl, _ := out.last(); lvl != 0x77 || st.bytes[modeAddr] != 5 {
		t.Fatalf("resume: level=%#x mode=%d", lvl, st.bytes[modeAddr])
	}
}

func TestBoot_PersistsBeforeDispatch(t *testing.T) {
	quiet(t)
	st := newFakeStore()
	var writesAtDispatch = -1
	p := nanjg6(types.ForgetOnReset)
	_ = Boot(context.Background(), p, Env{
		Out: &fakeOut{}, Mem: &fakeMem{}, Store: st, Sleep: &budgetSleeper{},
		OnDecision: func(Decision) { writesAtDispatch = st.writes },
	})
	if writesAtDispatch != 1 {
		t.Fatalf("writes before dispatch = %d, want 1", writesAtDispatch)
	}
}

func TestBoot_StoreFaultsDegrade(t *testing.T) {
	var lines []string
	old := logx.Output
	logx.Output = func(s string) { lines = append(lines, s) }
	t.Cleanup(func() { logx.Output = old })

	// Unreadable store: previous mode assumed 0, short press -> 1.
	out, st := &fakeOut{}, newFakeStore()
	st.readErr = errBus
	var d Decision
	_ = Boot(context.Background(), nanjg6(types.ForgetOnReset), Env{
		Out: out, Mem: &fakeMem{}, Store: st, Sleep: &budgetSleeper{},
		OnDecision: func(x Decision) { d = x },
	})
	if d.Mode != 1 || st.bytes[modeAddr] != 1 {
		t.Fatalf("read fault: mode=%d stored=%d", d.Mode, st.bytes[modeAddr])
	}

	// Unwritable store: still dispatches.
	out, st = &fakeOut{}, newFakeStore()
	st.writeErr = errBus
	st.bytes[modeAddr] = 1
	_ = Boot(context.Background(), nanjg6(types.ForgetOnReset), Env{Out: out, Mem: &fakeMem{}, Store: st, Sleep: &budgetSleeper{}})
	if lvl, ok := out.last(); !ok || lvl != 0x10 {
		t.Fatalf("write fault: level=%#x ok=%v", lvl, ok)
	}

	// Store never ready.
	st = newFakeStore()
	st.readyErr = errcode.Timeout
	_ = Boot(context.Background(), nanjg6(types.ForgetOnReset), Env{Out: &fakeOut{}, Mem: &fakeMem{}, Store: st, Sleep: &budgetSleeper{}})
	if st.writes != 0 {
		t.Fatal("wrote to a store that never became ready")
	}

	warns := 0
	for _, l := range lines {
		if len(l) >= 4 && l[:4] == "WARN" {
			warns++
		}
	}
	if warns != 4 {
		t.Fatalf("got %d warnings, want 4: %v", warns, lines)
	}
}

func TestBoot_VolatilePersist(t *testing.T) {
	quiet(t)
	p := nanjg6(types.ForgetOnReset)
	p.Persist = types.PersistVolatile
	mem := &fakeMem{}
	mem[SlotMode] = 2
	// No EEPROM at all.
	if err := Boot(context.Background(), p, Env{Out: &fakeOut{}, Mem: mem, Sleep: &budgetSleeper{}}); errcode.Of(err) != errcode.PowerLost {
		t.Fatalf("err = %v", err)
	}
	if mem[SlotMode] != 3 {
		t.Fatalf("volatile mode = %d, want 3", mem[SlotMode])
	}
}

func TestNew_Rejects(t *testing.T) {
	env := Env{Out: &fakeOut{}, Mem: &fakeMem{}, Store: newFakeStore()}

	if _, err := New(&types.Profile{}, env); errcode.Of(err) != errcode.InvalidProfile {
		t.Fatalf("empty profile: %v", err)
	}
	p := nanjg6(types.ForgetOnReset)
	p.Ramp.Curve = "missing"
	if _, err := New(p, env); errcode.Of(err) != errcode.UnknownCurve {
		t.Fatalf("unknown curve: %v", err)
	}
	if _, err := New(nanjg6(types.ForgetOnReset), Env{Out: &fakeOut{}, Mem: &fakeMem{}}); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("missing store: %v", err)
	}
	if _, err := New(nanjg6(types.ForgetOnReset), Env{Mem: &fakeMem{}, Store: newFakeStore()}); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("missing output: %v", err)
	}
}
