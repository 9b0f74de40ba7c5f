package sim

import (
	"strings"
	"time"

	"github.com/google/shlex"

	"offtime-go/errcode"
)

// Shorthand gaps used by scripts.
const (
	TapGap  = 150 * time.Millisecond // a half-press of the tail switch
	RestGap = 5 * time.Second        // a real switch-off
)

// Step is one parsed script action.
type Step struct {
	On  bool
	Dur time.Duration
}

// ParseScript tokenises a power-event script. Tokens:
//
//	on:DUR   power for DUR
//	off:DUR  no power for DUR
//	tap      off:150ms
//	rest     off:5s
//
// Shell quoting and # comments are honoured.
func ParseScript(src string) ([]Step, error) {
	toks, err := shlex.Split(src)
	if err != nil {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "sim.ParseScript", Err: err}
	}
	steps := make([]Step, 0, len(toks))
	for _, tok := range toks {
		switch strings.ToLower(tok) {
		case "tap":
			steps = append(steps, Step{Dur: TapGap})
			continue
		case "rest":
			steps = append(steps, Step{Dur: RestGap})
			continue
		}
		verb, arg, ok := strings.Cut(tok, ":")
		if !ok {
			return nil, &errcode.E{C: errcode.InvalidParams, Op: "sim.ParseScript", Msg: "bad token " + tok}
		}
		d, err := time.ParseDuration(arg)
		if err != nil || d < 0 {
			return nil, &errcode.E{C: errcode.InvalidParams, Op: "sim.ParseScript", Msg: "bad duration in " + tok, Err: err}
		}
		switch strings.ToLower(verb) {
		case "on":
			steps = append(steps, Step{On: true, Dur: d})
		case "off":
			steps = append(steps, Step{Dur: d})
		default:
			return nil, &errcode.E{C: errcode.InvalidParams, Op: "sim.ParseScript", Msg: "unknown verb " + verb}
		}
	}
	return steps, nil
}

// Run executes a script and returns one Boot per "on" step.
func (d *Device) Run(src string) ([]Boot, error) {
	steps, err := ParseScript(src)
	if err != nil {
		return nil, err
	}
	var boots []Boot
	for _, s := range steps {
		if !s.On {
			d.Off(s.Dur)
			continue
		}
		b, err := d.On(s.Dur)
		if err != nil {
			return boots, err
		}
		boots = append(boots, b)
	}
	return boots, nil
}
