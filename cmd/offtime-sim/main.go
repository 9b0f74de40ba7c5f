//go:build !(rp2040 || rp2350)

// Command offtime-sim replays a power-event script against a simulated light
// and prints what each boot chose.
//
//	offtime-sim -profile nanjg6 on:2s tap on:2s tap on:300ms tap on:5s rest on:1s
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"offtime-go/services/config"
	"offtime-go/sim"
	"offtime-go/types"
	"offtime-go/x/logx"
)

func main() {
	var (
		profile     = flag.String("profile", config.SelectedName, "embedded profile name")
		profileFile = flag.String("profile-file", "", "YAML profile (overrides -profile)")
		window      = flag.Duration("window", sim.DefaultWindow, "capacitor retention window")
		writeCycle  = flag.Duration("write-cycle", sim.DefaultWriteCycle, "EEPROM write cycle")
		seed        = flag.Uint64("seed", 1, "decay pattern seed")
		verbose     = flag.Bool("v", false, "show the controller's log lines")
		list        = flag.Bool("list", false, "list embedded profiles and exit")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] script...\n\nscript tokens: on:DUR off:DUR tap rest\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		names := config.Names()
		sort.Strings(names)
		for _, n := range names {
			fmt.Println(n)
		}
		return
	}

	logx.Output = func(string) {}
	if *verbose {
		logx.Output = func(line string) { fmt.Fprintln(os.Stderr, line) }
	}

	p, err := loadProfile(*profile, *profileFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "offtime-sim:", err)
		os.Exit(1)
	}
	script := strings.Join(flag.Args(), " ")
	if script == "" {
		flag.Usage()
		os.Exit(2)
	}

	d := sim.New(p, sim.Options{Window: *window, WriteCycle: *writeCycle, Seed: *seed})
	boots, err := d.Run(script)
	for _, b := range boots {
		printBoot(b)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "offtime-sim:", err)
		os.Exit(1)
	}
	fmt.Printf("persisted mode %d after %v\n", d.PersistedMode(), d.Clock.Now())
}

func loadProfile(name, file string) (*types.Profile, error) {
	if file != "" {
		return config.LoadYAML(file)
	}
	return config.Lookup(name)
}

func printBoot(b sim.Boot) {
	x := b.Decision
	fmt.Printf("t=%-8v hold=%-7v %-11s prev=%-3d mode=%d %-6s level=0x%02x",
		b.At.Round(time.Millisecond), b.Hold, x.Class, x.Prev, x.Mode, x.Spec.Kind, b.Level)
	if x.Spec.Kind == types.ModeRamp {
		fmt.Printf(" steps=%d", b.Writes)
	}
	fmt.Println()
}
