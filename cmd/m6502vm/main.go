// Command m6502vm loads a raw 6502 ROM image and runs it against a Bus
// wired up with RAM and a memory-mapped standard-output device.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/urfave/cli.v2"

	"m6502vm/cpu"
	"m6502vm/mem"
)

// resetVector is both where the Cpu starts fetching and where the ROM is
// loaded; this codebase does not read an indirect reset vector the way NES
// hardware does.
const resetVector = 0x0300

// stdoutLo, stdoutHi bound the memory-mapped standard-output device's
// window; general RAM is split around it so the two never overlap.
const (
	stdoutLo = 0x0200
	stdoutHi = 0x02ff
)

func main() {
	app := &cli.App{
		Name:    "m6502vm",
		Usage:   "run a raw MOS 6502 ROM image",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "dump Cpu state after every instruction",
			},
			&cli.BoolFlag{
				Name:  "debugger",
				Usage: "launch the interactive single-step debugger instead of free-running",
			},
			&cli.Float64Flag{
				Name:  "hz",
				Usage: "oscillator frequency in Hz",
				Value: 1_000_000,
			},
		},
		ArgsUsage: "<rom-file>",
		Action:    run,
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "m6502vm:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	romPath := c.Args().First()
	if romPath == "" {
		cli.ShowAppHelp(c)
		return cli.Exit("a rom file is required", 2)
	}

	rom, err := os.ReadFile(romPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading rom: %v", err), 1)
	}

	bus := mem.NewBus()
	ramLow := mem.NewRam()
	ramHigh := mem.NewRam()
	stdout := mem.NewStdout(os.Stdout)
	for _, m := range []struct {
		lo, hi uint16
		device mem.Device
	}{
		{0x0000, stdoutLo - 1, ramLow},
		{stdoutLo, stdoutHi, stdout},
		{stdoutHi + 1, 0xffff, ramHigh},
	} {
		if err := bus.PlugIn(m.lo, m.hi, m.device); err != nil {
			return cli.Exit(fmt.Sprintf("mapping bus: %v", err), 1)
		}
	}

	for i, b := range rom {
		bus.Write(resetVector+uint16(i), b)
	}

	machine := cpu.New()
	machine.Reset(resetVector)

	if c.Bool("debugger") {
		return cpu.Debug(machine, bus, resetVector)
	}

	osc := cpu.NewOscillator(c.Float64("hz"))
	debug := c.Bool("debug")
	for {
		osc.Wait()
		stepped, err := machine.Tick(bus)
		if err != nil {
			return cli.Exit(fmt.Sprintf("fatal: %v\n%s", err, spew.Sdump(*machine)), 1)
		}
		if stepped && debug {
			fmt.Fprintf(os.Stderr, "pc=%04x a=%02x x=%02x y=%02x sp=%02x p=%02x\n",
				machine.ProgramCounter, machine.Accumulator, machine.X, machine.Y, machine.Stack, machine.P)
		}
	}
}
