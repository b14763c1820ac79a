// This file is part of GopherBK.
//
// GopherBK is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherBK is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherBK.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/debugger"
	"github.com/jetsetilly/gopherbk/debugger/terminal"
	"github.com/jetsetilly/gopherbk/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopherbk/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopherbk/disassembly"
	"github.com/jetsetilly/gopherbk/disassembly/symbols"
	"github.com/jetsetilly/gopherbk/hardware"
	"github.com/jetsetilly/gopherbk/hardware/cpu"
	"github.com/jetsetilly/gopherbk/hardware/govern"
	"github.com/jetsetilly/gopherbk/logger"
	"github.com/jetsetilly/gopherbk/modalflag"
	"github.com/jetsetilly/gopherbk/paths"
	"github.com/jetsetilly/gopherbk/performance"
	"github.com/jetsetilly/gopherbk/prefs"
	"github.com/jetsetilly/gopherbk/scripting"
	"github.com/jetsetilly/gopherbk/statsview"
	"github.com/jetsetilly/gopherbk/wavwriter"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

const defaultInitScript = "monitorInit"

func main() {
	os.Exit(launch(os.Args[1:]))
}

// launch returns the exit status of the program.
func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "SCRIPT", "DISASM", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DEBUG":
		err = debug(md)

	case "SCRIPT":
		err = script(md)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// flags common to every mode that creates a Computer.
type machineFlags struct {
	model  *string
	clock  *int
	prefs  *string
	roms   *string
	origin *string
	log    *bool
}

func addMachineFlags(md *modalflag.Modes) *machineFlags {
	return &machineFlags{
		model:  md.AddString("model", "BK0010", "machine to emulate: BK0010, BK0011M"),
		clock:  md.AddInt("clock", 0, "CPU clock in kHz (zero for the model default)"),
		prefs:  md.AddString("prefs", "", "preferences for this session (eg. 'pacing::false')"),
		roms:   md.AddString("rom", "", "ROM images to load (eg. 'monitor=mon.rom,basic=basic.rom')"),
		origin: md.AddString("origin", "", "octal load address of a raw image. BIN format if empty"),
		log:    md.AddBool("log", false, "echo log to stdout"),
	}
}

// newComputer creates and resets a Computer according to the machine flags.
// The image argument is loaded if it is not empty.
func newComputer(mf *machineFlags, image string) (*hardware.Computer, error) {
	if *mf.log {
		logger.SetEcho(os.Stdout)
	}

	model, err := hardware.ParseModel(*mf.model)
	if err != nil {
		return nil, err
	}

	cmp, err := hardware.NewComputer(model, nil)
	if err != nil {
		return nil, err
	}

	if *mf.prefs != "" {
		prefs.PushCommandLineStack(*mf.prefs)
	}
	err = cmp.Prefs.Load()
	if err != nil {
		logger.Logf(logger.Allow, "gopherbk", "%v", err)
	}
	if *mf.prefs != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "gopherbk", "unused preferences: %s", unused)
		}
	}

	if *mf.clock > 0 {
		err = cmp.Prefs.Clock.Set(*mf.clock)
		if err != nil {
			return nil, err
		}
	}

	err = loadROMs(cmp, *mf.roms)
	if err != nil {
		return nil, err
	}

	cmp.HardReset()

	if image != "" {
		err = loadImage(cmp, image, *mf.origin)
		if err != nil {
			return nil, err
		}
	}

	return cmp, nil
}

// loadROMs loads any ROM images found in the resource directory before
// loading the images named by the -rom flag.
func loadROMs(cmp *hardware.Computer, spec string) error {
	for _, name := range cmp.ROMs() {
		pth, err := paths.ResourcePath("roms", name+".rom")
		if err != nil {
			logger.Logf(logger.Allow, "gopherbk", "%v", err)
			break
		}
		data, err := os.ReadFile(pth)
		if err != nil {
			continue
		}
		err = cmp.LoadROM(name, data)
		if err != nil {
			return err
		}
	}

	if spec == "" {
		return nil
	}

	for _, r := range strings.Split(spec, ",") {
		name, file, ok := strings.Cut(r, "=")
		if !ok {
			return fmt.Errorf("ROM should be specified as name=file (%s)", r)
		}
		data, err := os.ReadFile(strings.TrimSpace(file))
		if err != nil {
			return err
		}
		err = cmp.LoadROM(strings.TrimSpace(name), data)
		if err != nil {
			return err
		}
	}

	return nil
}

// loadImage loads a program into memory and sets the PC to its start.
func loadImage(cmp *hardware.Computer, filename string, origin string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	if origin == "" {
		start, err := cmp.LoadBin(data)
		if err != nil {
			return err
		}
		cmp.CPU.Regs.SetPC(start)
		return nil
	}

	o, err := strconv.ParseUint(origin, 8, 16)
	if err != nil {
		return fmt.Errorf("origin should be an octal number (%s)", origin)
	}
	err = cmp.LoadImage(uint16(o), data)
	if err != nil {
		return err
	}
	cmp.CPU.Regs.SetPC(uint16(o))

	return nil
}

func imageArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", nil
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	ticks := md.AddInt("ticks", 0, "number of ticks to run for (zero to run until interrupted)")
	wav := md.AddString("wav", "", "record speaker output to wav file")
	stats := new(bool)
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	memviz := md.AddString("memviz", "", "write graph of the memory map to file on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	image, err := imageArg(md)
	if err != nil {
		return err
	}

	cmp, err := newComputer(mf, image)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	if *wav != "" {
		aw, err := wavwriter.New(*wav, cmp.Clock)
		if err != nil {
			return err
		}
		cmp.SysReg.SetSpeaker(aw.Speaker)
		defer func() {
			if err := aw.Close(cmp.Clock.Ticks()); err != nil {
				fmt.Printf("* %v\n", err)
			}
		}()
	}

	var check func() (govern.State, error)
	if *ticks > 0 {
		end := cmp.Clock.Ticks() + uint64(*ticks)
		check = func() (govern.State, error) {
			if cmp.Clock.Ticks() >= end {
				return govern.Ending, nil
			}
			return govern.Running, nil
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmp.Start(check)

	var g errgroup.Group
	g.Go(func() error {
		select {
		case <-ctx.Done():
		case <-cmp.Done():
		}
		return cmp.Stop()
	})
	err = g.Wait()

	if err != nil {
		dsm := disassembly.NewDisassembly(cmp.Mem, symbols.NewSymbols())
		fmt.Printf("* %v\n", err)
		_, _ = dsm.Write(os.Stdout, cmp.CPU.LastResult.Address, 1)
	}
	fmt.Println(cmp)

	if *memviz != "" {
		f, ferr := os.Create(*memviz)
		if ferr != nil {
			return ferr
		}
		defer f.Close()
		cmp.Visualise(f)
	}

	if curated.Has(err, cpu.Halted) {
		return nil
	}
	return err
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	defInitScript, err := paths.ResourcePath("", defaultInitScript)
	if err != nil {
		return err
	}

	mf := addMachineFlags(md)
	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	initScript := md.AddString("initscript", defInitScript, "monitor script to run on start")
	wav := md.AddString("wav", "", "record speaker output to wav file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	image, err := imageArg(md)
	if err != nil {
		return err
	}

	cmp, err := newComputer(mf, image)
	if err != nil {
		return err
	}

	if *wav != "" {
		aw, err := wavwriter.New(*wav, cmp.Clock)
		if err != nil {
			return err
		}
		cmp.SysReg.SetSpeaker(aw.Speaker)
		defer func() {
			if err := aw.Close(cmp.Clock.Ticks()); err != nil {
				fmt.Printf("* %v\n", err)
			}
		}()
	}

	var trm terminal.Terminal
	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		trm = plainterm.NewPlainTerminal(nil, nil)
	case "COLOR":
		if term.IsTerminal(int(os.Stdin.Fd())) {
			trm = &colorterm.ColorTerminal{}
		} else {
			trm = plainterm.NewPlainTerminal(nil, nil)
		}
	}

	// a missing default script is not an error
	if *initScript == defInitScript {
		if _, err := os.Stat(defInitScript); err != nil {
			*initScript = ""
		}
	}

	dbg, err := debugger.NewDebugger(cmp, trm)
	if err != nil {
		return err
	}

	// ctrl-c interrupts a running emulation rather than quitting the monitor
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)

	ctx, cancel := context.WithCancel(context.Background())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return dbg.Start(*initScript)
	})
	g.Go(func() error {
		for {
			select {
			case <-sig:
				dbg.Interrupt()
			case <-ctx.Done():
				return nil
			}
		}
	})

	return g.Wait()
}

func script(md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	image := md.AddString("image", "", "program to load before running the script")
	wav := md.AddString("wav", "", "record speaker output to wav file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("%s mode requires exactly one script file", md)
	}

	cmp, err := newComputer(mf, *image)
	if err != nil {
		return err
	}

	if *wav != "" {
		aw, err := wavwriter.New(*wav, cmp.Clock)
		if err != nil {
			return err
		}
		cmp.SysReg.SetSpeaker(aw.Speaker)
		defer func() {
			if err := aw.Close(cmp.Clock.Ticks()); err != nil {
				fmt.Printf("* %v\n", err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scr := scripting.NewScript(cmp, nil, os.Stdout)
	defer scr.Close()
	scr.SetContext(ctx)

	return scr.RunFile(md.GetArg(0))
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	count := md.AddInt("count", 0, "number of instructions to disassemble (zero for the whole image)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("%s mode requires exactly one image file", md)
	}

	cmp, err := newComputer(mf, md.GetArg(0))
	if err != nil {
		return err
	}

	fi, err := os.Stat(md.GetArg(0))
	if err != nil {
		return err
	}

	start := cmp.CPU.Regs.PC()
	end := int(start) + int(fi.Size())
	if *mf.origin == "" {
		// BIN images carry a four byte header
		end -= 4
	}

	dsm := disassembly.NewDisassembly(cmp.Mem, symbols.NewSymbols())

	n := *count
	if n <= 0 {
		addr := start
		for int(addr) < end {
			next := dsm.Decode(addr).Next()
			n++
			if next <= addr {
				break
			}
			addr = next
		}
	}

	_, err = dsm.Write(md.Output, start, n)
	return err
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	duration := md.AddDuration("duration", 5e9, "run duration")
	profile := md.AddString("profile", "none", "generate profile: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	image, err := imageArg(md)
	if err != nil {
		return err
	}

	cmp, err := newComputer(mf, image)
	if err != nil {
		return err
	}

	_, err = performance.Check(md.Output, prf, cmp, 2e9, *duration)
	return err
}
