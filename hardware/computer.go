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

package hardware

import (
	"fmt"
	"sort"

	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/hardware/clocks"
	"github.com/jetsetilly/gopherbk/hardware/cpu"
	"github.com/jetsetilly/gopherbk/hardware/govern"
	"github.com/jetsetilly/gopherbk/hardware/limiter"
	"github.com/jetsetilly/gopherbk/hardware/memory"
	"github.com/jetsetilly/gopherbk/hardware/memory/blocks"
	"github.com/jetsetilly/gopherbk/hardware/memory/bus"
	"github.com/jetsetilly/gopherbk/hardware/peripherals/pager"
	"github.com/jetsetilly/gopherbk/hardware/peripherals/sysreg"
	"github.com/jetsetilly/gopherbk/hardware/peripherals/timer"
	"github.com/jetsetilly/gopherbk/hardware/preferences"
	"github.com/jetsetilly/gopherbk/logger"
	"github.com/jetsetilly/gopherbk/prefs"
	"golang.org/x/sync/errgroup"
)

// Sentinel errors returned by the Computer type.
const (
	UnknownROM = "hardware: no ROM named %s"
	BadImage   = "hardware: image does not fit in memory at %06o"
)

// sizes of the memory areas, in words
const (
	ramWords       = 040000
	pageWords      = 010000
	monitorWords   = 010000
	basicWords     = 020000
	systemWords    = 010000
	extensionWords = 010000
)

// the readable and writable extent of the BK-0011M extension window. the
// window ends where device space begins
const extensionLimit = 017600

// Computer is the emulated BK. The fields are exported for inspection by the
// debugger and for tests. Use the methods of the Computer type to change the
// state of the machine.
type Computer struct {
	Model Model
	Prefs *preferences.Preferences

	Clock    *clocks.Clock
	Mem      *memory.Memory
	CPU      *cpu.CPU
	Limiter  *limiter.Limiter
	Governor *govern.Governor

	Timer  *timer.Timer
	SysReg *sysreg.SystemRegister

	// only present on the BK-0011M
	Pager     *pager.Pager
	Extension *pager.Extension

	// every block of RAM. filled with the power-on pattern on a hard reset
	ram []*blocks.RAM

	// loadable ROM by name
	roms map[string]*blocks.RAM

	// the BASIC area of the BK-0010 is only mapped when a ROM is loaded
	basic *blocks.Selectable

	// the goroutine started by Start()
	group *errgroup.Group
	done  chan struct{}
}

// NewComputer is the preferred method of initialisation for the Computer
// type. If p is nil a new set of preferences is created with the default
// values for the model.
//
// The machine is not reset. Call HardReset() before running the emulation.
func NewComputer(model Model, p *preferences.Preferences) (*Computer, error) {
	var err error

	if p == nil {
		p, err = preferences.NewPreferences(model.DefaultClock())
		if err != nil {
			return nil, curated.Errorf("hardware: %v", err)
		}
	}

	cmp := &Computer{
		Model:    model,
		Prefs:    p,
		Clock:    clocks.NewClock(p.ClockFrequency()),
		Governor: govern.NewGovernor(),
		roms:     make(map[string]*blocks.RAM),
	}

	cmp.Mem = memory.NewMemory(cmp.Clock)
	cmp.CPU = cpu.NewCPU(cmp.Mem)
	cmp.Limiter = limiter.NewLimiter(cmp.Clock)
	cmp.Limiter.Active.Store(p.Pacing.Get().(bool))

	cmp.Timer = timer.NewTimer()

	switch model {
	case BK0010:
		err = cmp.buildBK0010()
	case BK0011M:
		err = cmp.buildBK0011M()
	default:
		err = curated.Errorf(UnknownModel, model)
	}
	if err != nil {
		return nil, curated.Errorf("hardware: %v", err)
	}

	p.Clock.SetHookPost(func(v prefs.Value) error {
		cmp.Clock.SetFrequency(v.(int))
		cmp.Limiter.RequestResync()
		return nil
	})
	p.Pacing.SetHookPost(func(v prefs.Value) error {
		cmp.Limiter.Active.Store(v.(bool))
		cmp.Limiter.RequestResync()
		return nil
	})

	return cmp, nil
}

func (cmp *Computer) buildBK0010() error {
	ram := blocks.NewRAM("ram", 0, ramWords, cmp.Prefs.RAMPattern())
	monitor := blocks.NewROM("monitor", 0100000, monitorWords)
	basic := blocks.NewROM("basic", 0120000, basicWords)
	rom := blocks.NewROM("rom", 0160000, monitorWords)

	cmp.ram = append(cmp.ram, ram)
	cmp.roms["monitor"] = monitor
	cmp.roms["basic"] = basic
	cmp.roms["rom"] = rom
	cmp.basic = blocks.NewSelectable("basic.gate", basic, false)

	for _, b := range []bus.Block{ram, monitor, cmp.basic, rom} {
		if err := cmp.Mem.AddMemory(b); err != nil {
			return err
		}
	}

	cmp.SysReg = sysreg.NewSystemRegister(BK0010.BootAddress(), false)

	return cmp.addDevices(cmp.Timer, cmp.SysReg)
}

func (cmp *Computer) buildBK0011M() error {
	pattern := cmp.Prefs.RAMPattern()

	pages := make([]bus.Block, 0, pager.NumPages+pager.NumROMBanks)
	for i := range pager.NumPages {
		r := blocks.NewRAM(fmt.Sprintf("ram.page%d", i), 0, pageWords, pattern)
		cmp.ram = append(cmp.ram, r)
		pages = append(pages, r)
	}

	windowA, err := blocks.NewBanked("windowA", 0040000, pageWords, pages...)
	if err != nil {
		return err
	}

	banksB := append([]bus.Block{}, pages...)
	for i := range pager.NumROMBanks {
		label := fmt.Sprintf("bank%d", i)
		r := blocks.NewROM(label, 0100000, pageWords)
		cmp.roms[label] = r
		banksB = append(banksB, r)
	}
	windowB, err := blocks.NewBanked("windowB", 0100000, pageWords, banksB...)
	if err != nil {
		return err
	}

	system := blocks.NewROM("system", 0140000, systemWords)
	cmp.roms["system"] = system

	ext := blocks.NewPaged("ext", 0160000, 2*extensionWords, 4, pattern)
	for i := range ext.NumPages() {
		cmp.ram = append(cmp.ram, ext.Page(i))
	}
	window, err := blocks.NewSegmented("ext.window", 0160000, extensionWords, ext)
	if err != nil {
		return err
	}
	window.SetLimits(extensionLimit, extensionLimit)
	gate := blocks.NewSelectable("ext.gate", window, false)

	for _, b := range []bus.Block{pages[0], windowA, windowB, system, gate} {
		if err := cmp.Mem.AddMemory(b); err != nil {
			return err
		}
	}

	cmp.SysReg = sysreg.NewSystemRegister(BK0011M.BootAddress(), true)
	cmp.Pager = pager.NewPager(windowA, windowB)
	cmp.Extension = pager.NewExtension(gate, window, ext, extensionLimit, extensionLimit)

	return cmp.addDevices(cmp.Timer, cmp.SysReg, cmp.Pager, cmp.Extension)
}

func (cmp *Computer) addDevices(devices ...bus.Device) error {
	for _, d := range devices {
		if err := cmp.Mem.AddDevice(d); err != nil {
			return err
		}
	}
	return nil
}

func (cmp *Computer) String() string {
	return fmt.Sprintf("%s %s", cmp.Model, cmp.CPU)
}

// applyPrefs copies the preferences used by the CPU. the CPU fields are only
// changed while the emulation is not running
func (cmp *Computer) applyPrefs() {
	cmp.CPU.Illegal = cmp.Prefs.IllegalPolicy()
	cmp.CPU.LogTraps = cmp.Prefs.LogTraps.Get().(bool)
}

// Reset the machine as if the reset button had been pressed. Devices are
// initialised and the CPU starts from the boot address. Memory is unchanged.
func (cmp *Computer) Reset() {
	cmp.applyPrefs()
	cmp.Mem.InitDevices(true)
	cmp.CPU.Reset()
	logger.Logf(logger.Allow, "hardware", "reset %s. pc=%06o", cmp.Model, cmp.CPU.Regs.PC())
}

// HardReset is the equivalent of switching the machine off and on again. RAM
// is filled with the power-on pattern and the clock is set to zero before the
// machine is reset.
func (cmp *Computer) HardReset() {
	pattern := cmp.Prefs.RAMPattern()
	for _, r := range cmp.ram {
		pattern.Fill(r.Data())
	}
	cmp.Clock.SetTicks(0)
	cmp.Limiter.RequestResync()
	cmp.Reset()
}

// ReadMemory implements the bus.CPUBus interface.
func (cmp *Computer) ReadMemory(byteMode bool, address uint16) int {
	return cmp.Mem.ReadMemory(byteMode, address)
}

// WriteMemory implements the bus.CPUBus interface.
func (cmp *Computer) WriteMemory(byteMode bool, address uint16, value uint16) bool {
	return cmp.Mem.WriteMemory(byteMode, address, value)
}

// ResetDevices implements the bus.CPUBus interface.
func (cmp *Computer) ResetDevices() {
	cmp.Mem.ResetDevices()
}

// AddMemory attaches a block to the memory map. Used to attach memory that is
// not part of the standard machine.
func (cmp *Computer) AddMemory(b bus.Block) error {
	return cmp.Mem.AddMemory(b)
}

// AddDevice attaches a device to the memory map.
func (cmp *Computer) AddDevice(d bus.Device) error {
	return cmp.Mem.AddDevice(d)
}

// InitDevices initialises every device without resetting the CPU.
func (cmp *Computer) InitDevices(hardReset bool) {
	cmp.Mem.InitDevices(hardReset)
}

// ROMs returns the names accepted by LoadROM() in alphabetical order.
func (cmp *Computer) ROMs() []string {
	names := make([]string, 0, len(cmp.roms))
	for n := range cmp.roms {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// LoadROM loads the data into the named ROM. Loading the BASIC ROM of the
// BK-0010 maps it into the address space.
func (cmp *Computer) LoadROM(name string, data []byte) error {
	r, ok := cmp.roms[name]
	if !ok {
		return curated.Errorf(UnknownROM, name)
	}
	if err := r.Load(data); err != nil {
		return curated.Errorf("hardware: %v", err)
	}
	if name == "basic" && cmp.basic != nil {
		cmp.basic.SetEnabled(true)
	}
	logger.Logf(logger.Allow, "hardware", "loaded %d bytes into %s", len(data), name)
	return nil
}

// LoadImage copies little-endian data into memory at the origin address. The
// data goes into whatever block is currently mapped at each address.
func (cmp *Computer) LoadImage(origin uint16, data []byte) error {
	if origin&1 == 1 || int(origin)+len(data) > int(cmp.Mem.DevicesStart()) {
		return curated.Errorf(BadImage, origin)
	}
	for i := 0; i < len(data); i += 2 {
		w := uint16(data[i])
		if i+1 < len(data) {
			w |= uint16(data[i+1]) << 8
		}
		if !cmp.Mem.Poke(origin+uint16(i), w) {
			return curated.Errorf(BadImage, origin)
		}
	}
	return nil
}

// LoadBin loads a file in the BIN format. The file starts with a header of
// two little-endian words, the load address and the length of the data in
// bytes. The load address is returned.
func (cmp *Computer) LoadBin(data []byte) (uint16, error) {
	if len(data) < 4 {
		return 0, curated.Errorf("hardware: bin file too short")
	}
	origin := uint16(data[0]) | uint16(data[1])<<8
	length := int(uint16(data[2]) | uint16(data[3])<<8)
	if len(data)-4 < length {
		return 0, curated.Errorf("hardware: bin file truncated (%d of %d bytes)", len(data)-4, length)
	}
	if err := cmp.LoadImage(origin, data[4:4+length]); err != nil {
		return 0, err
	}
	return origin, nil
}

// ActualSpeed returns the measured speed of the emulation in kHz.
func (cmp *Computer) ActualSpeed() float32 {
	if v, ok := cmp.Limiter.Measured.Load().(float32); ok {
		return v
	}
	return 0
}

// Start runs the emulation in a new goroutine. The emulation continues until
// Stop() is called, until the continueCheck function returns govern.Ending
// or until an error occurs. The continueCheck function may be nil.
func (cmp *Computer) Start(continueCheck func() (govern.State, error)) {
	done := make(chan struct{})
	cmp.done = done
	cmp.group = &errgroup.Group{}
	cmp.group.Go(func() error {
		defer close(done)
		return cmp.Run(continueCheck)
	})
}

// Done returns a channel that is closed when the emulation started by Start()
// has ended. Returns nil if the emulation has not been started.
func (cmp *Computer) Done() <-chan struct{} {
	return cmp.done
}

// Stop the emulation started by Start() and wait for the goroutine to end.
// Returns the error that ended the emulation, if any.
func (cmp *Computer) Stop() error {
	cmp.Governor.Stop()
	if cmp.group == nil {
		return nil
	}
	err := cmp.group.Wait()
	cmp.group = nil
	return err
}

// Pause the emulation.
func (cmp *Computer) Pause() bool {
	return cmp.Governor.Pause()
}

// Resume the emulation.
func (cmp *Computer) Resume() bool {
	return cmp.Governor.Resume()
}
