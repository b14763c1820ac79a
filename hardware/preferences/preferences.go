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

// Package preferences defines the preference values used by the hardware
// package. Values are stored in the global preferences file in the resource
// directory.
package preferences

import (
	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/hardware/cpu"
	"github.com/jetsetilly/gopherbk/hardware/memory/blocks"
	"github.com/jetsetilly/gopherbk/paths"
	"github.com/jetsetilly/gopherbk/prefs"
)

// Sentinel errors returned when a preference value is rejected.
const (
	BadClock = "preferences: clock frequency must be positive (%d)"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// the clock frequency reset value. depends on the machine model
	defaultClock int

	// clock frequency in kHz
	Clock prefs.Int

	// whether emulation is paced to the real-time clock frequency
	Pacing prefs.Bool

	// power-on pattern of RAM. one of the names accepted by
	// blocks.ParseRAMType()
	RAMType prefs.String

	// how the CPU deals with reserved instructions. one of the names
	// accepted by cpu.ParseIllegalPolicy()
	Illegal prefs.String

	// log every trap entered by the CPU
	LogTraps prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The defaultClock argument is the frequency in kHz that
// the Clock value is reset to.
//
// The preferences file is not read. Use Load() for that.
func NewPreferences(defaultClock int) (*Preferences, error) {
	p := &Preferences{
		defaultClock: defaultClock,
	}

	p.Clock.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return curated.Errorf(BadClock, v.(int))
		}
		return nil
	})
	p.RAMType.SetHookPre(func(v prefs.Value) error {
		_, err := blocks.ParseRAMType(v.(string))
		return err
	})
	p.Illegal.SetHookPre(func(v prefs.Value) error {
		_, err := cpu.ParseIllegalPolicy(v.(string))
		return err
	})

	err := p.SetDefaults()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults sets every value to its default without touching the disk.
func (p *Preferences) SetDefaults() error {
	if err := p.Clock.Set(p.defaultClock); err != nil {
		return err
	}
	if err := p.Pacing.Set(true); err != nil {
		return err
	}
	if err := p.RAMType.Set(blocks.Generic.String()); err != nil {
		return err
	}
	if err := p.Illegal.Set(cpu.IllegalTrap.String()); err != nil {
		return err
	}
	return p.LogTraps.Set(false)
}

// the disk is created on first use so that a Preferences instance can be
// used without a resource directory.
func (p *Preferences) disk() (*prefs.Disk, error) {
	if p.dsk != nil {
		return p.dsk, nil
	}

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	return p.diskAt(pth)
}

func (p *Preferences) diskAt(pth string) (*prefs.Disk, error) {
	dsk, err := prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	if err := dsk.Add("hardware.clock", &p.Clock); err != nil {
		return nil, err
	}
	if err := dsk.Add("hardware.pacing", &p.Pacing); err != nil {
		return nil, err
	}
	if err := dsk.Add("hardware.ramtype", &p.RAMType); err != nil {
		return nil, err
	}
	if err := dsk.Add("hardware.illegal", &p.Illegal); err != nil {
		return nil, err
	}
	if err := dsk.Add("hardware.logtraps", &p.LogTraps); err != nil {
		return nil, err
	}

	p.dsk = dsk
	return dsk, nil
}

// Reset all hardware preferences to the default values.
func (p *Preferences) Reset() error {
	return p.SetDefaults()
}

// Load current hardware preferences from disk. Values on the command line
// stack take priority. A missing preferences file is not an error.
func (p *Preferences) Load() error {
	dsk, err := p.disk()
	if err != nil {
		return err
	}
	return dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	dsk, err := p.disk()
	if err != nil {
		return err
	}
	return dsk.Save()
}

// ClockFrequency returns the Clock value as an int.
func (p *Preferences) ClockFrequency() int {
	return p.Clock.Get().(int)
}

// RAMPattern returns the RAMType value as a blocks.RAMType. The value has
// been validated by the time it is stored so this cannot fail.
func (p *Preferences) RAMPattern() blocks.RAMType {
	t, _ := blocks.ParseRAMType(p.RAMType.Get().(string))
	return t
}

// IllegalPolicy returns the Illegal value as a cpu.IllegalPolicy.
func (p *Preferences) IllegalPolicy() cpu.IllegalPolicy {
	i, _ := cpu.ParseIllegalPolicy(p.Illegal.Get().(string))
	return i
}
