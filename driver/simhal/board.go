package simhal

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// IRQNumber is a fake NVIC interrupt number, kept purely for documentation
// parity with the original's `Timer::new<IRQ: Nr>(timer, irq)` — the
// simulated timer never actually vectors through it, since simclock.Clock
// drives the interrupt directly.
type IRQNumber uint8

// BoardConfig describes one simulated board's pin assignments, the way a
// real firmware image's board support package would be generated from a
// pinout rather than hand-assembled in Go. Loaded from YAML so adding a
// board is a data change, not a recompile.
type BoardConfig struct {
	Name  string    `yaml:"name"`
	LEDs  []LEDPin  `yaml:"leds"`
	Timer TimerSpec `yaml:"timer"`
}

// LEDPin names one simulated output line bound to a blinker or simple LED
// driver.
type LEDPin struct {
	Name       string `yaml:"name"`
	ActiveHigh bool   `yaml:"active_high"`
	BlinkMS    int    `yaml:"blink_ms"`
}

// TimerSpec names the IRQ the board's single hardware timer is wired to.
type TimerSpec struct {
	IRQ IRQNumber `yaml:"irq"`
}

// LoadBoardConfig parses a board manifest from r.
func LoadBoardConfig(r io.Reader) (BoardConfig, error) {
	var cfg BoardConfig

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil {
		return BoardConfig{}, fmt.Errorf("simhal: decode board config: %w", err)
	}

	return cfg, nil
}
