// Command moted runs a simulated board loaded from a YAML manifest: one LED
// per pin, each driven by its own Blinker through the shared timer
// multiplexer, scheduled by one cooperative supervisor. It is the
// host-simulator stand-in for flashing firmware onto an actual iot01a board
// (original_source's examples/stm32l4/iot01a), exercising every module this
// runtime defines end to end.
package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/amp-labs/mote/actor"
	"github.com/amp-labs/mote/bind"
	"github.com/amp-labs/mote/device"
	"github.com/amp-labs/mote/driver/blinker"
	"github.com/amp-labs/mote/driver/simdriver"
	"github.com/amp-labs/mote/driver/simhal"
	"github.com/amp-labs/mote/envutil"
	"github.com/amp-labs/mote/logger"
	"github.com/amp-labs/mote/shutdown"
	"github.com/amp-labs/mote/simclock"
	"github.com/amp-labs/mote/supervisor"
	"github.com/amp-labs/mote/timer"
)

// blinkDelayOverrideEnv, when set to a non-negative integer, replaces the
// per-LED BlinkMS the board manifest assigns every blinker. Lets a
// simulator run override the manifest's delay without editing or
// re-embedding the YAML.
const blinkDelayOverrideEnv = "MOTED_BLINK_DELAY_MS"

// Board is the demo device: one simulated LED per pin named in its
// BoardConfig, each blinking at the rate the manifest assigns it. It
// implements device.Device[*Board] and device.EventHandler[string] so the
// event bus module gets exercised too, the way a real board would route
// button presses back up through it.
type Board struct {
	log *slog.Logger
	cfg simhal.BoardConfig

	pins map[string]*simhal.Pin

	// blinkDelayOverride, when >= 0, replaces every LED's manifest BlinkMS.
	blinkDelayOverride time.Duration
}

var (
	_ device.Device[*Board]       = (*Board)(nil)
	_ device.EventHandler[string] = (*Board)(nil)
)

// NewBoard allocates one simulated pin per LED the manifest names. Mount
// still has to wire them to actors.
func NewBoard(log *slog.Logger, cfg simhal.BoardConfig) *Board {
	pins := make(map[string]*simhal.Pin, len(cfg.LEDs))
	for _, led := range cfg.LEDs {
		pins[led.Name] = simhal.NewPin()
	}

	overrideMS := envutil.Int(blinkDelayOverrideEnv, envutil.Default(-1)).ValueOrFatal()

	blinkDelayOverride := -1 * time.Millisecond
	if overrideMS >= 0 {
		blinkDelayOverride = time.Duration(overrideMS) * time.Millisecond
	}

	return &Board{log: log, cfg: cfg, pins: pins, blinkDelayOverride: blinkDelayOverride}
}

// OnEvent implements device.EventHandler[string].
func (b *Board) OnEvent(event string) {
	b.log.Info("board event", "event", event)
}

// Mount wires every actor the board owns: one timer multiplexer shared by
// all LEDs, and one LED actor plus blinker per pin the manifest names,
// matching the dual-blinker layout of the original iot01a example's
// blinker1/blinker2 but driven entirely by BoardConfig instead of being
// hardcoded.
func (b *Board) Mount(bus device.Address[*Board], reg device.Registrar) {
	hw := simclock.New()
	timerActor, driver := timer.New(hw, b.log.With("component", "timer", "irq", b.cfg.Timer.IRQ))
	timerAddr := timer.NewAddress(actor.NewContext("timer", timerActor).Mount(reg))
	hw.Bind(driver)

	for _, led := range b.cfg.LEDs {
		ledAddr := actor.NewContext(led.Name, simdriver.NewLED(b.pins[led.Name], led.ActiveHigh)).Mount(reg)

		delay := time.Duration(led.BlinkMS) * time.Millisecond
		if b.blinkDelayOverride >= 0 {
			delay = b.blinkDelayOverride
		}

		blinkerAddr := actor.NewContext(led.Name+"-blinker", blinker.New[simdriver.LED](delay)).Mount(reg)
		bind.To(blinkerAddr, (*blinker.Blinker[simdriver.LED]).SetTimer, timerAddr)
		bind.To(blinkerAddr, (*blinker.Blinker[simdriver.LED]).SetLED, ledAddr)
	}

	device.Publish(bus, "board mounted")
}

func main() {
	log := logger.Configure("moted")
	ctx := shutdown.SetupHandler()

	cfg, err := simhal.LoadBoardConfig(bytes.NewReader(simhal.DefaultBoardManifest))
	if err != nil {
		log.Error("failed to load board manifest", "error", err)
		os.Exit(1)
	}

	sup := supervisor.New()

	board := NewBoard(log, cfg)
	busAddr := device.NewAddress(actor.NewContext("eventbus", device.NewEventBus[*Board](board)).Mount(sup))
	board.Mount(busAddr, sup)

	log.Info("board mounted, starting supervisor", "board", cfg.Name, "leds", len(cfg.LEDs))
	runUntilDone(ctx, sup, log)
}

func runUntilDone(ctx context.Context, sup *supervisor.Supervisor, log *slog.Logger) {
	shutdown.BeforeShutdown(func() {
		log.Info("shutting down")
	})

	sup.RunForever(ctx)
}
