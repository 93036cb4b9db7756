// Package blinker ports drogue-device's Blinker driver
// (original_source/src/driver/led/blinker.rs): an actor that schedules
// itself on and off forever through a bound timer, driving a bound
// Switchable LED, at an adjustable (non-retroactive) delay.
package blinker

import (
	"time"

	"github.com/amp-labs/mote/actor"
	"github.com/amp-labs/mote/optional"
	"github.com/amp-labs/mote/timer"
)

// Switchable is the capability a bound LED actor must provide. It mirrors
// the original's Switchable trait with turn_on/turn_off.
type Switchable interface {
	TurnOn()
	TurnOff()
}

// Blinker is generic over S, the concrete Switchable actor type it drives.
// The original is also generic over its hardware timer type T; here every
// board shares the one timer.TimerActor implementation, so that parameter
// drops out.
type Blinker[S Switchable] struct {
	led   optional.Value[actor.Address[S]]
	timer optional.Value[timer.Address]
	delay time.Duration
	self  optional.Value[actor.Address[Blinker[S]]]
}

// New builds a Blinker that will cycle its LED on and off every delay, once
// bound and started. Both SetLED and SetTimer must be called (via package
// bind) before the supervisor starts polling.
func New[S Switchable](delay time.Duration) Blinker[S] {
	return Blinker[S]{delay: delay}
}

// SetLED fills the led binding slot. Method-expression-compatible with
// package bind's To: bind.To(addr, (*Blinker[S]).SetLED, ledAddr).
func (b *Blinker[S]) SetLED(addr actor.Address[S]) {
	b.led = optional.Some(addr)
}

// SetTimer fills the timer binding slot.
func (b *Blinker[S]) SetTimer(addr timer.Address) {
	b.timer = optional.Some(addr)
}

// OnMount implements actor.Mounter: Blinker needs its own address to
// reschedule itself through the timer.
func (b *Blinker[S]) OnMount(self actor.Address[Blinker[S]]) {
	b.self = optional.Some(self)
}

// OnStart implements actor.Starter: it schedules the first stateOn
// transition after the configured delay.
func (b Blinker[S]) OnStart() actor.Completion[Blinker[S]] {
	b.scheduleNext(stateOn)

	return actor.CompletionImmediate(b)
}

type blinkState int

const (
	stateOn blinkState = iota
	stateOff
)

func (b Blinker[S]) scheduleNext(next blinkState) {
	t := b.timer.GetOrPanic(actor.ErrUnbound{Actor: "blinker", Slot: "timer"})
	self := b.self.GetOrPanic(actor.ErrUnbound{Actor: "blinker", Slot: "self"})

	timer.Schedule(t, b.delay, self, handleTick[S], next)
}

// handleTick is the notify handler the timer invokes when a scheduled
// transition fires. Turning the LED on or off is itself fire-and-forget
// (Tell): the blinker does not wait for the LED actor to confirm.
func handleTick[S Switchable](self Blinker[S], next blinkState) actor.Completion[Blinker[S]] {
	led := self.led.GetOrPanic(actor.ErrUnbound{Actor: "blinker", Slot: "led"})

	switch next {
	case stateOn:
		actor.Tell(led, tellTurnOn[S], struct{}{})
		self.scheduleNext(stateOff)
	case stateOff:
		actor.Tell(led, tellTurnOff[S], struct{}{})
		self.scheduleNext(stateOn)
	}

	return actor.CompletionImmediate(self)
}

func tellTurnOn[S Switchable](self *S, _ struct{})  { (*self).TurnOn() }
func tellTurnOff[S Switchable](self *S, _ struct{}) { (*self).TurnOff() }

// AdjustDelay replaces the blink interval. It is non-retroactive: a
// transition already scheduled at the old delay still fires at the old
// deadline, and only the next reschedule after that uses the new value.
type AdjustDelay struct {
	Delay time.Duration
}

func handleAdjustDelay[S Switchable](self Blinker[S], msg AdjustDelay) actor.Completion[Blinker[S]] {
	self.delay = msg.Delay

	return actor.CompletionImmediate(self)
}

// Address is the typed handle other code uses to reach a mounted Blinker.
type Address[S Switchable] struct {
	addr actor.Address[Blinker[S]]
}

// NewAddress wraps a raw actor.Address[Blinker[S]] returned from Mount.
func NewAddress[S Switchable](addr actor.Address[Blinker[S]]) Address[S] {
	return Address[S]{addr: addr}
}

// AdjustDelay sends the new blink interval, fire-and-forget.
func (a Address[S]) AdjustDelay(d time.Duration) {
	actor.Notify(a.addr, handleAdjustDelay[S], AdjustDelay{Delay: d})
}

// Raw returns the underlying generic address, for package bind's To.
func (a Address[S]) Raw() actor.Address[Blinker[S]] {
	return a.addr
}
