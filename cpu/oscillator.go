package cpu

import "time"

// An Oscillator paces calls to Tick in wall-clock time, the way a real
// 6502's external clock crystal would. It is a sleeping gate, not a scheduler:
// it has no notion of what the Cpu is doing, only of when the next tick is
// allowed to happen.
type Oscillator struct {
	period time.Duration
	next   time.Time
}

// NewOscillator returns an Oscillator ticking at hz cycles per second.
func NewOscillator(hz float64) *Oscillator {
	return &Oscillator{period: time.Duration(float64(time.Second) / hz)}
}

// Wait blocks until the next tick is due.
func (o *Oscillator) Wait() {
	now := time.Now()
	if o.next.IsZero() {
		o.next = now
	}
	if d := o.next.Sub(now); d > 0 {
		time.Sleep(d)
	}
	o.next = o.next.Add(o.period)
}
