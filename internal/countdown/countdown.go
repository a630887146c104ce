package countdown

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour

	// TickInterval is the refresh cadence of a running Timer.
	TickInterval = time.Second
)

// TimeRemaining is the decomposed duration left until the target instant.
type TimeRemaining struct {
	Days     int
	Hours    int
	Minutes  int
	Seconds  int
	Complete bool
}

// Remaining decomposes max(0, target-now) into days, hours, minutes and seconds.
// A partial second counts as a whole one, so Complete is set exactly when every
// field is zero.
func Remaining(target, now time.Time) TimeRemaining {
	d := target.Sub(now)
	if d <= 0 {
		return TimeRemaining{Complete: true}
	}
	// round up to the next whole second
	diff := int64((d+time.Second-1)/time.Second) * msPerSecond

	days := diff / msPerDay
	diff %= msPerDay
	hours := diff / msPerHour
	diff %= msPerHour
	minutes := diff / msPerMinute
	diff %= msPerMinute
	seconds := diff / msPerSecond

	return TimeRemaining{
		Days:    int(days),
		Hours:   int(hours),
		Minutes: int(minutes),
		Seconds: int(seconds),
	}
}

// Timer refreshes TimeRemaining once per TickInterval until the target is
// reached. Completion is latched: once complete the ticker is stopped and the
// timer never reports a non-zero remainder again.
//
// Timer is not safe for concurrent use; Poll is expected to be called from the
// game loop.
type Timer struct {
	clock   clockwork.Clock
	target  time.Time
	ticker  clockwork.Ticker
	current TimeRemaining
}

// NewTimer reads the clock once. When the target has already passed the timer
// starts complete and no ticker is ever armed.
func NewTimer(clock clockwork.Clock, target time.Time) *Timer {
	t := &Timer{
		clock:   clock,
		target:  target,
		current: Remaining(target, clock.Now()),
	}
	if !t.current.Complete {
		t.ticker = clock.NewTicker(TickInterval)
	}
	log.Debug().
		Time("target", target).
		Bool("complete", t.current.Complete).
		Msg("countdown started")
	return t
}

// Poll consumes a pending tick, if any, and recomputes the remaining time from
// the clock. It reports whether a tick was consumed.
func (t *Timer) Poll() (TimeRemaining, bool) {
	if t.ticker == nil {
		return t.current, false
	}
	select {
	case <-t.ticker.Chan():
	default:
		return t.current, false
	}

	t.current = Remaining(t.target, t.clock.Now())
	if t.current.Complete {
		t.Stop()
		log.Info().Time("target", t.target).Msg("countdown complete")
	}
	return t.current, true
}

// Remaining returns the value computed at the last tick.
func (t *Timer) Remaining() TimeRemaining { return t.current }

// Complete reports whether the target has been reached.
func (t *Timer) Complete() bool { return t.current.Complete }

// Target returns the instant the timer counts down to.
func (t *Timer) Target() time.Time { return t.target }

// Stop releases the ticker. The remaining value is frozen.
func (t *Timer) Stop() {
	if t.ticker != nil {
		t.ticker.Stop()
		t.ticker = nil
	}
}

// NextNewYear returns local midnight of the first January 1 after now.
func NextNewYear(now time.Time) time.Time {
	return time.Date(now.Year()+1, time.January, 1, 0, 0, 0, 0, now.Location())
}
