package systems

// RepeatTimer fires every period seconds of accumulated time.
type RepeatTimer struct {
	period  float32
	elapsed float32
}

// NewRepeatTimer creates a repeating timer with the given period.
func NewRepeatTimer(period float32) RepeatTimer {
	return RepeatTimer{period: period}
}

// SetPeriod changes the period without disturbing accumulated time.
func (t *RepeatTimer) SetPeriod(period float32) {
	if period > 0 {
		t.period = period
	}
}

// Period returns the current period in seconds.
func (t *RepeatTimer) Period() float32 {
	return t.period
}

// Tick advances the timer and reports whether it fired. A single call
// fires at most once; the surplus carries into the next period.
func (t *RepeatTimer) Tick(dt float32) bool {
	t.elapsed += dt
	if t.elapsed < t.period {
		return false
	}
	t.elapsed -= t.period
	return true
}

// Cooldown is a one-shot timer counting down to ready.
type Cooldown struct {
	remaining float32
}

// Tick advances the cooldown toward ready.
func (c *Cooldown) Tick(dt float32) {
	if c.remaining > 0 {
		c.remaining -= dt
		if c.remaining < 0 {
			c.remaining = 0
		}
	}
}

// Ready reports whether the cooldown has expired.
func (c *Cooldown) Ready() bool {
	return c.remaining <= 0
}

// Arm restarts the cooldown for d seconds.
func (c *Cooldown) Arm(d float32) {
	c.remaining = d
}
