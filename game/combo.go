package game

// ComboTracker turns kill events into score with a time-sensitive multiplier.
// The multiplier is always at least 1 and is capped to keep late-game scores
// bounded; the cap comes from Config.ComboCap.
type ComboTracker struct {
	Multiplier int
	Window     float64
	Cap        int

	sinceLast float64
	armed     bool
}

// NewComboTracker creates a tracker with the multiplier at its floor.
func NewComboTracker(window float64, cap int) ComboTracker {
	return ComboTracker{Multiplier: 1, Window: window, Cap: cap}
}

// Tick advances the idle timer. If the window elapses with no kill, the
// multiplier drops back to 1 immediately, whether or not another kill ever
// happens.
func (c *ComboTracker) Tick(dt float64) {
	if !c.armed {
		return
	}
	c.sinceLast += dt
	if c.sinceLast > c.Window {
		c.Multiplier = 1
		c.armed = false
	}
}

// RecordKill scores a kill worth base points. A kill inside the window of the
// previous one extends the streak; otherwise the multiplier resets to 1
// before this kill is scored.
func (c *ComboTracker) RecordKill(base int) int {
	if c.armed && c.sinceLast <= c.Window {
		if c.Multiplier < c.Cap {
			c.Multiplier++
		}
	} else {
		c.Multiplier = 1
	}
	c.sinceLast = 0
	c.armed = true
	return base * c.Multiplier
}
