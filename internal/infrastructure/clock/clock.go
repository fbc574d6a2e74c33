// Package clock provides the wall-clock frame limiter.
package clock

import "time"

// Wall caps the frame rate by sleeping out the rest of each frame interval.
type Wall struct {
	start time.Time
	last  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewWall creates a clock started at the current time.
func NewWall() *Wall {
	return newWall(time.Now, time.Sleep)
}

func newWall(now func() time.Time, sleep func(time.Duration)) *Wall {
	t := now()
	return &Wall{start: t, last: t, now: now, sleep: sleep}
}

// Tick waits until 1/fps has passed since the previous Tick and returns
// the real time between the two. fps <= 0 disables the cap.
func (w *Wall) Tick(fps int) time.Duration {
	if fps > 0 {
		interval := time.Second / time.Duration(fps)
		if remaining := interval - w.now().Sub(w.last); remaining > 0 {
			w.sleep(remaining)
		}
	}
	t := w.now()
	dt := t.Sub(w.last)
	w.last = t
	return dt
}

// Ticks returns the time since the clock was created.
func (w *Wall) Ticks() time.Duration {
	return w.now().Sub(w.start)
}
