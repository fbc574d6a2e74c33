package clock

import "time"

// Fixed advances by exactly one frame interval per Tick and never sleeps.
// Replays use it so animation timing depends only on the frame count.
type Fixed struct {
	elapsed time.Duration
}

// NewFixed creates a clock at zero.
func NewFixed() *Fixed {
	return &Fixed{}
}

// Tick advances by 1/fps and returns that step. fps <= 0 does not advance.
func (f *Fixed) Tick(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	step := time.Second / time.Duration(fps)
	f.elapsed += step
	return step
}

// Ticks returns the simulated time since the clock was created.
func (f *Fixed) Ticks() time.Duration {
	return f.elapsed
}
