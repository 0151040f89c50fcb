package input

import (
	"context"
	"fmt"
	"time"
)

// Analog thresholds on the 10-bit joystick axes.
const (
	StickHigh = 850
	StickLow  = 150
)

// Minimum gaps between accepted joystick commands.
const (
	MoveRepeat   = 150 * time.Millisecond
	RotateRepeat = 300 * time.Millisecond
)

// Sampler reads both joystick axes. Implementations block until a
// conversion completes or ctx is done.
type Sampler interface {
	Sample(ctx context.Context) (x, y uint16, err error)
}

// Joystick converts analog stick positions into digital commands with a
// repeat delay, so holding the stick produces a steady stream of moves.
type Joystick struct {
	sampler Sampler
	timeout time.Duration
	last    time.Duration
	primed  bool
}

// NewJoystick wraps sampler. Each Poll waits at most timeout for a sample.
func NewJoystick(sampler Sampler, timeout time.Duration) *Joystick {
	return &Joystick{sampler: sampler, timeout: timeout}
}

// Poll samples the stick at time now (a monotonic clock reading) and returns
// the command it represents, or None when the stick is centred or the repeat
// gap has not elapsed.
func (j *Joystick) Poll(ctx context.Context, now time.Duration) (Command, error) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	x, y, err := j.sampler.Sample(ctx)
	if err != nil {
		return None, fmt.Errorf("joystick sample: %w", err)
	}

	// X reads high when pushed left; Y reads high when pushed up.
	switch {
	case x > StickHigh:
		return j.accept(MoveLeft, now, MoveRepeat), nil
	case x < StickLow:
		return j.accept(MoveRight, now, MoveRepeat), nil
	case y > StickHigh:
		return j.accept(Rotate, now, RotateRepeat), nil
	case y < StickLow:
		return j.accept(SoftDrop, now, MoveRepeat), nil
	}
	return None, nil
}

func (j *Joystick) accept(cmd Command, now, gap time.Duration) Command {
	if j.primed && now <= j.last+gap {
		return None
	}
	j.last = now
	j.primed = true
	return cmd
}
