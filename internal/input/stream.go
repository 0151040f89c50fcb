package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// StickCentre is the resting reading of both axes.
const StickCentre = 512

// StreamSampler reads axis conversions from a text stream, one "x y" pair
// per line, as written by an ADC bridge on a serial line or a pipe.
// Malformed lines are skipped.
type StreamSampler struct {
	samples chan [2]uint16
	done    chan struct{}
	err     error
	x, y    uint16
}

// NewStreamSampler starts reading r in the background.
func NewStreamSampler(r io.Reader) *StreamSampler {
	s := &StreamSampler{
		samples: make(chan [2]uint16),
		done:    make(chan struct{}),
		x:       StickCentre,
		y:       StickCentre,
	}
	go s.scan(r)
	return s
}

func (s *StreamSampler) scan(r io.Reader) {
	defer close(s.done)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		var x, y uint16
		if _, err := fmt.Sscanf(sc.Text(), "%d %d", &x, &y); err != nil {
			continue
		}
		s.samples <- [2]uint16{x, y}
	}
	s.err = sc.Err()
	if s.err == nil {
		s.err = io.EOF
	}
}

// Sample waits for the next conversion. When none arrives before ctx is done
// the stick is taken to be where it was last seen. Once the stream ends every
// call returns its error, io.EOF on a clean close.
func (s *StreamSampler) Sample(ctx context.Context) (uint16, uint16, error) {
	select {
	case v := <-s.samples:
		s.x, s.y = v[0], v[1]
	case <-s.done:
		return s.x, s.y, s.err
	case <-ctx.Done():
	}
	return s.x, s.y, nil
}
