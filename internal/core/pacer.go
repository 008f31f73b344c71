package core

// Pacer converts a fixed frame rate into a slower logical update rate.
// It counts frames and fires once every Every() frames.
type Pacer struct {
	every int
	count int
}

// NewPacer creates a pacer firing updatesPerSec times per second when
// advanced frameRate times per second. The divisor is truncated and never
// drops below one frame.
func NewPacer(frameRate int, updatesPerSec float64) Pacer {
	p := Pacer{}
	p.SetRate(frameRate, updatesPerSec)
	return p
}

// SetRate changes the update rate without resetting the frame count.
func (p *Pacer) SetRate(frameRate int, updatesPerSec float64) {
	every := 1
	if updatesPerSec > 0 {
		every = int(float64(frameRate) / updatesPerSec)
	}
	p.every = max(1, every)
}

// Every returns the number of frames between updates.
func (p *Pacer) Every() int {
	return p.every
}

// Advance counts one frame and reports whether an update is due.
func (p *Pacer) Advance() bool {
	p.count++
	if p.count >= p.every {
		p.count = 0
		return true
	}
	return false
}
