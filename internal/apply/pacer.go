package apply

import (
	"log"
	"math/rand"
	"time"
)

// Pacer enforces a jittered minimum interval between consecutive outbound
// platform calls. This is caller-side policy: the submission workflow
// calls Wait before every submit so third-party rate limits are respected
// even across mixed platforms.
type Pacer struct {
	min  time.Duration
	max  time.Duration
	last time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

func NewPacer(min, max time.Duration) *Pacer {
	if max < min {
		max = min
	}
	return &Pacer{
		min:   min,
		max:   max,
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Wait blocks until at least the minimum interval has passed since the
// previous call, sleeping a random duration in the configured range. The
// first call never blocks.
func (p *Pacer) Wait() {
	if !p.last.IsZero() {
		elapsed := p.now().Sub(p.last)
		if elapsed < p.min {
			lo := p.min - elapsed
			hi := p.max - elapsed
			d := lo
			if hi > lo {
				d = lo + time.Duration(rand.Int63n(int64(hi-lo)))
			}
			log.Printf("rate limiting: sleeping for %s", d.Round(10*time.Millisecond))
			p.sleep(d)
		}
	}
	p.last = p.now()
}
