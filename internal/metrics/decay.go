package metrics

import "github.com/san-kum/modalsys/internal/dynamo"

// Decay is the ratio of the last observed state norm to the first one.
type Decay struct {
	first float64
	last  float64
	seen  bool
}

func NewDecay() *Decay {
	return &Decay{}
}

func (d *Decay) OnStep(step int, x dynamo.State, y []float64) {
	n := x.Norm()
	if !d.seen {
		d.first = n
		d.seen = true
	}
	d.last = n
}

func (d *Decay) Value() float64 {
	if !d.seen || d.first == 0 {
		return 1.0
	}
	return d.last / d.first
}

func (d *Decay) Reset() {
	*d = Decay{}
}
