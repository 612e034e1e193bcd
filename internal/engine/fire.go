package engine

// Fire is one active fire on the scene.
type Fire struct {
	ID              int
	X, Y            float64 // percent of scene width/height
	Intensity       float64
	ClicksRemaining int
	ClicksRequired  int // fixed at spawn
}

// Progress returns the fraction of required clicks already landed, in [0,1].
func (f *Fire) Progress() float64 {
	if f.ClicksRequired <= 0 {
		return 0
	}
	done := f.ClicksRequired - f.ClicksRemaining
	if done < 0 {
		done = 0
	}
	return float64(done) / float64(f.ClicksRequired)
}

// Heat returns intensity normalised against max, in [0,1].
func (f *Fire) Heat(max float64) float64 {
	if max <= 0 {
		return 0
	}
	h := f.Intensity / max
	if h > 1 {
		h = 1
	}
	if h < 0 {
		h = 0
	}
	return h
}
