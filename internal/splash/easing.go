package splash

// Easing maps normalized elapsed time t in [0,1] to normalized progress.
// Progress is 0 at t=0 and 1 at t=1 but may leave [0,1] in between.
type Easing func(t float64) float64

// Linear advances at constant speed.
func Linear(t float64) float64 {
	return t
}

// Anticipate returns an easing that first moves backwards then snaps
// forward to the target. Larger tension means a deeper wind-up; 0 degrades
// to a plain quadratic ease-in.
func Anticipate(tension float64) Easing {
	return func(t float64) float64 {
		return t * t * ((tension+1)*t - tension)
	}
}

// overshoots reports whether e leaves [0,1] somewhere inside (0,1).
// Sampled rather than derived so custom easings are covered too.
func overshoots(e Easing) bool {
	const samples = 64
	for i := 1; i < samples; i++ {
		p := e(float64(i) / samples)
		if p < 0 || p > 1 {
			return true
		}
	}
	return false
}
