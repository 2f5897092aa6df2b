package cubesim

// Easing maps linear animation time t in [0,1] to eased progress in
// [0,1]. It shapes the presentation of a turn only; the logical state
// change is always the full quarter turn, applied once at completion.
type Easing func(t float64) float64

// EaseLinear is the identity easing.
func EaseLinear(t float64) float64 {
	return t
}

// EaseInOutQuad accelerates through the first half of the turn and
// decelerates through the second.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - 2*(1-t)*(1-t)
}

// EaseOutCubic starts fast and settles softly, the feel of a flicked
// face turn.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
