package maze

// Easing names accepted by AnimationConfig.
const (
	EasingLinear  = "linear"
	EasingEaseOut = "ease-out"
)

// AnimationConfig controls the interpolated move between two cells.
// Steps is the number of Tick calls a move takes; Steps <= 0 disables
// interpolation and moves snap immediately.
type AnimationConfig struct {
	Steps  int
	Easing string
}

// DefaultAnimationConfig returns the 10-step linear animation.
func DefaultAnimationConfig() AnimationConfig {
	return AnimationConfig{Steps: 10, Easing: EasingLinear}
}

// motion is an in-flight move from one cell centre to the next.
type motion struct {
	fromX, fromY float64
	toX, toY     float64
	ticks        int
	steps        int
}

// progress returns the linear completion in [0, 1].
func (m motion) progress() float64 {
	if m.steps <= 0 {
		return 1
	}
	p := float64(m.ticks) / float64(m.steps)
	if p > 1 {
		p = 1
	}
	return p
}

// done reports whether the final step has been taken.
func (m motion) done() bool {
	return m.ticks >= m.steps
}

// position interpolates the current coordinate using the easing curve.
func (m motion) position(easing string) (x, y float64) {
	t := m.progress()
	if easing == EasingEaseOut {
		t = easeOutQuad(t)
	}
	x = m.fromX + (m.toX-m.fromX)*t
	y = m.fromY + (m.toY-m.fromY)*t
	return x, y
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}
