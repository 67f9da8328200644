package interact

import "time"

// DefaultFocusDuration is how long a hotspot focus transition takes.
const DefaultFocusDuration = 400 * time.Millisecond

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(t float64) float64

// EaseOutCubic decelerates towards the target.
func EaseOutCubic(t float64) float64 {
	t2 := 1 - t
	return 1 - t2*t2*t2
}

// Animator interpolates the current transform towards a target. It never
// blocks: the frame loop drives it by calling Tick.
type Animator struct {
	current Transform

	// In-flight animation
	active   bool
	from     Transform
	to       Transform
	start    time.Time
	duration time.Duration

	ease     Easing
	onUpdate func(Transform)
	now      func() time.Time
}

// NewAnimator creates an idle animator holding initial. onUpdate, if set, is
// called with every new current transform.
func NewAnimator(initial Transform, onUpdate func(Transform)) *Animator {
	return &Animator{
		current:  initial,
		ease:     EaseOutCubic,
		onUpdate: onUpdate,
		now:      time.Now,
	}
}

// SetClock replaces the time source used to stamp animation starts.
func (a *Animator) SetClock(now func() time.Time) {
	a.now = now
}

// SetEasing replaces the interpolation curve.
func (a *Animator) SetEasing(e Easing) {
	if e != nil {
		a.ease = e
	}
}

// Current returns the last reached transform.
func (a *Animator) Current() Transform {
	return a.current
}

// Active reports whether an animation is in flight.
func (a *Animator) Active() bool {
	return a.active
}

// Target returns the in-flight animation's target.
func (a *Animator) Target() (Transform, bool) {
	return a.to, a.active
}

// AnimateTo starts animating from the current transform to target, replacing
// any animation in flight. A non-positive duration applies target at once.
func (a *Animator) AnimateTo(target Transform, d time.Duration) {
	if d <= 0 {
		a.active = false
		a.set(target)
		return
	}

	a.active = true
	a.from = a.current
	a.to = target
	a.start = a.now()
	a.duration = d
}

// Cancel stops the animation, keeping the last interpolated transform.
func (a *Animator) Cancel() {
	a.active = false
}

// Tick advances the animation to now and reports whether it is still
// running. The final step lands exactly on the target.
func (a *Animator) Tick(now time.Time) bool {
	if !a.active {
		return false
	}

	elapsed := now.Sub(a.start)
	if elapsed >= a.duration {
		a.active = false
		a.set(a.to)
		return false
	}

	progress := float64(elapsed) / float64(a.duration)
	if progress < 0 {
		progress = 0
	}
	a.set(a.from.Lerp(a.to, a.ease(progress)))
	return true
}

func (a *Animator) set(t Transform) {
	a.current = t
	if a.onUpdate != nil {
		a.onUpdate(t)
	}
}
