package scene

import (
	"github.com/chewxy/math32"
)

type EasingType int

const (
	LinearNone EasingType = iota
	LinearIn
	LinearOut
	LinearInOut
	SineIn
	SineOut
	SineInOut
	CircIn
	CircOut
	CircInOut
	CubicIn
	CubicOut
	CubicInOut
	QuadIn
	QuadOut
	QuadInOut
	ExpoIn
	ExpoOut
	ExpoInOut
	BackIn
	BackOut
	BackInOut
	BounceIn
	BounceOut
	BounceInOut
	ElasticIn
	ElasticOut
	ElasticInOut
	easingTypeCount
)

// easeFunc follows the Penner signature: elapsed time t, start b, change c
// and duration d.
type easeFunc func(t, b, c, d float32) float32

var easeFuncs = [easingTypeCount]easeFunc{
	LinearNone:   linear,
	LinearIn:     linear,
	LinearOut:    linear,
	LinearInOut:  linear,
	SineIn:       sineIn,
	SineOut:      sineOut,
	SineInOut:    sineInOut,
	CircIn:       circIn,
	CircOut:      circOut,
	CircInOut:    circInOut,
	CubicIn:      cubicIn,
	CubicOut:     cubicOut,
	CubicInOut:   cubicInOut,
	QuadIn:       quadIn,
	QuadOut:      quadOut,
	QuadInOut:    quadInOut,
	ExpoIn:       expoIn,
	ExpoOut:      expoOut,
	ExpoInOut:    expoInOut,
	BackIn:       backIn,
	BackOut:      backOut,
	BackInOut:    backInOut,
	BounceIn:     bounceIn,
	BounceOut:    bounceOut,
	BounceInOut:  bounceInOut,
	ElasticIn:    elasticIn,
	ElasticOut:   elasticOut,
	ElasticInOut: elasticInOut,
}

// Ease evaluates easing kind at elapsed time t of duration d, going from b
// by c.
func Ease(kind EasingType, t, b, c, d float32) float32 {
	if kind < 0 || kind >= easingTypeCount {
		kind = LinearNone
	}
	return easeFuncs[kind](t, b, c, d)
}

func linear(t, b, c, d float32) float32 { return c*t/d + b }

func sineIn(t, b, c, d float32) float32 {
	return -c*math32.Cos(t/d*(math32.Pi/2)) + c + b
}

func sineOut(t, b, c, d float32) float32 {
	return c*math32.Sin(t/d*(math32.Pi/2)) + b
}

func sineInOut(t, b, c, d float32) float32 {
	return -c/2*(math32.Cos(math32.Pi*t/d)-1) + b
}

func circIn(t, b, c, d float32) float32 {
	t /= d
	return -c*(math32.Sqrt(1-t*t)-1) + b
}

func circOut(t, b, c, d float32) float32 {
	t = t/d - 1
	return c*math32.Sqrt(1-t*t) + b
}

func circInOut(t, b, c, d float32) float32 {
	t /= d / 2
	if t < 1 {
		return -c/2*(math32.Sqrt(1-t*t)-1) + b
	}
	t -= 2
	return c/2*(math32.Sqrt(1-t*t)+1) + b
}

func cubicIn(t, b, c, d float32) float32 {
	t /= d
	return c*t*t*t + b
}

func cubicOut(t, b, c, d float32) float32 {
	t = t/d - 1
	return c*(t*t*t+1) + b
}

func cubicInOut(t, b, c, d float32) float32 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t + b
	}
	t -= 2
	return c/2*(t*t*t+2) + b
}

func quadIn(t, b, c, d float32) float32 {
	t /= d
	return c*t*t + b
}

func quadOut(t, b, c, d float32) float32 {
	t /= d
	return -c*t*(t-2) + b
}

func quadInOut(t, b, c, d float32) float32 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t + b
	}
	return -c/2*((t-1)*(t-3)-1) + b
}

func expoIn(t, b, c, d float32) float32 {
	if t == 0 {
		return b
	}
	return c*math32.Pow(2, 10*(t/d-1)) + b
}

func expoOut(t, b, c, d float32) float32 {
	if t == d {
		return b + c
	}
	return c*(-math32.Pow(2, -10*t/d)+1) + b
}

func expoInOut(t, b, c, d float32) float32 {
	if t == 0 {
		return b
	}
	if t == d {
		return b + c
	}
	t /= d / 2
	if t < 1 {
		return c/2*math32.Pow(2, 10*(t-1)) + b
	}
	return c/2*(-math32.Pow(2, -10*(t-1))+2) + b
}

const backOvershoot = 1.70158

func backIn(t, b, c, d float32) float32 {
	const s = backOvershoot
	t /= d
	return c*t*t*((s+1)*t-s) + b
}

func backOut(t, b, c, d float32) float32 {
	const s = backOvershoot
	t = t/d - 1
	return c*(t*t*((s+1)*t+s)+1) + b
}

func backInOut(t, b, c, d float32) float32 {
	const s = backOvershoot * 1.525
	t /= d / 2
	if t < 1 {
		return c/2*(t*t*((s+1)*t-s)) + b
	}
	t -= 2
	return c/2*(t*t*((s+1)*t+s)+2) + b
}

func bounceOut(t, b, c, d float32) float32 {
	t /= d
	switch {
	case t < 1/2.75:
		return c*(7.5625*t*t) + b
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return c*(7.5625*t*t+0.75) + b
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return c*(7.5625*t*t+0.9375) + b
	default:
		t -= 2.625 / 2.75
		return c*(7.5625*t*t+0.984375) + b
	}
}

func bounceIn(t, b, c, d float32) float32 {
	return c - bounceOut(d-t, 0, c, d) + b
}

func bounceInOut(t, b, c, d float32) float32 {
	if t < d/2 {
		return bounceIn(t*2, 0, c, d)*0.5 + b
	}
	return bounceOut(t*2-d, 0, c, d)*0.5 + c*0.5 + b
}

func elasticIn(t, b, c, d float32) float32 {
	if t == 0 {
		return b
	}
	t /= d
	if t == 1 {
		return b + c
	}
	p := d * 0.3
	s := p / 4
	t--
	post := c * math32.Pow(2, 10*t)
	return -(post * math32.Sin((t*d-s)*(2*math32.Pi)/p)) + b
}

func elasticOut(t, b, c, d float32) float32 {
	if t == 0 {
		return b
	}
	t /= d
	if t == 1 {
		return b + c
	}
	p := d * 0.3
	s := p / 4
	return c*math32.Pow(2, -10*t)*math32.Sin((t*d-s)*(2*math32.Pi)/p) + c + b
}

func elasticInOut(t, b, c, d float32) float32 {
	if t == 0 {
		return b
	}
	t /= d / 2
	if t == 2 {
		return b + c
	}
	p := d * (0.3 * 1.5)
	s := p / 4
	t--
	if t < 0 {
		post := c * math32.Pow(2, 10*t)
		return -0.5*(post*math32.Sin((t*d-s)*(2*math32.Pi)/p)) + b
	}
	post := c * math32.Pow(2, -10*t)
	return post*math32.Sin((t*d-s)*(2*math32.Pi)/p)*0.5 + c + b
}

// Easing drives *Target from its value at creation to To over Duration
// seconds. When the time is up Target is set to exactly To and OnComplete,
// if any, runs once.
type Easing struct {
	Type       EasingType
	Target     *float32
	To         float32
	Duration   float32
	OnComplete func()

	from    float32
	elapsed float32
	done    bool
}

func NewEasing(kind EasingType, target *float32, to, duration float32, onComplete func()) *Easing {
	e := &Easing{
		Type:       kind,
		Target:     target,
		To:         to,
		Duration:   duration,
		OnComplete: onComplete,
	}
	if target != nil {
		e.from = *target
	}
	return e
}

// Update advances the easing and reports whether it has completed.
func (e *Easing) Update(dt float32) bool {
	if e.done {
		return true
	}
	if e.Target == nil {
		e.done = true
		return true
	}
	if e.elapsed >= e.Duration {
		*e.Target = e.To
		e.done = true
		return true
	}
	*e.Target = Ease(e.Type, e.elapsed, e.from, e.To-e.from, e.Duration)
	e.elapsed += dt
	return false
}

func (e *Easing) Done() bool {
	return e.done
}
