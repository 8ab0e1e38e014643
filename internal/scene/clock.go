package scene

import (
	"time"

	"github.com/chewxy/math32"
)

type ClockUnit int

const (
	ClockHour ClockUnit = iota
	ClockMinute
	ClockSecond
)

// ClockHand turns its entity's Transform like a hand of an analog clock
// showing local time. Zero degrees points at twelve.
type ClockHand struct {
	Unit ClockUnit
}

// ClockSystem sets the rotation of every ClockHand. Now defaults to
// time.Now.
type ClockSystem struct {
	Now func() time.Time
}

func (c ClockSystem) Update(w World, dt float32) {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	day := timeOfDay(now())
	Each2[Transform, ClockHand](w, func(_ Entity, t *Transform, h *ClockHand) {
		t.Rotation = handAngle(day, h.Unit)
	})
}

// timeOfDay returns the fraction of the day elapsed, in [0,1).
func timeOfDay(t time.Time) float32 {
	hour, minute, second := t.Clock()
	ms := t.Nanosecond() / 1e6
	return (float32(hour*3600+minute*60+second) + float32(ms)/1000) / 86400
}

func handAngle(day float32, unit ClockUnit) float32 {
	switch unit {
	case ClockHour:
		_, f := math32.Modf(day * 2)
		return f * 360
	case ClockMinute:
		_, f := math32.Modf(day * 24)
		return f * 360
	default:
		_, f := math32.Modf(day * 1440)
		return f * 360
	}
}
