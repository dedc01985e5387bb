package card

import (
	"time"

	"swipedeck/vmath"
)

// progress returns linear completion of an animation in [0,1]
func progress(start, now time.Time, d time.Duration) float64 {
	if d <= 0 {
		return 1
	}
	return vmath.Clamp(float64(now.Sub(start))/float64(d), 0, 1)
}

// blendPose interpolates translation, rotation and opacity of from toward to
func blendPose(from, to Visual, t float64) Visual {
	return Visual{
		TranslateX:  vmath.Lerp(from.TranslateX, to.TranslateX, t),
		RotationDeg: vmath.Lerp(from.RotationDeg, to.RotationDeg, t),
		Opacity:     vmath.Clamp(vmath.Lerp(from.Opacity, to.Opacity, t), 0, 1),
	}
}

// resetVisual is the snap-back animation at now
// Pose overshoots on the way home, the stamp fades on its own shorter clock
func (c *Card) resetVisual(now time.Time) Visual {
	pose := progress(c.motionStart, now, c.cfg.ResetDuration)
	v := blendPose(c.release, Identity(), vmath.EaseOutBack(pose))

	fade := progress(c.motionStart, now, c.cfg.OverlayFadeDuration)
	v.Overlay = Overlay{
		Label:   c.release.Overlay.Label,
		Opacity: vmath.Lerp(c.release.Overlay.Opacity, 0, vmath.EaseOut(fade)),
	}
	if v.Overlay.Opacity <= 0 {
		v.Overlay = Overlay{}
	}
	return v
}

// exitVisual is the dismiss animation at now, the stamp is hidden at commit
func (c *Card) exitVisual(now time.Time) Visual {
	t := progress(c.motionStart, now, c.cfg.ExitDuration)
	from := c.release
	from.Opacity = 1
	v := blendPose(from, Exit(c.exitDir, c.cfg), vmath.EaseIn(t))
	v.Overlay = Overlay{Label: c.release.Overlay.Label}
	return v
}
