package card

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"swipedeck/config"
)

func TestCompute(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name     string
		dx       float64
		rotation float64
		label    Label
		opacity  float64
	}{
		{"Centred", 0, 0, LabelNone, 0},
		{"Inside epsilon right", 10, 0.5, LabelNone, 0},
		{"Inside epsilon left", -10, -0.5, LabelNone, 0},
		{"Light like", 50, 2.5, LabelLike, 0.5},
		{"Light nope", -50, -2.5, LabelNope, 0.5},
		{"At threshold", 100, 5, LabelLike, 1},
		{"Past threshold saturates", 160, 8, LabelLike, 1},
		{"Far left saturates", -400, -20, LabelNope, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Compute(tt.dx, cfg)
			assert.Equal(t, tt.dx, v.TranslateX)
			assert.InDelta(t, tt.rotation, v.RotationDeg, 1e-9)
			assert.Equal(t, tt.label, v.Overlay.Label)
			assert.InDelta(t, tt.opacity, v.Overlay.Opacity, 1e-9)
			assert.Equal(t, 1.0, v.Opacity)
		})
	}
}

func TestLabelTokens(t *testing.T) {
	assert.Equal(t, "LIKE", LabelLike.String())
	assert.Equal(t, "NOPE", LabelNope.String())
	assert.Empty(t, LabelNone.String())
	assert.NotEmpty(t, LabelLike.Color())
	assert.NotEqual(t, LabelLike.Color(), LabelNope.Color())
}

func TestExitTransform(t *testing.T) {
	cfg := config.Default()

	right := Exit(DirRight, cfg)
	assert.Equal(t, 500.0, right.TranslateX)
	assert.Equal(t, 30.0, right.RotationDeg)
	assert.Zero(t, right.Opacity)

	left := Exit(DirLeft, cfg)
	assert.Equal(t, -500.0, left.TranslateX)
	assert.Equal(t, -30.0, left.RotationDeg)
}
