package region

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/annel0/buildregion/internal/vec"
)

func TestUnits_Clamp(t *testing.T) {
	tests := []struct {
		name  string
		units Units
		in    float64
		want  float64
	}{
		{"whole positive", Whole, 3.7, 3},
		{"whole negative floors down", Whole, -0.2, -1},
		{"whole exact", Whole, 5, 5},
		{"half positive", Half, 3.7, 3.5},
		{"half below half", Half, 3.4, 3},
		{"half negative", Half, -0.2, -0.5},
		{"half exact", Half, -2.5, -2.5},
		{"nan maps to zero", Half, math.NaN(), 0},
		{"inf saturates", Whole, math.Inf(1), math.MaxFloat64},
		{"-inf saturates", Half, math.Inf(-1), -math.MaxFloat64},
		{"huge half stays", Half, math.MaxFloat64, math.MaxFloat64},
		{"huge negative half stays", Half, -math.MaxFloat64, -math.MaxFloat64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.units.Clamp(tt.in))
		})
	}
}

func TestUnits_ClampIdempotent(t *testing.T) {
	values := []float64{-1000.3, -3.75, -0.5, -0.1, 0, 0.1, 0.49, 0.5, 0.51, 1, 2.25, 7.999, 123456.78,
		math.MaxFloat64, -math.MaxFloat64, 1 << 53, -(1 << 53) - 0.5, 1<<52 + 0.5, math.Inf(1)}

	for _, u := range []Units{Whole, Half} {
		for _, v := range values {
			once := u.Clamp(v)
			assert.Equal(t, once, u.Clamp(once), "%s.Clamp(%v) не идемпотентен", u, v)
			assert.True(t, u.IsQuantized(once), "%s.Clamp(%v) = %v не кратно атому", u, v, once)

			atom := u.ClampAtom(v)
			assert.Equal(t, atom, u.ClampAtom(atom))
			assert.GreaterOrEqual(t, atom, u.Atom)
		}
	}
}

func TestUnits_ClampAtom(t *testing.T) {
	assert.Equal(t, 0.5, Half.ClampAtom(0))
	assert.Equal(t, 0.5, Half.ClampAtom(-7))
	assert.Equal(t, 0.5, Half.ClampAtom(0.7))
	assert.Equal(t, 1.0, Whole.ClampAtom(0.3))
	assert.Equal(t, 4.0, Whole.ClampAtom(4.9))
}

func TestUnits_ClampVec(t *testing.T) {
	got := Half.ClampVec(vec.Vec3Float{X: 1.2, Y: -1.2, Z: 3.5})
	assert.Equal(t, vec.Vec3Float{X: 1, Y: -1.5, Z: 3.5}, got)
}

func TestUnits_Format(t *testing.T) {
	assert.Equal(t, "3", Whole.Format(3.9))
	assert.Equal(t, "3.5", Half.Format(3.5))
	assert.Equal(t, "0", Half.Format(-0.0))
	assert.Equal(t, "(1, -0.5, 2)", Half.FormatVec(vec.Vec3Float{X: 1, Y: -0.5, Z: 2}))
}
