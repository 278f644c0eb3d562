package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Float_Floor(t *testing.T) {
	assert.Equal(t, Vec3{X: -1, Y: 64, Z: 0}, Vec3Float{X: -0.5, Y: 64.9, Z: 0}.Floor())
}

func TestVec3Float_Arithmetic(t *testing.T) {
	a := Vec3Float{X: 1, Y: 2, Z: 2}
	assert.Equal(t, 3.0, a.Length())
	assert.Equal(t, Vec3Float{X: 2, Y: 4, Z: 4}, a.Add(a))
	assert.Equal(t, Zero3, a.Sub(a))
	assert.Equal(t, Vec3Float{X: 0.5, Y: 1, Z: 1}, a.Mul(0.5))
	assert.Equal(t, 3.0, Zero3.DistanceTo(a))
	assert.Equal(t, "(1, 2, 2)", a.String())
}

func TestVec3(t *testing.T) {
	p := Vec3{X: 1, Y: -2, Z: 3}
	assert.Equal(t, Vec3{X: 2, Y: -4, Z: 6}, p.Add(p))
	assert.True(t, p.Equals(Vec3{X: 1, Y: -2, Z: 3}))
	assert.Equal(t, Vec3Float{X: 1, Y: -2, Z: 3}, p.ToFloat())
	assert.Equal(t, "(1, -2, 3)", p.String())
}
