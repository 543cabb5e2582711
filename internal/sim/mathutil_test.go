package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRand_Reproducible(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for _i := 0; _i < 100; _i++ {
		assert.Equal(t, a.NextU64(), b.NextU64())
	}
	assert.NotEqual(t, NewRand(1).NextU64(), NewRand(2).NextU64())
}

func TestRand_Ranges(t *testing.T) {
	r := NewRand(0)
	for _i := 0; _i < 10000; _i++ {
		f := r.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)

		v := r.RangeF(-0.25, 0.25)
		assert.GreaterOrEqual(t, v, -0.25)
		assert.Less(t, v, 0.25)
	}
	assert.Equal(t, 3.0, r.RangeF(3, 3))
	assert.Equal(t, 3.0, r.RangeF(3, 1))
}
