package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedCycles(t *testing.T) {
	r := Fixed(6, 2, 9)
	assert.Equal(t, []int{6, 2, 6, 6, 2}, []int{r.Roll(), r.Roll(), r.Roll(), r.Roll(), r.Roll()})
}

func TestFixedDefaultsToOne(t *testing.T) {
	assert.Equal(t, 1, Fixed().Roll())
}

func TestClockStaysInRange(t *testing.T) {
	r := Clock()
	for i := 0; i < 1000; i++ {
		f := r.Roll()
		assert.GreaterOrEqual(t, f, 1)
		assert.LessOrEqual(t, f, Faces)
	}
}
