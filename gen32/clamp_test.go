package gen32

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampLen(t *testing.T) {
	assert.Equal(t, uint32(0), clampLen(0))
	assert.Equal(t, uint32(17), clampLen(17))
	if strconv.IntSize == 64 {
		sh := uint(34) // non-constant shift: a constant 1<<34 overflows int on 32-bit builds
		assert.Equal(t, uint32(math.MaxUint32), clampLen(1<<sh))
	}
}
