package quota

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/memoria/internal/common"
	"github.com/stretchr/testify/assert"
)

const mb = int64(1 << 20)

func TestCheckLimit_Property(t *testing.T) {
	values := []int64{0, 1, 5 * mb, 190 * mb, 200 * mb, 201 * mb}
	for _, used := range values {
		for _, limit := range values {
			for _, add := range values {
				d := CheckLimit(used, limit, add)
				assert.Equal(t, used+add <= limit, d.Allowed, "used=%d limit=%d add=%d", used, limit, add)
				assert.Equal(t, used+add, d.NewTotal)
				assert.GreaterOrEqual(t, d.Remaining, int64(0))
			}
		}
	}
}

func TestCheckLimit_Scenario190Of200(t *testing.T) {
	d := CheckLimit(190*mb, 200*mb, 15*mb)
	assert.False(t, d.Allowed)
	assert.Equal(t, 10*mb, d.Remaining)
	assert.Equal(t, 205*mb, d.NewTotal)
}

func TestCheckLimit_ExactFit(t *testing.T) {
	d := CheckLimit(190*mb, 200*mb, 10*mb)
	assert.True(t, d.Allowed)
	assert.Equal(t, 200*mb, d.NewTotal)
}

func TestCheckLimit_NegativeRejected(t *testing.T) {
	assert.False(t, CheckLimit(10, 100, -5).Allowed)
}

func TestSumSizes_AlbumScenario(t *testing.T) {
	total := SumSizes([]int64{2 * mb, 3 * mb, 1 * mb})
	assert.Equal(t, 6*mb, total)
	assert.False(t, CheckLimit(195*mb, 200*mb, total).Allowed)
	assert.Zero(t, SumSizes(nil))
}

func TestReclaim(t *testing.T) {
	assert.Equal(t, int64(70), Reclaim(100, 30))
	assert.Equal(t, int64(0), Reclaim(100, 130))
	assert.Equal(t, int64(0), Reclaim(0, 0))
}

func TestExceeded(t *testing.T) {
	err := Exceeded(190*mb, 200*mb, 15*mb)
	assert.True(t, errors.Is(err, common.ErrQuotaExceeded))
	var qe *common.QuotaError
	assert.True(t, errors.As(err, &qe))
	assert.Equal(t, 15*mb, qe.Attempted)
}
