package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var created = time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)

func TestExpirationDate(t *testing.T) {
	for n := 0; n <= 5; n++ {
		want := created.AddDate(20+10*n, 0, 0)
		assert.Equal(t, want, ExpirationDate(created, n), "extensions=%d", n)
	}
	assert.Equal(t, ExpirationDate(created, 0), ExpirationDate(created, -3))
}

func TestExpirationDate_KnownValues(t *testing.T) {
	c := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2045, 6, 1, 0, 0, 0, 0, time.UTC), ExpirationDate(c, 0))
	assert.Equal(t, time.Date(2065, 6, 1, 0, 0, 0, 0, time.UTC), ExpirationDate(c, 2))
}

func TestIsExpired(t *testing.T) {
	exp := ExpirationDate(created, 0)
	assert.False(t, IsExpired(exp, exp))
	assert.False(t, IsExpired(exp, exp.Add(-time.Second)))
	assert.True(t, IsExpired(exp, exp.Add(time.Nanosecond)))
}

func TestDaysRemaining(t *testing.T) {
	exp := time.Date(2030, 1, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, DaysRemaining(exp, exp))
	assert.Equal(t, 0, DaysRemaining(exp, exp.Add(48*time.Hour)))
	assert.Equal(t, 1, DaysRemaining(exp, exp.Add(-time.Hour)))
	assert.Equal(t, 2, DaysRemaining(exp, exp.Add(-25*time.Hour)))
}

func TestStatusAt(t *testing.T) {
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		now    time.Time
		bucket Bucket
		label  string
	}{
		{"expired", exp.Add(time.Minute), BucketExpired, "expired"},
		{"one day", exp.Add(-12 * time.Hour), BucketDays, "1 day"},
		{"thirty days", exp.AddDate(0, 0, -30), BucketDays, "30 days"},
		{"thirty one days", exp.AddDate(0, 0, -31), BucketMonths, "1 month"},
		{"ninety days", exp.AddDate(0, 0, -90), BucketMonths, "3 months"},
		{"exactly a year", exp.AddDate(0, 0, -365), BucketYears, "1 year"},
		{"twenty years", exp.AddDate(-20, 0, 0), BucketYears, "20 years"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := StatusAt(exp, tt.now)
			assert.Equal(t, tt.bucket, s.Bucket)
			assert.Equal(t, tt.label, s.Label)
		})
	}
}
