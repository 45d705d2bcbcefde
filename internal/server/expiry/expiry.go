// Package expiry computes how long a memory stays online. Nothing here is
// stored except the deadline itself; every other value is derived.
package expiry

import (
	"fmt"
	"math"
	"time"
)

const (
	BaseYears      = 20
	ExtensionYears = 10
)

// ExpirationDate returns createdAt + BaseYears + extensions*ExtensionYears.
func ExpirationDate(createdAt time.Time, extensions int) time.Time {
	if extensions < 0 {
		extensions = 0
	}
	return createdAt.AddDate(BaseYears+extensions*ExtensionYears, 0, 0)
}

// IsExpired reports whether the deadline is strictly before now.
func IsExpired(expiresAt, now time.Time) bool {
	return expiresAt.Before(now)
}

// DaysRemaining rounds up partial days and never goes below zero.
func DaysRemaining(expiresAt, now time.Time) int {
	if !now.Before(expiresAt) {
		return 0
	}
	return int(math.Ceil(expiresAt.Sub(now).Hours() / 24))
}

type Bucket string

const (
	BucketExpired Bucket = "expired"
	BucketDays    Bucket = "days"
	BucketMonths  Bucket = "months"
	BucketYears   Bucket = "years"
)

// Status is the human-readable state of a deadline.
type Status struct {
	Bucket        Bucket
	DaysRemaining int
	Label         string
}

// StatusAt buckets the remaining time: expired, up to 30 days, under a year
// (in months), or a year and more (in years).
func StatusAt(expiresAt, now time.Time) Status {
	if IsExpired(expiresAt, now) {
		return Status{Bucket: BucketExpired, Label: "expired"}
	}
	days := DaysRemaining(expiresAt, now)
	switch {
	case days <= 30:
		return Status{Bucket: BucketDays, DaysRemaining: days, Label: plural(days, "day")}
	case days < 365:
		return Status{Bucket: BucketMonths, DaysRemaining: days, Label: plural(days/30, "month")}
	default:
		return Status{Bucket: BucketYears, DaysRemaining: days, Label: plural(days/365, "year")}
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
