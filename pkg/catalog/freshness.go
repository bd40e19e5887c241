package catalog

import (
	"os"
	"time"
)

// DefaultMaxAgeDays is the staleness threshold: an artifact older than this
// many days is downloaded again.
const DefaultMaxAgeDays = 5

const day = 24 * time.Hour

// Decision is the outcome of the freshness check.
type Decision int

const (
	// Fresh means the cached artifact is used as-is.
	Fresh Decision = iota
	// Missing means there is no artifact and it must be downloaded.
	Missing
	// Stale means the artifact is older than the threshold.
	Stale
)

// String returns "fresh", "missing" or "stale".
func (d Decision) String() string {
	switch d {
	case Missing:
		return "missing"
	case Stale:
		return "stale"
	default:
		return "fresh"
	}
}

// NeedsFetch reports whether the artifact has to be downloaded.
func (d Decision) NeedsFetch() bool { return d != Fresh }

// AgeInDays returns now - modTime in fractional days.
func AgeInDays(modTime, now time.Time) float64 {
	return now.Sub(modTime).Seconds() / day.Seconds()
}

// Policy is the threshold rule deciding whether to re-fetch.
type Policy struct {
	// MaxAgeDays is the age beyond which the artifact is stale.
	// Zero selects DefaultMaxAgeDays.
	MaxAgeDays float64
}

// DefaultPolicy returns the 5-day policy.
func DefaultPolicy() Policy {
	return Policy{MaxAgeDays: DefaultMaxAgeDays}
}

func (p Policy) maxAge() float64 {
	if p.MaxAgeDays <= 0 {
		return DefaultMaxAgeDays
	}
	return p.MaxAgeDays
}

// Decide applies the policy: a missing artifact is fetched, one strictly
// older than the threshold is re-fetched, anything else is fresh.
func (p Policy) Decide(info os.FileInfo, exists bool, now time.Time) Decision {
	if !exists || info == nil {
		return Missing
	}
	if AgeInDays(info.ModTime(), now) > p.maxAge() {
		return Stale
	}
	return Fresh
}
