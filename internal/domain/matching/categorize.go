package matching

import "fmt"

type Tier string

const (
	TierNow  Tier = "now"
	TierNext Tier = "next"
)

const (
	DefaultNowThreshold  = 0.85
	DefaultNextThreshold = 0.60
)

type Thresholds struct {
	Now  float64
	Next float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{Now: DefaultNowThreshold, Next: DefaultNextThreshold}
}

func (t Thresholds) Validate() error {
	if t.Next < 0 || t.Now > 1 || t.Next > t.Now {
		return fmt.Errorf("invalid match thresholds: next=%v now=%v", t.Next, t.Now)
	}
	return nil
}

// Categorize buckets a score into a tier. ok is false when the score is
// below the next threshold and the job should be excluded.
func (t Thresholds) Categorize(score float64) (tier Tier, ok bool) {
	switch {
	case score >= t.Now:
		return TierNow, true
	case score >= t.Next:
		return TierNext, true
	default:
		return "", false
	}
}

func Categorize(score float64) (Tier, bool) {
	return DefaultThresholds().Categorize(score)
}
