package domain

import "time"

// FreshnessTier classifies how recently a gym's latest set ended.
type FreshnessTier string

const (
	TierHot  FreshnessTier = "hot"  // set ended 0-7 days ago
	TierWarm FreshnessTier = "warm" // set ended 8-14 days ago
	TierNone FreshnessTier = ""
)

// SetInfo describes a gym's most recent completed set relative to a
// reference date. HasData is false when the gym has no schedule that
// ended on or before the reference date; that is not an error.
type SetInfo struct {
	LatestEnd time.Time
	DaysSince int
	HasData   bool
}

// Tier returns the freshness tier for the set, or TierNone without data.
func (i SetInfo) Tier() FreshnessTier {
	if !i.HasData {
		return TierNone
	}
	return ClassifyFreshness(i.DaysSince)
}

// LatestSetInfo finds the most recent schedule for gym whose end date is on
// or before refDate and reports how many whole days have passed since.
func LatestSetInfo(gym string, schedules []Schedule, refDate time.Time) SetInfo {
	ref := DateOnly(refDate)

	var info SetInfo
	for _, s := range schedules {
		if s.GymName != gym {
			continue
		}
		end := DateOnly(s.EndDate)
		if end.After(ref) {
			continue
		}
		if !info.HasData || end.After(info.LatestEnd) {
			info.LatestEnd = end
			info.HasData = true
		}
	}

	if info.HasData {
		info.DaysSince = DaysBetween(info.LatestEnd, ref)
	}

	return info
}

// ClassifyFreshness buckets days-since-set into a tier.
//
//	0-7 days:  hot
//	8-14 days: warm
//	older:     none
func ClassifyFreshness(daysSince int) FreshnessTier {
	switch {
	case daysSince >= 0 && daysSince <= 7:
		return TierHot
	case daysSince >= 8 && daysSince <= 14:
		return TierWarm
	default:
		return TierNone
	}
}
