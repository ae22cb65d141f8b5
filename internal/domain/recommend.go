package domain

import (
	"fmt"
	"sort"
	"time"
)

// Scoring weights. One consistent profile: a hot set outweighs everything
// else, novelty beats a warm set, peers are a nudge.
const (
	ScoreHotSet       = 40
	ScoreWarmSet      = 30
	ScoreNeverVisited = 25
	ScoreLongAbsence  = 20
	ScorePeersGoing   = 15

	// LongAbsenceDays is the staleness threshold for the revisit bonus.
	LongAbsenceDays = 30

	// DefaultTopN caps the ranked list when the caller doesn't.
	DefaultTopN = 5
)

// RecommendParams bundles the snapshot slices and query inputs for Recommend.
type RecommendParams struct {
	Gyms      []Gym
	Areas     []Area
	Schedules []Schedule
	Logs      []ActivityLog
	User      string
	Date      time.Time
	MajorArea MajorArea // empty means all areas
	TopN      int       // <= 0 means DefaultTopN
}

// Recommendation is one ranked gym with its score and human-readable
// reason tags.
type Recommendation struct {
	Gym          Gym       `json:"gym"`
	Score        int       `json:"score"`
	Reasons      []string  `json:"reasons"`
	LatestSet    time.Time `json:"latest_set,omitempty"`
	HasLatestSet bool      `json:"has_latest_set"`
	Peers        int       `json:"peers"`
}

// Recommend ranks gyms worth visiting on p.Date for p.User.
//
// Per gym: freshness tier (hot/warm set) plus peers-planning plus
// novelty/staleness bonuses, with gyms the user already climbed since the
// latest reset excluded entirely. Gyms with no signals at all (zero score,
// zero reasons) are excluded. Sorted by score desc, then latest set date
// desc, then gym name asc, truncated to TopN.
func Recommend(p RecommendParams) []Recommendation {
	ref := DateOnly(p.Date)
	topN := p.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	candidates := make([]Recommendation, 0, len(p.Gyms))

	for _, gym := range p.Gyms {
		if p.MajorArea != "" && ResolveMajorArea(gym.AreaTag, p.Areas) != p.MajorArea {
			continue
		}

		set := LatestSetInfo(gym.Name, p.Schedules, ref)
		lastVisit, visited := LastVisit(p.User, gym.Name, p.Logs)

		// Already climbed the current set: nothing new to try.
		if ClimbedSinceReset(lastVisit, visited, set.LatestEnd, set.HasData) {
			continue
		}

		rec := Recommendation{
			Gym:          gym,
			LatestSet:    set.LatestEnd,
			HasLatestSet: set.HasData,
		}

		switch set.Tier() {
		case TierHot:
			rec.Score += ScoreHotSet
			rec.Reasons = append(rec.Reasons, fmt.Sprintf("fresh set %s", daysAgo(set.DaysSince)))
		case TierWarm:
			rec.Score += ScoreWarmSet
			rec.Reasons = append(rec.Reasons, fmt.Sprintf("recent set %s", daysAgo(set.DaysSince)))
		}

		if peers := PeersPlanning(gym.Name, ref, p.User, p.Logs); peers > 0 {
			rec.Score += ScorePeersGoing
			rec.Peers = peers
			rec.Reasons = append(rec.Reasons, fmt.Sprintf("%d peer(s) planning to go", peers))
		}

		if !visited {
			rec.Score += ScoreNeverVisited
			rec.Reasons = append(rec.Reasons, "never visited")
		} else if days := DaysBetween(lastVisit, ref); days >= LongAbsenceDays {
			rec.Score += ScoreLongAbsence
			rec.Reasons = append(rec.Reasons, fmt.Sprintf("last visit %d days ago", days))
		}

		// Only gyms with at least one reason make the list.
		if len(rec.Reasons) == 0 {
			continue
		}

		candidates = append(candidates, rec)
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		// Prefer the most recently reset gym; gyms without schedule data
		// carry the zero time and sort last within the tie group.
		if !a.LatestSet.Equal(b.LatestSet) {
			return a.LatestSet.After(b.LatestSet)
		}
		return a.Gym.Name < b.Gym.Name
	})

	if len(candidates) > topN {
		candidates = candidates[:topN]
	}

	return candidates
}

func daysAgo(days int) string {
	if days == 0 {
		return "today"
	}
	if days == 1 {
		return "yesterday"
	}
	return fmt.Sprintf("%d days ago", days)
}
