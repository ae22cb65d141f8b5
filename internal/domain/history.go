package domain

import "time"

// LastVisit returns the date of the user's most recent completed visit to
// gym. The second return is false when no completed visit exists.
func LastVisit(user, gym string, logs []ActivityLog) (time.Time, bool) {
	var last time.Time
	found := false

	for _, l := range logs {
		if !l.IsCompleted() || l.UserName != user || l.GymName != gym {
			continue
		}
		d := DateOnly(l.Date)
		if !found || d.After(last) {
			last = d
			found = true
		}
	}

	return last, found
}

// ClimbedSinceReset reports whether the user has already climbed the gym's
// current set: true iff both dates exist and the last visit is on or after
// the latest set end.
func ClimbedSinceReset(lastVisit time.Time, visited bool, latestSet time.Time, hasSet bool) bool {
	if !visited || !hasSet {
		return false
	}
	return !DateOnly(lastVisit).Before(DateOnly(latestSet))
}

// PeersPlanning counts planned-visit rows for gym on date by users other
// than excludeUser. Rows are counted as-is: a peer who logged the same day
// twice counts twice. Deduplication by peer is deliberately not applied.
func PeersPlanning(gym string, date time.Time, excludeUser string, logs []ActivityLog) int {
	count := 0
	for _, l := range logs {
		if !l.IsPlanned() || l.GymName != gym || l.UserName == excludeUser {
			continue
		}
		if SameDay(l.Date, date) {
			count++
		}
	}
	return count
}
