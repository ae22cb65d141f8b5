package domain

import (
	"strings"
	"testing"
)

func testGyms() []Gym {
	return []Gym{
		{Name: "Boulder Base", AreaTag: "shinjuku"},
		{Name: "Crux Hall", AreaTag: "shibuya"},
		{Name: "Slab City", AreaTag: "osaka"},
	}
}

func testAreas() []Area {
	return []Area{
		{Tag: "shinjuku", MajorArea: MajorAreaLocal},
		{Tag: "shibuya", MajorArea: MajorAreaLocal},
		{Tag: "osaka", MajorArea: MajorAreaRegional},
	}
}

// Round-trip scenario: user A climbed gym X after its reset, user B never
// visited. X must vanish from A's list and rank for B with novelty and
// freshness reasons.
func TestRecommend_ExcludesClimbedSet(t *testing.T) {
	gyms := []Gym{{Name: "X"}}
	schedules := []Schedule{
		{GymName: "X", StartDate: d("2024-02-25"), EndDate: d("2024-02-28")},
	}
	logs := []ActivityLog{
		{Date: d("2024-03-01"), GymName: "X", UserName: "A", Type: LogTypeCompleted},
	}

	forA := Recommend(RecommendParams{
		Gyms: gyms, Schedules: schedules, Logs: logs,
		User: "A", Date: d("2024-03-10"),
	})
	if len(forA) != 0 {
		t.Fatalf("gym climbed since reset must be excluded, got %d recommendations", len(forA))
	}

	forB := Recommend(RecommendParams{
		Gyms: gyms, Schedules: schedules, Logs: logs,
		User: "B", Date: d("2024-03-10"),
	})
	if len(forB) != 1 {
		t.Fatalf("expected 1 recommendation for B, got %d", len(forB))
	}

	rec := forB[0]
	if !hasReason(rec, "never visited") {
		t.Errorf("missing never-visited reason, got %v", rec.Reasons)
	}
	// 2024-03-10 is 11 days after the set end: warm tier.
	if !hasReason(rec, "recent set") {
		t.Errorf("missing freshness reason, got %v", rec.Reasons)
	}
	if want := ScoreWarmSet + ScoreNeverVisited; rec.Score != want {
		t.Errorf("score = %d, want %d", rec.Score, want)
	}
}

func TestRecommend_ZeroSignalGymExcluded(t *testing.T) {
	// Stale set (19 days), visit before the set end but recent enough to
	// skip the absence bonus, no peers: no reasons at all.
	gyms := []Gym{{Name: "Boulder Base"}}
	schedules := []Schedule{
		{GymName: "Boulder Base", StartDate: d("2024-02-16"), EndDate: d("2024-02-20")},
	}
	logs := []ActivityLog{
		{Date: d("2024-02-15"), GymName: "Boulder Base", UserName: "A", Type: LogTypeCompleted},
	}

	got := Recommend(RecommendParams{
		Gyms: gyms, Schedules: schedules, Logs: logs,
		User: "A", Date: d("2024-03-10"),
	})
	if len(got) != 0 {
		t.Fatalf("zero-signal gym must be excluded, got %+v", got)
	}
}

func TestRecommend_OrderAndTruncation(t *testing.T) {
	gyms := []Gym{
		{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"},
		{Name: "E"}, {Name: "F"}, {Name: "G"},
	}
	// Stagger set ends so scores and tie-breaks differ.
	schedules := []Schedule{
		{GymName: "A", StartDate: d("2024-03-06"), EndDate: d("2024-03-08")}, // hot, 2d
		{GymName: "B", StartDate: d("2024-03-03"), EndDate: d("2024-03-05")}, // hot, 5d
		{GymName: "C", StartDate: d("2024-02-26"), EndDate: d("2024-02-28")}, // warm, 11d
	}

	got := Recommend(RecommendParams{
		Gyms: gyms, Schedules: schedules,
		User: "me", Date: d("2024-03-10"), TopN: 5,
	})

	if len(got) != 5 {
		t.Fatalf("expected top 5, got %d", len(got))
	}

	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if prev.Score < cur.Score {
			t.Fatalf("ranking out of order at %d: %d < %d", i, prev.Score, cur.Score)
		}
		if prev.Score == cur.Score && cur.LatestSet.After(prev.LatestSet) {
			t.Fatalf("tie-break out of order at %d: %v before %v", i, prev.LatestSet, cur.LatestSet)
		}
	}

	// Everything is unvisited: A and B share the hot bonus, A's newer set
	// breaks the tie.
	if got[0].Gym.Name != "A" || got[1].Gym.Name != "B" {
		t.Errorf("hot gyms should lead, got %s, %s", got[0].Gym.Name, got[1].Gym.Name)
	}
}

func TestRecommend_SocialAndAbsenceSignals(t *testing.T) {
	gyms := []Gym{{Name: "Boulder Base"}}
	logs := []ActivityLog{
		{Date: d("2024-01-15"), GymName: "Boulder Base", UserName: "me", Type: LogTypeCompleted},
		{Date: d("2024-03-10"), GymName: "Boulder Base", UserName: "ben", Type: LogTypePlanned},
		{Date: d("2024-03-10"), GymName: "Boulder Base", UserName: "chie", Type: LogTypePlanned},
	}

	got := Recommend(RecommendParams{
		Gyms: gyms, Logs: logs,
		User: "me", Date: d("2024-03-10"),
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(got))
	}

	rec := got[0]
	if rec.Peers != 2 {
		t.Errorf("peers = %d, want 2", rec.Peers)
	}
	// 55 days since the last visit plus two peers planning.
	if want := ScoreLongAbsence + ScorePeersGoing; rec.Score != want {
		t.Errorf("score = %d, want %d", rec.Score, want)
	}
	if !hasReason(rec, "last visit 55 days ago") {
		t.Errorf("missing absence reason, got %v", rec.Reasons)
	}
	if !hasReason(rec, "2 peer(s) planning") {
		t.Errorf("missing peers reason, got %v", rec.Reasons)
	}
}

func TestRecommend_MajorAreaFilter(t *testing.T) {
	got := Recommend(RecommendParams{
		Gyms: testGyms(), Areas: testAreas(),
		User: "me", Date: d("2024-03-10"),
		MajorArea: MajorAreaRegional,
	})

	if len(got) != 1 || got[0].Gym.Name != "Slab City" {
		t.Fatalf("area filter failed, got %+v", got)
	}
}

func TestRecommend_UnresolvedAreaTagDegrades(t *testing.T) {
	gyms := []Gym{{Name: "Mystery Gym", AreaTag: "nowhere"}}

	// Unresolved tags only match the empty (all-areas) filter.
	if got := Recommend(RecommendParams{
		Gyms: gyms, Areas: testAreas(),
		User: "me", Date: d("2024-03-10"), MajorArea: MajorAreaLocal,
	}); len(got) != 0 {
		t.Errorf("unassigned gym matched a major-area filter: %+v", got)
	}

	if got := Recommend(RecommendParams{
		Gyms: gyms, Areas: testAreas(),
		User: "me", Date: d("2024-03-10"),
	}); len(got) != 1 {
		t.Errorf("unassigned gym missing from the unfiltered list")
	}
}

func TestRecommend_EmptyInputs(t *testing.T) {
	got := Recommend(RecommendParams{User: "me", Date: d("2024-03-10")})
	if len(got) != 0 {
		t.Fatalf("empty inputs must yield an empty ranking, got %d", len(got))
	}
}

func hasReason(rec Recommendation, substr string) bool {
	for _, r := range rec.Reasons {
		if strings.Contains(r, substr) {
			return true
		}
	}
	return false
}
