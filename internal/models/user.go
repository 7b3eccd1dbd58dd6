package models

// User represents a registered learner and their gamification state.
type User struct {
	ID                  string   `json:"id"`
	Username            string   `json:"username"`
	Email               string   `json:"email"`
	CreatedAt           string   `json:"created_at"`
	XP                  int      `json:"xp"`
	Level               int      `json:"level"`
	Streak              int      `json:"streak"`
	Achievements        []string `json:"achievements"`
	CompletedChallenges []string `json:"completed_challenges"`
}

// LevelThresholds maps XP cutoffs to levels 1..10: the level is the
// highest 1-based index whose threshold the XP meets or exceeds.
var LevelThresholds = []int{0, 100, 250, 500, 1000, 2000, 3500, 5000, 7500, 10000}

// LevelForXP derives the level for a given XP total.
func LevelForXP(xp int) int {
	level := 1
	for i, threshold := range LevelThresholds {
		if xp >= threshold {
			level = i + 1
		}
	}
	return level
}

// LeaderboardEntry is a user's position on the leaderboard, recomputed
// per request and never stored.
type LeaderboardEntry struct {
	Rank              int    `json:"rank"`
	Username          string `json:"username"`
	XP                int    `json:"xp"`
	Level             int    `json:"level"`
	AchievementsCount int    `json:"achievements_count"`
}
