package store

import (
	"strings"
	"testing"

	"github.com/finlearn/finlearn-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestRegisterDefaults(t *testing.T) {
	s := New(true)

	user := s.Register("", "")
	require.NotEmpty(t, user.ID)
	require.True(t, strings.HasPrefix(user.Username, "User_"))
	require.Equal(t, 0, user.XP)
	require.Equal(t, 1, user.Level)
	require.Equal(t, 0, user.Streak)
	require.NotNil(t, user.Achievements)
	require.Empty(t, user.Achievements)
	require.NotNil(t, user.CompletedChallenges)
	require.Empty(t, user.CompletedChallenges)
	require.NotEmpty(t, user.CreatedAt)
}

func TestRegisterKeepsProvidedName(t *testing.T) {
	s := New(true)
	user := s.Register("alice", "alice@example.com")
	require.Equal(t, "alice", user.Username)
	require.Equal(t, "alice@example.com", user.Email)
}

func TestGetUnknownUser(t *testing.T) {
	s := New(true)
	_, err := s.Get("missing")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAwardXPDerivesLevel(t *testing.T) {
	s := New(true)
	user := s.Register("bob", "")

	cases := []struct {
		award     int
		wantXP    int
		wantLevel int
	}{
		{50, 50, 1},
		{50, 100, 2},
		{150, 250, 3},
		{250, 500, 4},
		{500, 1000, 5},
		{9000, 10000, 10},
	}
	for _, tc := range cases {
		got, _, err := s.AwardXP(user.ID, tc.award, 1)
		require.NoError(t, err)
		require.Equal(t, tc.wantXP, got.XP)
		require.Equal(t, tc.wantLevel, got.Level)
		require.Equal(t, models.LevelForXP(got.XP), got.Level)
	}
}

func TestAwardXPLevelUpFlag(t *testing.T) {
	s := New(true)
	user := s.Register("carol", "")

	_, levelUp, err := s.AwardXP(user.ID, 250, 1)
	require.NoError(t, err)
	require.True(t, levelUp)

	// Claiming the already-reached level reports no level-up.
	_, levelUp, err = s.AwardXP(user.ID, 0, 3)
	require.NoError(t, err)
	require.False(t, levelUp)
}

func TestAwardXPUnknownUser(t *testing.T) {
	s := New(true)
	_, _, err := s.AwardXP("missing", 100, 1)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestCompleteChallengeIdempotent(t *testing.T) {
	s := New(true)
	user := s.Register("dave", "")
	challenge := models.Challenge{ID: "daily_quiz", XPReward: 50}

	got, err := s.CompleteChallenge(user.ID, challenge)
	require.NoError(t, err)
	require.Equal(t, 50, got.XP)
	require.Equal(t, []string{"daily_quiz"}, got.CompletedChallenges)

	// Second completion is a no-op that still succeeds.
	got, err = s.CompleteChallenge(user.ID, challenge)
	require.NoError(t, err)
	require.Equal(t, 50, got.XP)
	require.Equal(t, []string{"daily_quiz"}, got.CompletedChallenges)
}

func TestCompleteChallengeLevelSync(t *testing.T) {
	s := New(true)
	user := s.Register("erin", "")

	got, err := s.CompleteChallenge(user.ID, models.Challenge{ID: "three_sips", XPReward: 250})
	require.NoError(t, err)
	require.Equal(t, 250, got.XP)
	require.Equal(t, 3, got.Level)
}

func TestCompleteChallengeStaleLevelMode(t *testing.T) {
	s := New(false)
	user := s.Register("frank", "")

	got, err := s.CompleteChallenge(user.ID, models.Challenge{ID: "three_sips", XPReward: 250})
	require.NoError(t, err)
	require.Equal(t, 250, got.XP)
	// Level intentionally left stale in compatibility mode.
	require.Equal(t, 1, got.Level)
}

func TestCompleteChallengeUnknownUser(t *testing.T) {
	s := New(true)
	_, err := s.CompleteChallenge("missing", models.Challenge{ID: "daily_quiz", XPReward: 50})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestHasCompleted(t *testing.T) {
	s := New(true)
	user := s.Register("gina", "")

	require.False(t, s.HasCompleted(user.ID, "daily_quiz"))
	require.False(t, s.HasCompleted("missing", "daily_quiz"))

	_, err := s.CompleteChallenge(user.ID, models.Challenge{ID: "daily_quiz", XPReward: 50})
	require.NoError(t, err)
	require.True(t, s.HasCompleted(user.ID, "daily_quiz"))
}

func TestLeaderboardOrderAndTies(t *testing.T) {
	s := New(true)
	first := s.Register("first", "")
	second := s.Register("second", "")
	third := s.Register("third", "")

	_, _, err := s.AwardXP(first.ID, 100, 1)
	require.NoError(t, err)
	_, _, err = s.AwardXP(second.ID, 200, 1)
	require.NoError(t, err)
	_, _, err = s.AwardXP(third.ID, 100, 1)
	require.NoError(t, err)

	entries := s.Leaderboard(10)
	require.Len(t, entries, 3)

	require.Equal(t, 1, entries[0].Rank)
	require.Equal(t, "second", entries[0].Username)
	// Equal XP keeps registration order.
	require.Equal(t, "first", entries[1].Username)
	require.Equal(t, "third", entries[2].Username)

	for i, e := range entries {
		require.Equal(t, i+1, e.Rank)
		if i > 0 {
			require.LessOrEqual(t, e.XP, entries[i-1].XP)
		}
	}
}

func TestLeaderboardLimit(t *testing.T) {
	s := New(true)
	for i := 0; i < 15; i++ {
		s.Register("", "")
	}

	require.Len(t, s.Leaderboard(5), 5)
	// Non-positive limits fall back to the default of 10.
	require.Len(t, s.Leaderboard(0), 10)
	require.Equal(t, 15, s.Count())
}

func TestReturnedUserIsACopy(t *testing.T) {
	s := New(true)
	user := s.Register("mallory", "")

	user.XP = 9999
	user.CompletedChallenges = append(user.CompletedChallenges, "fake")

	fresh, err := s.Get(user.ID)
	require.NoError(t, err)
	require.Equal(t, 0, fresh.XP)
	require.Empty(t, fresh.CompletedChallenges)
}
