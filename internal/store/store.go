package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/finlearn/finlearn-api/internal/models"
	"github.com/google/uuid"
)

// ErrUserNotFound is returned for unknown user ids. The message is the
// one clients of the API see.
var ErrUserNotFound = errors.New("User not found")

const defaultLeaderboardLimit = 10

// Store owns all user records. All mutation goes through its mutex, so
// concurrent XP awards for the same user cannot lose updates.
type Store struct {
	mu    sync.RWMutex
	users map[string]*models.User
	// ids in registration order; leaderboard ties keep this order.
	order []string

	// When true, completing a challenge re-derives the level together
	// with the XP change. When false the level is left as-is, matching
	// the historical behavior some clients may depend on.
	syncLevelOnChallenge bool
}

// New creates an empty store.
func New(syncLevelOnChallenge bool) *Store {
	return &Store{
		users:                make(map[string]*models.User),
		syncLevelOnChallenge: syncLevelOnChallenge,
	}
}

// Register creates a new user. A missing username defaults to a name
// derived from the generated id.
func (s *Store) Register(username, email string) *models.User {
	id := uuid.NewString()
	if username == "" {
		username = fmt.Sprintf("User_%s", id[:8])
	}

	user := &models.User{
		ID:                  id,
		Username:            username,
		Email:               email,
		CreatedAt:           time.Now().Format(time.RFC3339),
		XP:                  0,
		Level:               1,
		Streak:              0,
		Achievements:        []string{},
		CompletedChallenges: []string{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[id] = user
	s.order = append(s.order, id)
	return copyUser(user)
}

// Get returns a copy of the user record.
func (s *Store) Get(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return copyUser(user), nil
}

// AwardXP adds XP to a user and re-derives the level from the threshold
// table in the same operation. levelUp reports whether the new level
// exceeds the caller-supplied previous level claim.
func (s *Store) AwardXP(id string, amount, previousLevel int) (*models.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, false, ErrUserNotFound
	}

	user.XP += amount
	user.Level = models.LevelForXP(user.XP)

	return copyUser(user), user.Level > previousLevel, nil
}

// CompleteChallenge marks a challenge completed and credits its reward.
// Completing an already-completed challenge is a no-op that still
// succeeds with the unchanged record.
func (s *Store) CompleteChallenge(userID string, challenge models.Challenge) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}

	for _, done := range user.CompletedChallenges {
		if done == challenge.ID {
			return copyUser(user), nil
		}
	}

	user.CompletedChallenges = append(user.CompletedChallenges, challenge.ID)
	user.XP += challenge.XPReward
	if s.syncLevelOnChallenge {
		user.Level = models.LevelForXP(user.XP)
	}
	return copyUser(user), nil
}

// HasCompleted reports whether the user exists and has completed the
// given challenge.
func (s *Store) HasCompleted(userID, challengeID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[userID]
	if !ok {
		return false
	}
	for _, done := range user.CompletedChallenges {
		if done == challengeID {
			return true
		}
	}
	return false
}

// Leaderboard ranks users by XP descending. Ties keep registration order
// and ranks are dense, starting at 1.
func (s *Store) Leaderboard(limit int) []models.LeaderboardEntry {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	s.mu.RLock()
	snapshot := make([]models.User, 0, len(s.order))
	for _, id := range s.order {
		snapshot = append(snapshot, *s.users[id])
	}
	s.mu.RUnlock()

	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].XP > snapshot[j].XP
	})

	if len(snapshot) > limit {
		snapshot = snapshot[:limit]
	}

	entries := make([]models.LeaderboardEntry, 0, len(snapshot))
	for i, user := range snapshot {
		entries = append(entries, models.LeaderboardEntry{
			Rank:              i + 1,
			Username:          user.Username,
			XP:                user.XP,
			Level:             user.Level,
			AchievementsCount: len(user.Achievements),
		})
	}
	return entries
}

// Count returns the number of registered users.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

func copyUser(u *models.User) *models.User {
	c := *u
	c.Achievements = append([]string{}, u.Achievements...)
	c.CompletedChallenges = append([]string{}, u.CompletedChallenges...)
	return &c
}
