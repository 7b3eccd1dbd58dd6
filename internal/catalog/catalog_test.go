package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := New()
	require.Len(t, c.Funds, 8)
	require.Len(t, c.Challenges, 8)

	require.Equal(t, "SBI Bluechip Fund", c.Funds[0].Name)
	require.Equal(t, "daily_quiz", c.Challenges[0].ID)
	require.Equal(t, 50, c.Challenges[0].XPReward)
}

func TestChallengeByID(t *testing.T) {
	c := New()

	ch, err := c.ChallengeByID("three_sips")
	require.NoError(t, err)
	require.Equal(t, 250, ch.XPReward)
	require.Equal(t, "investing", ch.Type)

	_, err = c.ChallengeByID("nope")
	require.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()

	fundPath := filepath.Join(dir, "funds.yaml")
	require.NoError(t, os.WriteFile(fundPath, []byte(`
funds:
  - symbol: TEST.BO
    name: Test Fund
    category: Large Cap
    min_sip: 250
    expense_ratio: 0.4
`), 0o644))

	challengePath := filepath.Join(dir, "challenges.yaml")
	require.NoError(t, os.WriteFile(challengePath, []byte(`
challenges:
  - id: custom_challenge
    title: Custom
    description: A custom challenge
    xp_reward: 10
    type: quiz
    difficulty: easy
`), 0o644))

	c, err := Load(fundPath, challengePath)
	require.NoError(t, err)
	require.Len(t, c.Funds, 1)
	require.Equal(t, "TEST.BO", c.Funds[0].Symbol)
	require.Len(t, c.Challenges, 1)
	require.Equal(t, "custom_challenge", c.Challenges[0].ID)
}

func TestLoadEmptyPathsKeepDefaults(t *testing.T) {
	c, err := Load("", "")
	require.NoError(t, err)
	require.Len(t, c.Funds, 8)
	require.Len(t, c.Challenges, 8)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/does/not/exist.yaml", "")
	require.Error(t, err)
}
