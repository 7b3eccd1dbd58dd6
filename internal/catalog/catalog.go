package catalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/finlearn/finlearn-api/internal/models"
	"gopkg.in/yaml.v3"
)

// ErrChallengeNotFound is returned when a challenge id is not in the catalog.
var ErrChallengeNotFound = errors.New("Challenge not found")

// Catalog holds the static fund and challenge definitions. Both lists are
// immutable after startup.
type Catalog struct {
	Funds      []models.Fund      `yaml:"funds"`
	Challenges []models.Challenge `yaml:"challenges"`
}

// New returns a catalog populated with the built-in fund and challenge sets.
func New() *Catalog {
	return &Catalog{
		Funds:      defaultFunds(),
		Challenges: defaultChallenges(),
	}
}

// Load returns the default catalog with either list replaced by the
// contents of the given YAML files. Empty paths keep the defaults.
func Load(fundPath, challengePath string) (*Catalog, error) {
	c := New()
	if fundPath != "" {
		var override struct {
			Funds []models.Fund `yaml:"funds"`
		}
		if err := readYAML(fundPath, &override); err != nil {
			return nil, fmt.Errorf("load fund catalog: %w", err)
		}
		if len(override.Funds) > 0 {
			c.Funds = override.Funds
		}
	}
	if challengePath != "" {
		var override struct {
			Challenges []models.Challenge `yaml:"challenges"`
		}
		if err := readYAML(challengePath, &override); err != nil {
			return nil, fmt.Errorf("load challenge catalog: %w", err)
		}
		if len(override.Challenges) > 0 {
			c.Challenges = override.Challenges
		}
	}
	return c, nil
}

func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

// ChallengeByID looks up a challenge definition.
func (c *Catalog) ChallengeByID(id string) (models.Challenge, error) {
	for _, ch := range c.Challenges {
		if ch.ID == id {
			return ch, nil
		}
	}
	return models.Challenge{}, ErrChallengeNotFound
}

func defaultFunds() []models.Fund {
	return []models.Fund{
		{Symbol: "0P0000XVQB.BO", Name: "SBI Bluechip Fund", Category: "Large Cap", MinSIP: 500, ExpenseRatio: 0.68},
		{Symbol: "0P0000XVQC.BO", Name: "HDFC Top 100 Fund", Category: "Large Cap", MinSIP: 500, ExpenseRatio: 0.72},
		{Symbol: "0P0000XVQD.BO", Name: "ICICI Prudential Value Discovery Fund", Category: "Value", MinSIP: 100, ExpenseRatio: 0.82},
		{Symbol: "0P0000XVQE.BO", Name: "Axis Midcap Fund", Category: "Mid Cap", MinSIP: 500, ExpenseRatio: 0.75},
		{Symbol: "0P0000XVQF.BO", Name: "Mirae Asset Large Cap Fund", Category: "Large Cap", MinSIP: 100, ExpenseRatio: 0.52},
		{Symbol: "0P0000XVQG.BO", Name: "Parag Parikh Flexi Cap Fund", Category: "Flexi Cap", MinSIP: 500, ExpenseRatio: 0.82},
		{Symbol: "0P0000XVQH.BO", Name: "Nippon India Small Cap Fund", Category: "Small Cap", MinSIP: 100, ExpenseRatio: 0.65},
		{Symbol: "0P0000XVQI.BO", Name: "Quant Small Cap Fund", Category: "Small Cap", MinSIP: 1000, ExpenseRatio: 0.66},
	}
}

func defaultChallenges() []models.Challenge {
	return []models.Challenge{
		{ID: "daily_quiz", Title: "Daily Quiz Challenge", Description: "Complete a financial literacy quiz", XPReward: 50, Type: "quiz", Difficulty: "easy"},
		{ID: "budget_tracker", Title: "Budget Tracker", Description: "Track your expenses for 3 days", XPReward: 75, Type: "budgeting", Difficulty: "medium"},
		{ID: "savings_goal", Title: "Savings Goal Setter", Description: "Create your first savings goal", XPReward: 100, Type: "savings", Difficulty: "easy"},
		{ID: "sip_calculator", Title: "SIP Calculator", Description: "Calculate your first SIP investment", XPReward: 100, Type: "investing", Difficulty: "medium"},
		{ID: "week_streak", Title: "Week Warrior", Description: "Maintain a 7-day activity streak", XPReward: 200, Type: "streak", Difficulty: "hard"},
		{ID: "perfect_quiz", Title: "Perfect Score", Description: "Score 100% on any quiz", XPReward: 150, Type: "quiz", Difficulty: "hard"},
		{ID: "five_goals", Title: "Goal Master", Description: "Create 5 savings goals", XPReward: 200, Type: "savings", Difficulty: "medium"},
		{ID: "three_sips", Title: "Investment Explorer", Description: "Calculate 3 different SIP investments", XPReward: 250, Type: "investing", Difficulty: "medium"},
	}
}
