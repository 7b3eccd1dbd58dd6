package models

// Challenge is a static catalog entry describing one gamified task.
type Challenge struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	XPReward    int    `json:"xp_reward" yaml:"xp_reward"`
	Type        string `json:"type" yaml:"type"`
	Difficulty  string `json:"difficulty" yaml:"difficulty"`
}

// ChallengeStatus is a Challenge annotated with a per-user completion flag.
type ChallengeStatus struct {
	Challenge
	Completed bool `json:"completed"`
}
