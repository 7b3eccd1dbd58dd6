package models

// Fund is a static mutual fund catalog entry, loaded at startup.
type Fund struct {
	Symbol       string  `json:"symbol" yaml:"symbol"`
	Name         string  `json:"name" yaml:"name"`
	Category     string  `json:"category" yaml:"category"`
	MinSIP       float64 `json:"min_sip" yaml:"min_sip"`
	ExpenseRatio float64 `json:"expense_ratio" yaml:"expense_ratio"`
}

// FundQuote is a Fund enriched with live return data. It is derived
// per request and never persisted.
type FundQuote struct {
	Fund        `yaml:",inline"`
	Return1Y    float64 `json:"return_1y"`
	Return3Y    float64 `json:"return_3y"`
	Return5Y    float64 `json:"return_5y"`
	CurrentNAV  float64 `json:"current_nav"`
	LastUpdated string  `json:"last_updated"`
	Error       string  `json:"error,omitempty"`
}
