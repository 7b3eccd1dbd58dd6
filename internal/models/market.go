package models

import "time"

// Candle is a single daily bar from the market data provider. Only the
// close is used by the gateway, the rest is kept for completeness.
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// StockInfo is a point-in-time quote from the market data provider.
// Missing provider fields are zero.
type StockInfo struct {
	Symbol        string
	Name          string
	Price         float64
	Change        float64
	ChangePercent float64
	Volume        int64
	MarketCap     int64
	PE            float64
	DividendYield float64
	PreviousClose float64
}

// StockQuote is the response shape for a single stock lookup.
type StockQuote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Volume        int64   `json:"volume"`
	MarketCap     int64   `json:"marketCap"`
	PE            float64 `json:"pe"`
	DividendYield float64 `json:"dividendYield"`
}

// IndexTrend is one market index's monthly move.
type IndexTrend struct {
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
	Trend  string  `json:"trend"`
}

// PopularStock is one entry of the fixed popular-stocks list.
type PopularStock struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	MarketCap     int64   `json:"marketCap"`
}
