package service

import (
	"context"
	"math"
	"time"

	"github.com/finlearn/finlearn-api/internal/calculator"
	"github.com/finlearn/finlearn-api/internal/catalog"
	"github.com/finlearn/finlearn-api/internal/models"
	"github.com/finlearn/finlearn-api/internal/store"
	"github.com/sirupsen/logrus"
)

// MarketProvider is the slice of the market data API the service needs.
type MarketProvider interface {
	History(ctx context.Context, symbol, interval, rng string) ([]models.Candle, error)
	Quote(ctx context.Context, symbol string) (*models.StockInfo, error)
}

// Fallback figures substituted when a fund's history cannot be fetched.
const (
	fallbackReturn1Y = 15.5
	fallbackReturn3Y = 18.2
	fallbackReturn5Y = 20.5
	fallbackNAV      = 100.0
)

// Trading-day counts approximating the 1y and 3y lookback horizons.
const (
	tradingDays1Y = 252
	tradingDays3Y = 756
)

// marketIndices are the indices reported by MarketTrends, in order.
var marketIndices = []struct {
	Name   string
	Symbol string
}{
	{"NIFTY50", "^NSEI"},
	{"SENSEX", "^BSESN"},
	{"NASDAQ", "^IXIC"},
	{"S&P500", "^GSPC"},
}

// popularSymbols is the fixed list served by PopularStocks.
var popularSymbols = []string{"AAPL", "GOOGL", "MSFT", "AMZN", "TSLA", "META", "NVDA", "NFLX"}

// WelcomeMailer sends the registration welcome email.
type WelcomeMailer interface {
	Enabled() bool
	SendWelcome(to, username string) error
}

// Service handles business logic
type Service struct {
	market  MarketProvider
	store   *store.Store
	catalog *catalog.Catalog
	mailer  WelcomeMailer
	log     *logrus.Logger
}

// NewService initializes a new service. mailer may be nil.
func NewService(market MarketProvider, st *store.Store, cat *catalog.Catalog, mailer WelcomeMailer, log *logrus.Logger) *Service {
	return &Service{market: market, store: st, catalog: cat, mailer: mailer, log: log}
}

// FundQuotes returns one quote per catalog fund, in catalog order. A fund
// whose lookup fails gets fallback figures instead of failing the batch;
// the provider's error message is attached as a diagnostic on that record.
func (s *Service) FundQuotes(ctx context.Context) []models.FundQuote {
	quotes := make([]models.FundQuote, 0, len(s.catalog.Funds))
	for _, fund := range s.catalog.Funds {
		bars, err := s.market.History(ctx, fund.Symbol, "1d", "5y")
		if err != nil {
			s.log.Warnf("fund history %s: %v", fund.Symbol, err)
			q := fallbackQuote(fund)
			q.Error = err.Error()
			quotes = append(quotes, q)
			continue
		}
		if len(bars) == 0 {
			quotes = append(quotes, fallbackQuote(fund))
			continue
		}
		quotes = append(quotes, fundQuoteFromHistory(fund, bars))
	}
	return quotes
}

func fallbackQuote(fund models.Fund) models.FundQuote {
	return models.FundQuote{
		Fund:        fund,
		Return1Y:    fallbackReturn1Y,
		Return3Y:    fallbackReturn3Y,
		Return5Y:    fallbackReturn5Y,
		CurrentNAV:  fallbackNAV,
		LastUpdated: time.Now().Format(time.RFC3339),
	}
}

func fundQuoteFromHistory(fund models.Fund, bars []models.Candle) models.FundQuote {
	n := len(bars)
	current := bars[n-1].Close

	// Returns over horizons shorter than the available history are
	// reported as zero; the 5y return always uses the earliest close.
	var return1y, return3y float64
	if n >= tradingDays1Y {
		base := bars[n-tradingDays1Y].Close
		return1y = (current - base) / base * 100
	}
	if n >= tradingDays3Y {
		base := bars[n-tradingDays3Y].Close
		return3y = (current - base) / base * 100
	}
	earliest := bars[0].Close
	return5y := (current - earliest) / earliest * 100

	return models.FundQuote{
		Fund:        fund,
		Return1Y:    round2(return1y),
		Return3Y:    round2(return3y),
		Return5Y:    round2(return5y),
		CurrentNAV:  round2(current),
		LastUpdated: time.Now().Format(time.RFC3339),
	}
}

// StockQuote fetches a single stock quote. Unlike the batched endpoints a
// provider error here fails the request.
func (s *Service) StockQuote(ctx context.Context, symbol string) (*models.StockQuote, error) {
	info, err := s.market.Quote(ctx, symbol)
	if err != nil {
		return nil, err
	}
	return &models.StockQuote{
		Symbol:        symbol,
		Name:          info.Name,
		Price:         info.Price,
		Change:        info.Change,
		ChangePercent: info.ChangePercent,
		Volume:        info.Volume,
		MarketCap:     info.MarketCap,
		PE:            info.PE,
		DividendYield: info.DividendYield,
	}, nil
}

// MarketTrends reports the one-month move of a fixed set of indices. An
// index whose lookup fails is dropped; the batch itself never fails.
func (s *Service) MarketTrends(ctx context.Context) []models.IndexTrend {
	trends := make([]models.IndexTrend, 0, len(marketIndices))
	for _, idx := range marketIndices {
		bars, err := s.market.History(ctx, idx.Symbol, "1d", "1mo")
		if err != nil {
			s.log.Warnf("trend history %s: %v", idx.Symbol, err)
			continue
		}
		if len(bars) == 0 {
			continue
		}
		current := bars[len(bars)-1].Close
		previous := bars[0].Close
		change := (current - previous) / previous * 100

		trend := "down"
		if change > 0 {
			trend = "up"
		}
		trends = append(trends, models.IndexTrend{
			Name:   idx.Name,
			Symbol: idx.Symbol,
			Value:  round2(current),
			Change: round2(change),
			Trend:  trend,
		})
	}
	return trends
}

// PopularStocks quotes a fixed symbol list. Symbols whose lookup fails
// are dropped from the result.
func (s *Service) PopularStocks(ctx context.Context) []models.PopularStock {
	stocks := make([]models.PopularStock, 0, len(popularSymbols))
	for _, symbol := range popularSymbols {
		info, err := s.market.Quote(ctx, symbol)
		if err != nil {
			s.log.Warnf("popular quote %s: %v", symbol, err)
			continue
		}
		bars, err := s.market.History(ctx, symbol, "1d", "1d")
		if err != nil {
			s.log.Warnf("popular history %s: %v", symbol, err)
			continue
		}
		if len(bars) == 0 {
			continue
		}

		current := bars[len(bars)-1].Close
		prev := info.PreviousClose
		if prev == 0 {
			prev = current
		}
		change := current - prev
		var changePercent float64
		if prev > 0 {
			changePercent = change / prev * 100
		}

		stocks = append(stocks, models.PopularStock{
			Symbol:        symbol,
			Name:          info.Name,
			Price:         round2(current),
			Change:        round2(change),
			ChangePercent: round2(changePercent),
			MarketCap:     info.MarketCap,
		})
	}
	return stocks
}

// CalculateSIP projects a monthly investment's future value.
func (s *Service) CalculateSIP(amount, years, annualReturn float64) (*models.SIPResult, error) {
	return calculator.SIP(amount, years, annualReturn)
}

// CalculateBudget splits an income by the 50/30/20 rule.
func (s *Service) CalculateBudget(income float64) (*models.BudgetResult, error) {
	return calculator.Budget(income)
}

// CalculateSavings computes a savings-goal timeline.
func (s *Service) CalculateSavings(goal, monthly, annualInterest float64) (*models.SavingsResult, error) {
	return calculator.Savings(goal, monthly, annualInterest)
}

// RegisterUser creates a new user record. When SMTP is configured and the
// user supplied an email, a welcome mail is sent in the background;
// failures there never surface to the caller.
func (s *Service) RegisterUser(username, email string) *models.User {
	user := s.store.Register(username, email)
	s.log.Infof("User registered: %s (%s)", user.Username, user.ID)

	if s.mailer != nil && s.mailer.Enabled() && user.Email != "" {
		go func(to, name string) {
			if err := s.mailer.SendWelcome(to, name); err != nil {
				s.log.Warnf("welcome email to %s: %v", to, err)
			}
		}(user.Email, user.Username)
	}
	return user
}

// GetUser fetches a user record.
func (s *Service) GetUser(id string) (*models.User, error) {
	return s.store.Get(id)
}

// AwardXP credits XP and reports whether the user leveled up past the
// caller's previous-level claim.
func (s *Service) AwardXP(id string, amount, previousLevel int) (*models.User, bool, error) {
	return s.store.AwardXP(id, amount, previousLevel)
}

// ListChallenges returns the catalog annotated with the given user's
// completion state. An empty or unknown user id marks nothing completed.
func (s *Service) ListChallenges(userID string) []models.ChallengeStatus {
	statuses := make([]models.ChallengeStatus, 0, len(s.catalog.Challenges))
	for _, ch := range s.catalog.Challenges {
		statuses = append(statuses, models.ChallengeStatus{
			Challenge: ch,
			Completed: userID != "" && s.store.HasCompleted(userID, ch.ID),
		})
	}
	return statuses
}

// CompleteChallenge marks a challenge completed for a user and credits
// its XP reward. Repeat completions are no-ops that still succeed.
func (s *Service) CompleteChallenge(challengeID, userID string) (*models.User, *models.Challenge, error) {
	challenge, err := s.catalog.ChallengeByID(challengeID)
	if err != nil {
		return nil, nil, err
	}
	user, err := s.store.CompleteChallenge(userID, challenge)
	if err != nil {
		return nil, nil, err
	}
	return user, &challenge, nil
}

// Leaderboard ranks users by XP.
func (s *Service) Leaderboard(limit int) []models.LeaderboardEntry {
	return s.store.Leaderboard(limit)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
