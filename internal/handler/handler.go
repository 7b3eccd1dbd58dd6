package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/finlearn/finlearn-api/internal/calculator"
	"github.com/finlearn/finlearn-api/internal/catalog"
	"github.com/finlearn/finlearn-api/internal/models"
	"github.com/finlearn/finlearn-api/internal/service"
	"github.com/finlearn/finlearn-api/internal/store"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Handler wires HTTP routes to the service layer and applies the uniform
// {success: ...} response envelope.
type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

// NewHandler initializes a new handler
func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// RegisterRoutes mounts all API routes on the router.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/health", h.Health).Methods("GET")
	r.HandleFunc("/api/funds", h.Funds).Methods("GET")
	r.HandleFunc("/api/sip/calculate", h.CalculateSIP).Methods("POST")
	r.HandleFunc("/api/stock/quote", h.StockQuote).Methods("GET")
	r.HandleFunc("/api/market/trends", h.MarketTrends).Methods("GET")
	r.HandleFunc("/api/user/register", h.RegisterUser).Methods("POST")
	r.HandleFunc("/api/user/{id}", h.GetUser).Methods("GET")
	r.HandleFunc("/api/user/{id}/xp", h.AwardXP).Methods("POST")
	r.HandleFunc("/api/challenges", h.ListChallenges).Methods("GET")
	r.HandleFunc("/api/challenges/{id}/complete", h.CompleteChallenge).Methods("POST")
	r.HandleFunc("/api/leaderboard", h.Leaderboard).Methods("GET")
	r.HandleFunc("/api/budget/calculate", h.CalculateBudget).Methods("POST")
	r.HandleFunc("/api/savings/calculate", h.CalculateSavings).Methods("POST")
	r.HandleFunc("/api/stocks/popular", h.PopularStocks).Methods("GET")
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Errorf("encode response: %v", err)
	}
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (h *Handler) respondError(w http.ResponseWriter, status int, err error) {
	h.log.Warnf("HTTP %d: %v", status, err)
	respondJSON(w, status, errorResponse{Success: false, Error: err.Error()})
}

// statusFor maps domain errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, calculator.ErrInvalidInput), errors.Is(err, calculator.ErrInvalidIncome):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrUserNotFound), errors.Is(err, catalog.ErrChallengeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "FinLearn API is running",
	})
}

type fundsResponse struct {
	Success bool               `json:"success"`
	Funds   []models.FundQuote `json:"funds"`
}

// Funds returns live quotes for the whole fund catalog.
func (h *Handler) Funds(w http.ResponseWriter, r *http.Request) {
	quotes := h.svc.FundQuotes(r.Context())
	respondJSON(w, http.StatusOK, fundsResponse{Success: true, Funds: quotes})
}

type sipRequest struct {
	Amount       float64  `json:"amount"`
	Years        float64  `json:"years"`
	AnnualReturn *float64 `json:"annual_return"`
}

type sipResponse struct {
	Success bool              `json:"success"`
	Result  *models.SIPResult `json:"result"`
}

// CalculateSIP projects a SIP investment.
func (h *Handler) CalculateSIP(w http.ResponseWriter, r *http.Request) {
	var req sipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, errors.New("Invalid request payload"))
		return
	}
	annualReturn := 12.0
	if req.AnnualReturn != nil {
		annualReturn = *req.AnnualReturn
	}
	result, err := h.svc.CalculateSIP(req.Amount, req.Years, annualReturn)
	if err != nil {
		h.respondError(w, statusFor(err), err)
		return
	}
	respondJSON(w, http.StatusOK, sipResponse{Success: true, Result: result})
}

type quoteResponse struct {
	Success bool               `json:"success"`
	Quote   *models.StockQuote `json:"quote"`
}

// StockQuote returns a single stock quote; a provider failure fails the
// request, unlike the batched endpoints.
func (h *Handler) StockQuote(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		symbol = "AAPL"
	}
	quote, err := h.svc.StockQuote(r.Context(), symbol)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, quoteResponse{Success: true, Quote: quote})
}

type trendsResponse struct {
	Success bool                `json:"success"`
	Trends  []models.IndexTrend `json:"trends"`
}

// MarketTrends reports monthly index moves.
func (h *Handler) MarketTrends(w http.ResponseWriter, r *http.Request) {
	trends := h.svc.MarketTrends(r.Context())
	respondJSON(w, http.StatusOK, trendsResponse{Success: true, Trends: trends})
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type userResponse struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
}

// RegisterUser creates a new user.
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, errors.New("Invalid request payload"))
		return
	}
	user := h.svc.RegisterUser(req.Username, req.Email)
	respondJSON(w, http.StatusOK, userResponse{Success: true, User: user})
}

// GetUser fetches a user by id.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	user, err := h.svc.GetUser(id)
	if err != nil {
		h.respondError(w, statusFor(err), err)
		return
	}
	respondJSON(w, http.StatusOK, userResponse{Success: true, User: user})
}

type awardXPRequest struct {
	XP            int  `json:"xp"`
	PreviousLevel *int `json:"previous_level"`
}

type awardXPResponse struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
	LevelUp bool         `json:"level_up"`
}

// AwardXP credits XP to a user and re-derives the level.
func (h *Handler) AwardXP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req awardXPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, errors.New("Invalid request payload"))
		return
	}
	previousLevel := 1
	if req.PreviousLevel != nil {
		previousLevel = *req.PreviousLevel
	}
	user, levelUp, err := h.svc.AwardXP(id, req.XP, previousLevel)
	if err != nil {
		h.respondError(w, statusFor(err), err)
		return
	}
	respondJSON(w, http.StatusOK, awardXPResponse{Success: true, User: user, LevelUp: levelUp})
}

type challengesResponse struct {
	Success    bool                     `json:"success"`
	Challenges []models.ChallengeStatus `json:"challenges"`
}

// ListChallenges returns the challenge catalog, annotated with the
// requesting user's completion state when user_id is supplied.
func (h *Handler) ListChallenges(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	challenges := h.svc.ListChallenges(userID)
	respondJSON(w, http.StatusOK, challengesResponse{Success: true, Challenges: challenges})
}

type completeChallengeRequest struct {
	UserID string `json:"user_id"`
}

type completeChallengeResponse struct {
	Success   bool              `json:"success"`
	User      *models.User      `json:"user"`
	Challenge *models.Challenge `json:"challenge"`
}

// CompleteChallenge marks a challenge completed for a user.
func (h *Handler) CompleteChallenge(w http.ResponseWriter, r *http.Request) {
	challengeID := mux.Vars(r)["id"]
	var req completeChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, errors.New("Invalid request payload"))
		return
	}
	if req.UserID == "" {
		h.respondError(w, http.StatusNotFound, store.ErrUserNotFound)
		return
	}
	user, challenge, err := h.svc.CompleteChallenge(challengeID, req.UserID)
	if err != nil {
		h.respondError(w, statusFor(err), err)
		return
	}
	respondJSON(w, http.StatusOK, completeChallengeResponse{Success: true, User: user, Challenge: challenge})
}

type leaderboardResponse struct {
	Success     bool                      `json:"success"`
	Leaderboard []models.LeaderboardEntry `json:"leaderboard"`
}

// Leaderboard returns users ranked by XP.
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}
	entries := h.svc.Leaderboard(limit)
	respondJSON(w, http.StatusOK, leaderboardResponse{Success: true, Leaderboard: entries})
}

type budgetRequest struct {
	Income float64 `json:"income"`
}

type budgetResponse struct {
	Success bool                 `json:"success"`
	Budget  *models.BudgetResult `json:"budget"`
}

// CalculateBudget splits income by the 50/30/20 rule.
func (h *Handler) CalculateBudget(w http.ResponseWriter, r *http.Request) {
	var req budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, errors.New("Invalid request payload"))
		return
	}
	budget, err := h.svc.CalculateBudget(req.Income)
	if err != nil {
		h.respondError(w, statusFor(err), err)
		return
	}
	respondJSON(w, http.StatusOK, budgetResponse{Success: true, Budget: budget})
}

type savingsRequest struct {
	GoalAmount     float64  `json:"goal_amount"`
	MonthlySavings float64  `json:"monthly_savings"`
	InterestRate   *float64 `json:"interest_rate"`
}

type savingsResponse struct {
	Success bool                  `json:"success"`
	Result  *models.SavingsResult `json:"result"`
}

// CalculateSavings computes a savings-goal timeline.
func (h *Handler) CalculateSavings(w http.ResponseWriter, r *http.Request) {
	var req savingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, errors.New("Invalid request payload"))
		return
	}
	interestRate := 6.0
	if req.InterestRate != nil {
		interestRate = *req.InterestRate
	}
	result, err := h.svc.CalculateSavings(req.GoalAmount, req.MonthlySavings, interestRate)
	if err != nil {
		h.respondError(w, statusFor(err), err)
		return
	}
	respondJSON(w, http.StatusOK, savingsResponse{Success: true, Result: result})
}

type popularStocksResponse struct {
	Success bool                  `json:"success"`
	Stocks  []models.PopularStock `json:"stocks"`
}

// PopularStocks quotes the fixed popular-stock list.
func (h *Handler) PopularStocks(w http.ResponseWriter, r *http.Request) {
	stocks := h.svc.PopularStocks(r.Context())
	respondJSON(w, http.StatusOK, popularStocksResponse{Success: true, Stocks: stocks})
}
