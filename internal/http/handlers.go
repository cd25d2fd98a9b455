package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/courtsidehq/courtside/internal/challenge"
	"github.com/courtsidehq/courtside/internal/match"
	"github.com/courtsidehq/courtside/internal/presence"
	"github.com/courtsidehq/courtside/internal/pubsub"
	"github.com/courtsidehq/courtside/internal/ranking"
	"github.com/courtsidehq/courtside/internal/reference"
	"github.com/courtsidehq/courtside/internal/stats"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("Failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// matchErrorStatus maps lifecycle errors onto HTTP statuses. Unknown errors
// fall through to 500.
func matchErrorStatus(err error) int {
	switch {
	case errors.Is(err, match.ErrNotFound), errors.Is(err, reference.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, match.ErrNotParticipant), errors.Is(err, match.ErrNotAllowed):
		return http.StatusForbidden
	case errors.Is(err, match.ErrWrongState), errors.Is(err, match.ErrDuplicatePending):
		return http.StatusConflict
	case errors.Is(err, match.ErrSelfChallenge),
		errors.Is(err, match.ErrNegativeScore),
		errors.Is(err, match.ErrScoresNotSet):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) matchError(w http.ResponseWriter, err error, matchID string) {
	status := matchErrorStatus(err)
	if status == http.StatusInternalServerError {
		log.Error("Match operation failed", "matchID", matchID, "error", err)
		writeError(w, status, "internal error")
		return
	}
	writeError(w, status, err.Error())
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) CreateMatchHandler() http.HandlerFunc {
	type request struct {
		OpponentID string `json:"opponentId"`
		VenueID    string `json:"venueId"`
		SportID    string `json:"sportId"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := playerIDFromContext(r)

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.OpponentID == "" || req.VenueID == "" || req.SportID == "" {
			writeError(w, http.StatusBadRequest, "opponentId, venueId and sportId are required")
			return
		}

		matchID, err := s.Matches.Create(playerID, req.OpponentID, req.VenueID, req.SportID)
		if err != nil {
			s.matchError(w, err, "")
			return
		}

		s.Metrics.IncMatchesCreated()
		log.Info("Match created", "matchID", matchID, "challenger", playerID, "opponent", req.OpponentID)
		respondJSON(w, http.StatusCreated, map[string]any{"success": true, "matchId": matchID})
	}
}

func (s *Server) GetMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := s.Matches.Get(r.PathValue("id"))
		if err != nil {
			s.matchError(w, err, r.PathValue("id"))
			return
		}
		respondJSON(w, http.StatusOK, m)
	}
}

func (s *Server) ReadyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.PathValue("id")
		result, err := s.Matches.MarkReady(matchID, playerIDFromContext(r))
		if err != nil {
			s.matchError(w, err, matchID)
			return
		}
		if result.Started {
			log.Info("Match started", "matchID", matchID)
		}
		respondJSON(w, http.StatusOK, map[string]any{"success": true, "started": result.Started})
	}
}

func (s *Server) SubmitScoreHandler() http.HandlerFunc {
	type request struct {
		Player1Score *int `json:"player1Score"`
		Player2Score *int `json:"player2Score"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.PathValue("id")

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Player1Score == nil || req.Player2Score == nil {
			writeError(w, http.StatusBadRequest, "player1Score and player2Score are required")
			return
		}

		if err := s.Matches.SubmitScore(matchID, playerIDFromContext(r), *req.Player1Score, *req.Player2Score); err != nil {
			s.matchError(w, err, matchID)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

func (s *Server) AgreeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.PathValue("id")
		start := time.Now()

		result, err := s.Matches.Agree(matchID, playerIDFromContext(r))
		if err != nil {
			s.matchError(w, err, matchID)
			return
		}

		if result.Settled {
			s.Metrics.IncMatchesSettled()
			s.Metrics.ObserveSettlementDuration(time.Since(start).Seconds())
			s.notifySettled(matchID)
		}

		resp := map[string]any{"success": true, "bothAgreed": result.BothAgreed}
		if result.Reward != nil {
			resp["rewards"] = result.Reward
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// notifySettled publishes the settlement event and posts the Slack result.
// Both are best effort; the settlement itself has already committed.
func (s *Server) notifySettled(matchID string) {
	m, err := s.Matches.Get(matchID)
	if err != nil {
		log.Error("Failed to load settled match for notification", "matchID", matchID, "error", err)
		return
	}

	if s.pubsub != nil {
		event := pubsub.MatchSettledEvent{
			MatchID:  m.ID,
			SportID:  m.SportID,
			VenueID:  m.VenueID,
			WinnerID: m.WinnerID,
		}
		if err := s.pubsub.SendMessage(pubsub.EventMatchSettled, event); err != nil {
			log.Error("Failed to publish match settled event", "matchID", matchID, "error", err)
		}
	}

	if s.Notifier != nil {
		player1Name, err := s.Reference.GetPlayerName(m.Player1ID)
		if err != nil {
			player1Name = m.Player1ID
		}
		player2Name, err := s.Reference.GetPlayerName(m.Player2ID)
		if err != nil {
			player2Name = m.Player2ID
		}
		if err := s.Notifier.SendMatchResult(m, player1Name, player2Name); err != nil {
			log.Error("Failed to send match result notification", "matchID", matchID, "error", err)
		}
	}
}

func (s *Server) DisputeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.PathValue("id")
		playerID := playerIDFromContext(r)

		if err := s.Matches.Dispute(matchID, playerID); err != nil {
			s.matchError(w, err, matchID)
			return
		}

		s.Metrics.IncMatchesDisputed()
		log.Warn("Match disputed", "matchID", matchID, "by", playerID)
		s.notifyDisputed(matchID, playerID)

		respondJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "match disputed and flagged for review",
		})
	}
}

func (s *Server) notifyDisputed(matchID, playerID string) {
	if s.pubsub != nil {
		event := pubsub.MatchDisputedEvent{MatchID: matchID, DisputedBy: playerID}
		if err := s.pubsub.SendMessage(pubsub.EventMatchDisputed, event); err != nil {
			log.Error("Failed to publish match disputed event", "matchID", matchID, "error", err)
		}
	}
	if s.Notifier == nil {
		return
	}
	m, err := s.Matches.Get(matchID)
	if err != nil {
		log.Error("Failed to load disputed match for notification", "matchID", matchID, "error", err)
		return
	}
	name, err := s.Reference.GetPlayerName(playerID)
	if err != nil {
		name = playerID
	}
	if err := s.Notifier.SendDisputeAlert(m, name); err != nil {
		log.Error("Failed to send dispute alert", "matchID", matchID, "error", err)
	}
}

func (s *Server) DeclineHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.PathValue("id")
		if err := s.Matches.Decline(matchID, playerIDFromContext(r)); err != nil {
			s.matchError(w, err, matchID)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

func (s *Server) CancelHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.PathValue("id")
		if err := s.Matches.Cancel(matchID, playerIDFromContext(r)); err != nil {
			s.matchError(w, err, matchID)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

func (s *Server) RecordAttemptHandler() http.HandlerFunc {
	type request struct {
		ScoreValue *int `json:"scoreValue"`
		MaxValue   *int `json:"maxValue"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		challengeID := r.PathValue("id")
		playerID := playerIDFromContext(r)

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.ScoreValue == nil || req.MaxValue == nil {
			writeError(w, http.StatusBadRequest, "scoreValue and maxValue are required")
			return
		}

		result, err := s.Challenges.RecordAttempt(playerID, challengeID, *req.ScoreValue, *req.MaxValue)
		if err != nil {
			switch {
			case errors.Is(err, reference.ErrNotFound):
				writeError(w, http.StatusNotFound, err.Error())
			case errors.Is(err, challenge.ErrNegativeValue), errors.Is(err, challenge.ErrScoreExceedsMax):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				log.Error("Failed to record challenge attempt", "challengeID", challengeID, "error", err)
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"success":  true,
			"xpEarned": result.XPEarned,
			"rpEarned": result.RPEarned,
			"message":  fmt.Sprintf("attempt recorded at %d%% accuracy", result.AccuracyPercent()),
		})
	}
}

func (s *Server) CheckInHandler() http.HandlerFunc {
	type request struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		venueID := r.PathValue("id")
		playerID := playerIDFromContext(r)

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Lat == nil || req.Lng == nil {
			writeError(w, http.StatusBadRequest, "lat and lng are required")
			return
		}

		err := s.Presence.CheckIn(playerID, venueID, *req.Lat, *req.Lng)
		if err != nil {
			var tooFar *presence.TooFarError
			switch {
			case errors.As(err, &tooFar):
				s.Metrics.IncCheckInsRejected()
				respondJSON(w, http.StatusBadRequest, map[string]any{
					"error":      "too far from venue to check in",
					"distanceKm": tooFar.DistanceKm,
				})
			case errors.Is(err, reference.ErrNotFound):
				writeError(w, http.StatusNotFound, err.Error())
			default:
				log.Error("Check-in failed", "venueID", venueID, "playerID", playerID, "error", err)
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		s.Metrics.IncCheckIns()
		log.Info("Player checked in", "playerID", playerID, "venueID", venueID)
		respondJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

func (s *Server) HeartbeatHandler() http.HandlerFunc {
	type request struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		venueID := r.PathValue("id")
		playerID := playerIDFromContext(r)

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Lat == nil || req.Lng == nil {
			writeError(w, http.StatusBadRequest, "lat and lng are required")
			return
		}

		err := s.Presence.Heartbeat(playerID, venueID, *req.Lat, *req.Lng)
		if err != nil {
			if errors.Is(err, presence.ErrNotCheckedIn) {
				writeError(w, http.StatusNotFound, err.Error())
				return
			}
			log.Error("Heartbeat failed", "venueID", venueID, "playerID", playerID, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

func (s *Server) CheckOutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueID := r.PathValue("id")
		playerID := playerIDFromContext(r)

		if err := s.Presence.CheckOut(playerID, venueID); err != nil {
			log.Error("Check-out failed", "venueID", venueID, "playerID", playerID, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

func (s *Server) CheckInStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := s.Presence.GetStatus(playerIDFromContext(r), r.PathValue("id"))
		if err != nil {
			log.Error("Failed to get presence status", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		respondJSON(w, http.StatusOK, status)
	}
}

func (s *Server) ActivePlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueID := r.PathValue("id")
		players, err := s.Presence.ListActiveAtVenue(venueID)
		if err != nil {
			log.Error("Failed to list active players", "venueID", venueID, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"venueId": venueID,
			"players": players,
			"count":   len(players),
		})
	}
}

func (s *Server) PresencePolicyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, presence.DefaultPolicy)
	}
}

func (s *Server) PresenceCleanupHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		threshold := s.Cfg.Presence.StaleThreshold
		if hoursStr := r.URL.Query().Get("hours"); hoursStr != "" {
			hours, err := strconv.Atoi(hoursStr)
			if err != nil || hours <= 0 {
				writeError(w, http.StatusBadRequest, "'hours' must be a positive integer")
				return
			}
			threshold = time.Duration(hours) * time.Hour
		}

		evicted, err := s.Presence.CleanupStale(threshold)
		if err != nil {
			log.Error("Manual presence cleanup failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if evicted > 0 {
			s.Metrics.AddStaleEvictions(evicted)
		}
		log.Info("Manual presence cleanup finished", "evicted", evicted, "threshold", threshold)
		respondJSON(w, http.StatusOK, map[string]any{"success": true, "evicted": evicted})
	}
}

func (s *Server) RankingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		level := ranking.Level(q.Get("level"))
		scopeID := q.Get("id")
		sportID := q.Get("sport")

		if !level.Valid() {
			writeError(w, http.StatusBadRequest, "'level' must be venue, city or country")
			return
		}
		if scopeID == "" || sportID == "" {
			writeError(w, http.StatusBadRequest, "'id' and 'sport' are required")
			return
		}

		limit := ranking.DefaultLimit
		if limitStr := q.Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed <= 0 {
				writeError(w, http.StatusBadRequest, "'limit' must be a positive integer")
				return
			}
			limit = parsed
		}

		lb, err := s.Ranking.Leaderboard(level, scopeID, sportID, playerIDFromContext(r), limit)
		if err != nil {
			log.Error("Failed to build leaderboard", "level", level, "scopeID", scopeID, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		s.Metrics.IncRankingQueries()
		respondJSON(w, http.StatusOK, lb)
	}
}

func (s *Server) PlayerStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.PathValue("id")
		sportID := r.URL.Query().Get("sport")
		if sportID == "" {
			writeError(w, http.StatusBadRequest, "'sport' is required")
			return
		}

		playerStats, err := s.Stats.Get(playerID, sportID)
		if err != nil {
			log.Error("Failed to get player stats", "playerID", playerID, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		respondJSON(w, http.StatusOK, playerStats)
	}
}

func (s *Server) SpendRPHandler() http.HandlerFunc {
	type request struct {
		SportID string `json:"sportId"`
		Amount  int    `json:"amount"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := playerIDFromContext(r)

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.SportID == "" || req.Amount <= 0 {
			writeError(w, http.StatusBadRequest, "sportId and a positive amount are required")
			return
		}

		if err := s.Stats.SpendRP(playerID, req.SportID, req.Amount); err != nil {
			if errors.Is(err, stats.ErrInsufficientRP) {
				writeError(w, http.StatusConflict, err.Error())
				return
			}
			log.Error("Failed to spend RP", "playerID", playerID, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}
