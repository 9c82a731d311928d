package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lhclub/recordkeeper/internal/apperr"
	"github.com/lhclub/recordkeeper/internal/billiards"
	"github.com/lhclub/recordkeeper/internal/events"
	"github.com/lhclub/recordkeeper/internal/tennis"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// UsersHandler serves the roster: GET lists registered names, POST registers
// a new one.
func (s *Server) UsersHandler() http.HandlerFunc {
	type registerRequest struct {
		Name string `json:"name"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			names, err := s.Users.ListNames(r.Context())
			if err != nil {
				respondError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, map[string]any{"users": names})
		case http.MethodPost:
			var req registerRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "Invalid request body", http.StatusBadRequest)
				return
			}
			user, err := s.Users.Register(r.Context(), req.Name)
			if err != nil {
				respondError(w, err)
				return
			}
			s.Metrics.IncRegistrations()
			if err := s.Publisher.SendMessage(events.EventUserRegistered, events.UserRegistered{
				UserID: user.ID,
				Name:   user.Name,
			}); err != nil {
				log.Error("Failed to publish user registered event", "error", err)
			}
			respondJSON(w, http.StatusCreated, user)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// TennisRecordsHandler saves a doubles result. The saved record is announced
// on the configured notification channel; announcement failures are logged
// but do not fail the save.
func (s *Server) TennisRecordsHandler() http.HandlerFunc {
	type saveRequest struct {
		tennis.Players
		ScoreLeft  flexFloat `json:"score_left"`
		ScoreRight flexFloat `json:"score_right"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		isDryRun := isDryRunFromContext(r)

		var req saveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		scores := tennis.Scores{Left: int(req.ScoreLeft), Right: int(req.ScoreRight)}
		record, err := s.Tennis.Save(r.Context(), req.Players, scores)
		if err != nil {
			respondError(w, err)
			return
		}
		s.Metrics.IncTennisSaves()

		if err := s.Notifier.SendTennisResult(record, isDryRun); err != nil {
			log.Error("Failed to send tennis result notification", "error", err)
		}
		if err := s.Publisher.SendMessage(events.EventTennisRecordSaved, events.TennisRecordSaved{
			RecordID:   record.ID,
			Player1:    record.Player1,
			Player2:    record.Player2,
			Player3:    record.Player3,
			Player4:    record.Player4,
			ScoreLeft:  record.ScoreLeft,
			ScoreRight: record.ScoreRight,
		}); err != nil {
			log.Error("Failed to publish tennis record event", "error", err)
		}

		respondJSON(w, http.StatusCreated, record)
	}
}

// TennisStatsHandler filters records by team occupancy and returns the
// matches alongside the win/loss summary. Query params player1..player4 fill
// the filter slots; flipped matches are orientation-corrected.
func (s *Server) TennisStatsHandler() http.HandlerFunc {
	type statsResponse struct {
		Records []tennis.FilteredRecord `json:"records"`
		Summary tennis.Summary          `json:"summary"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		query := r.URL.Query()
		filters := tennis.Filters{
			Player1: query.Get("player1"),
			Player2: query.Get("player2"),
			Player3: query.Get("player3"),
			Player4: query.Get("player4"),
		}

		records, err := s.Tennis.GetFiltered(r.Context(), filters)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, statsResponse{
			Records: records,
			Summary: tennis.Summarize(records),
		})
	}
}

// billiardsEntryRequest is one input row for a day save. Numeric fields
// accept both JSON numbers and numeric strings; unparseable values fall back
// to 0 rather than rejecting the batch.
type billiardsEntryRequest struct {
	PlayerName string    `json:"player_name"`
	BaseDama   flexFloat `json:"base_dama"`
	MinusDama  flexFloat `json:"minus_dama"`
	PlusDama   flexFloat `json:"plus_dama"`
}

// BilliardsRecordsHandler serves day sessions: POST replaces today's rows
// with the posted batch and returns the ranked standings, GET ?date= returns
// the rows of that calendar day.
func (s *Server) BilliardsRecordsHandler() http.HandlerFunc {
	type saveRequest struct {
		Records []billiardsEntryRequest `json:"records"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			isDryRun := isDryRunFromContext(r)

			var req saveRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "Invalid request body", http.StatusBadRequest)
				return
			}

			entries := make([]billiards.Entry, len(req.Records))
			for i, row := range req.Records {
				base := float64(row.BaseDama)
				minus := float64(row.MinusDama)
				plus := float64(row.PlusDama)
				entries[i] = billiards.Entry{
					PlayerName: row.PlayerName,
					BaseDama:   base,
					MinusDama:  minus,
					PlusDama:   plus,
					// The percentage is always derived server-side.
					Percentage: billiards.Percentage(base, minus, plus),
				}
			}

			saved, err := s.Billiards.SaveDay(r.Context(), entries)
			if err != nil {
				respondError(w, err)
				return
			}
			s.Metrics.IncBilliardsDaySaves()

			ranked := billiards.RankRecords(saved)
			date := time.Now().Format("2006-01-02")
			if len(saved) > 0 {
				date = saved[0].CreatedAt.Format("2006-01-02")
			}
			if err := s.Notifier.SendBilliardsStandings(date, ranked, isDryRun); err != nil {
				log.Error("Failed to send billiards standings notification", "error", err)
			}
			if err := s.Publisher.SendMessage(events.EventBilliardsDaySaved, events.BilliardsDaySaved{
				Date: time.Now(),
				Rows: len(saved),
			}); err != nil {
				log.Error("Failed to publish billiards day event", "error", err)
			}

			respondJSON(w, http.StatusCreated, map[string]any{"records": ranked})
		case http.MethodGet:
			dateStr := r.URL.Query().Get("date")
			date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
			if err != nil {
				http.Error(w, "Invalid 'date' parameter, expected YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			records, err := s.Billiards.GetByDate(r.Context(), date)
			if err != nil {
				respondError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, map[string]any{"records": billiards.RankRecords(records)})
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// BilliardsPlayerHandler returns one player's rows from the last year,
// newest first. An invalid or missing 'limit' falls back to the default.
func (s *Server) BilliardsPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		name := r.URL.Query().Get("name")
		if name == "" {
			http.Error(w, "Missing 'name' parameter", http.StatusBadRequest)
			return
		}

		limit := 0
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err == nil && parsed > 0 {
				limit = parsed
			} else {
				log.Warn("Invalid 'limit' parameter provided. Defaulting.", "limit_param", limitStr)
			}
		}

		records, err := s.Billiards.GetByName(r.Context(), name, limit)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"records": records})
	}
}

// BilliardsDatesHandler lists the days with records in the last year,
// newest first.
func (s *Server) BilliardsDatesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		dates, err := s.Billiards.GetAvailableDates(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"dates": dates})
	}
}

// flexFloat decodes from a JSON number or a numeric string. Anything else,
// including an unparseable string, decodes to 0.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		*f = flexFloat(number)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		parsed, err := strconv.ParseFloat(str, 64)
		if err != nil {
			log.Warn("Unparseable numeric value. Defaulting to 0.", "value", str)
			parsed = 0
		}
		*f = flexFloat(parsed)
		return nil
	}
	*f = 0
	return nil
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

// respondError maps the error's kind to an HTTP status and writes a JSON
// body carrying the user-facing message.
func respondError(w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)
	status := http.StatusInternalServerError
	switch kind {
	case apperr.KindValidation:
		status = http.StatusBadRequest
	case apperr.KindDuplicate:
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		log.Error("Request failed", "error", err)
	}
	respondJSON(w, status, map[string]string{
		"error": err.Error(),
		"kind":  kind.String(),
	})
}
