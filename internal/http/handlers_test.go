package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/lhclub/recordkeeper/internal/billiards"
	"github.com/lhclub/recordkeeper/internal/config"
	"github.com/lhclub/recordkeeper/internal/database"
	"github.com/lhclub/recordkeeper/internal/events"
	"github.com/lhclub/recordkeeper/internal/metrics"
	"github.com/lhclub/recordkeeper/internal/notifier"
	"github.com/lhclub/recordkeeper/internal/registry"
	"github.com/lhclub/recordkeeper/internal/tennis"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestServer initializes a new server backed by an in-memory database,
// with mock notifier and publisher.
func setupTestServer(t *testing.T) (*Server, *metrics.Mock, *notifier.MockNotifier, *events.MockPublisher, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	metricsSvc := metrics.NewMock()
	notifierMock := notifier.NewMock()
	publisher := events.NewMock("TEST")

	server := NewServer(
		registry.NewService(registry.NewStore(db)),
		tennis.NewService(tennis.NewStore(db)),
		billiards.NewService(billiards.NewStore(db)),
		metricsSvc,
		metrics.NewMetricsHandler(prometheus.NewRegistry()),
		config.Config{},
		notifierMock,
		publisher,
	)

	teardown := func() {
		if dbTeardown != nil {
			dbTeardown()
		}
		db.Close()
	}
	return server, metricsSvc, notifierMock, publisher, teardown
}

func postJSON(t *testing.T, server *Server, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	return rr
}

func get(t *testing.T, server *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	return rr
}

func TestHealthCheckHandler(t *testing.T) {
	server, _, _, _, teardown := setupTestServer(t)
	defer teardown()

	rr := get(t, server, "/health")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK!", rr.Body.String())
}

func TestUsersHandler(t *testing.T) {
	t.Run("registers and lists users", func(t *testing.T) {
		server, metricsSvc, _, publisher, teardown := setupTestServer(t)
		defer teardown()

		rr := postJSON(t, server, "/users", map[string]string{"name": "  천둥  "})
		require.Equal(t, http.StatusCreated, rr.Code)

		var user registry.User
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
		assert.Equal(t, "천둥", user.Name)
		assert.NotEmpty(t, user.ID)

		assert.Equal(t, 1, metricsSvc.RegistrationCount())
		require.Len(t, publisher.SendMessageCalls, 1)
		assert.Equal(t, string(events.EventUserRegistered), publisher.SendMessageCalls[0].Topic)

		rr = get(t, server, "/users")
		require.Equal(t, http.StatusOK, rr.Code)
		var listed struct {
			Users []string `json:"users"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
		assert.Equal(t, []string{"천둥"}, listed.Users)
	})

	t.Run("rejects an empty name with 400", func(t *testing.T) {
		server, _, _, _, teardown := setupTestServer(t)
		defer teardown()

		rr := postJSON(t, server, "/users", map[string]string{"name": "   "})
		require.Equal(t, http.StatusBadRequest, rr.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "이름을 입력하세요", body["error"])
		assert.Equal(t, "validation", body["kind"])
	})

	t.Run("rejects a duplicate name with 409", func(t *testing.T) {
		server, _, _, _, teardown := setupTestServer(t)
		defer teardown()

		rr := postJSON(t, server, "/users", map[string]string{"name": "지수"})
		require.Equal(t, http.StatusCreated, rr.Code)

		rr = postJSON(t, server, "/users", map[string]string{"name": "지수"})
		require.Equal(t, http.StatusConflict, rr.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "이미 등록된 이름입니다", body["error"])
		assert.Equal(t, "duplicate", body["kind"])
	})
}

func TestTennisRecordsHandler(t *testing.T) {
	server, metricsSvc, notifierMock, publisher, teardown := setupTestServer(t)
	defer teardown()

	rr := postJSON(t, server, "/tennis/records", map[string]any{
		"player1": "A", "player2": "B", "player3": "C", "player4": "D",
		"score_left": 6, "score_right": 3,
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var record tennis.Record
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &record))
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, 6, record.ScoreLeft)

	assert.Equal(t, 1, metricsSvc.TennisSaveCount())
	require.Len(t, notifierMock.TennisResultCalls, 1)
	assert.False(t, notifierMock.TennisResultCalls[0].DryRun)
	require.Len(t, publisher.SendMessageCalls, 1)
	assert.Equal(t, string(events.EventTennisRecordSaved), publisher.SendMessageCalls[0].Topic)
}

func TestTennisRecordsHandlerDryRun(t *testing.T) {
	server, _, notifierMock, _, teardown := setupTestServer(t)
	defer teardown()

	// Scores arrive as numeric strings, like the web form sends them.
	rr := postJSON(t, server, "/tennis/records?dry_run=true", map[string]any{
		"player1": "A", "player2": "B", "player3": "C", "player4": "D",
		"score_left": "4", "score_right": "6",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var record tennis.Record
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &record))
	assert.Equal(t, 4, record.ScoreLeft)
	assert.Equal(t, 6, record.ScoreRight)

	require.Len(t, notifierMock.TennisResultCalls, 1)
	assert.True(t, notifierMock.TennisResultCalls[0].DryRun)
}

func TestTennisStatsHandler(t *testing.T) {
	server, _, _, _, teardown := setupTestServer(t)
	defer teardown()

	// A/B beat C/D; the filter asks from C/D's side.
	rr := postJSON(t, server, "/tennis/records", map[string]any{
		"player1": "A", "player2": "B", "player3": "C", "player4": "D",
		"score_left": 6, "score_right": 3,
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = get(t, server, "/tennis/stats?"+url.Values{"player1": {"C"}, "player2": {"D"}}.Encode())
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Records []tennis.FilteredRecord `json:"records"`
		Summary tennis.Summary          `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Records, 1)
	assert.True(t, resp.Records[0].Flipped)
	assert.Equal(t, tennis.Summary{Total: 1, Wins: 0, Losses: 1, WinRate: 0}, resp.Summary)
}

func TestBilliardsRecordsHandler(t *testing.T) {
	server, metricsSvc, notifierMock, publisher, teardown := setupTestServer(t)
	defer teardown()

	rr := postJSON(t, server, "/billiards/records", map[string]any{
		"records": []map[string]any{
			{"player_name": "김", "base_dama": 30, "minus_dama": 5, "plus_dama": 2},
			// Numeric strings are accepted too.
			{"player_name": "이", "base_dama": "20", "minus_dama": "8", "plus_dama": "0"},
		},
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp struct {
		Records []billiards.RankedRecord `json:"records"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Records, 2)
	// 이: 8/(2+0)*100 = 400, 김: 5/(3+2)*100 = 100.
	assert.Equal(t, "이", resp.Records[0].PlayerName)
	assert.Equal(t, 1, resp.Records[0].Rank)
	assert.Equal(t, 400.0, resp.Records[0].Percentage)
	assert.Equal(t, "김", resp.Records[1].PlayerName)
	assert.Equal(t, 2, resp.Records[1].Rank)
	assert.Equal(t, 100.0, resp.Records[1].Percentage)

	assert.Equal(t, 1, metricsSvc.BilliardsDaySaveCount())
	require.Len(t, notifierMock.BilliardsStandingsCalls, 1)
	require.Len(t, publisher.SendMessageCalls, 1)
	assert.Equal(t, string(events.EventBilliardsDaySaved), publisher.SendMessageCalls[0].Topic)

	// A second save for the same day replaces the first batch entirely.
	rr = postJSON(t, server, "/billiards/records", map[string]any{
		"records": []map[string]any{
			{"player_name": "박", "base_dama": 25, "minus_dama": 3, "plus_dama": 1},
		},
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	date := notifierMock.BilliardsStandingsCalls[0].Date
	rr = get(t, server, "/billiards/records?date="+date)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "박", resp.Records[0].PlayerName)
}

func TestBilliardsRecordsHandlerRejectsBadDate(t *testing.T) {
	server, _, _, _, teardown := setupTestServer(t)
	defer teardown()

	rr := get(t, server, "/billiards/records?date=not-a-date")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestBilliardsPlayerHandler(t *testing.T) {
	server, _, _, _, teardown := setupTestServer(t)
	defer teardown()

	rr := postJSON(t, server, "/billiards/records", map[string]any{
		"records": []map[string]any{
			{"player_name": "김", "base_dama": 30, "minus_dama": 5, "plus_dama": 2},
			{"player_name": "이", "base_dama": 20, "minus_dama": 8, "plus_dama": 0},
		},
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = get(t, server, "/billiards/player?name="+url.QueryEscape("김"))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Records []billiards.Record `json:"records"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "김", resp.Records[0].PlayerName)

	rr = get(t, server, "/billiards/player?name=김&limit=abc")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = get(t, server, "/billiards/player")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestBilliardsDatesHandler(t *testing.T) {
	server, _, _, _, teardown := setupTestServer(t)
	defer teardown()

	rr := get(t, server, "/billiards/dates")
	require.Equal(t, http.StatusOK, rr.Code)
	var empty struct {
		Dates []string `json:"dates"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &empty))
	assert.Empty(t, empty.Dates)

	rr = postJSON(t, server, "/billiards/records", map[string]any{
		"records": []map[string]any{
			{"player_name": "김", "base_dama": 30, "minus_dama": 5, "plus_dama": 2},
		},
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = get(t, server, "/billiards/dates")
	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Dates []string `json:"dates"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Dates, 1)
}

func TestFlexFloat(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{`12.5`, 12.5},
		{`"7"`, 7},
		{`"garbage"`, 0},
		{`null`, 0},
	}
	for _, tc := range cases {
		var f flexFloat
		require.NoError(t, json.Unmarshal([]byte(tc.input), &f), fmt.Sprintf("input %s", tc.input))
		assert.Equal(t, tc.want, float64(f), tc.input)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	server, _, _, _, teardown := setupTestServer(t)
	defer teardown()

	rr := get(t, server, "/metrics")
	assert.Equal(t, http.StatusOK, rr.Code)
}
