package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/hoops-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/hoops-league/internal/platform/id"
	"github.com/riskibarqy/hoops-league/internal/platform/logging"
	"github.com/riskibarqy/hoops-league/internal/platform/metrics"
	"github.com/riskibarqy/hoops-league/internal/platform/password"
	"github.com/riskibarqy/hoops-league/internal/platform/session"
	"github.com/riskibarqy/hoops-league/internal/usecase"
)

type testServer struct {
	t       *testing.T
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store := memory.NewStore(memory.DemoSeed())
	leagues, seasons, teams := store.Leagues(), store.Seasons(), store.Teams()
	players, games, logs, boxScores := store.Players(), store.Games(), store.GameLogs(), store.BoxScores()

	sessions := NewSessionManager(session.NewCodec("test-session-secret-0123456789", time.Hour), id.NewUUIDGenerator(), false)
	handler := NewHandler(
		usecase.NewAuthService(store.Users(), password.NewBcryptHasher(4)),
		usecase.NewLeagueService(leagues, seasons),
		usecase.NewTeamService(leagues, seasons, teams, games, boxScores),
		usecase.NewPlayerService(players, teams),
		usecase.NewGameService(seasons, teams, players, games, logs, boxScores, 100, metrics.Nop{}),
		usecase.NewScoringService(seasons, teams, players, games, logs, boxScores, metrics.Nop{}),
		usecase.NewDashboardService(leagues, seasons, teams, games, boxScores, 5),
		sessions,
		logging.NewNop(),
	)

	return &testServer{
		t:       t,
		handler: NewRouter(handler, sessions, logging.NewNop(), RouterConfig{CORSAllowedOrigins: []string{"*"}}),
	}
}

func (s *testServer) do(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	s.t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

// login registers a fresh account and returns its session cookie.
func (s *testServer) login(username string) *http.Cookie {
	s.t.Helper()

	rec := s.do(http.MethodPost, "/v1/auth/register",
		`{"username":"`+username+`","email":"`+username+`@example.com","password":"hunter2hunter2","confirm_password":"hunter2hunter2"}`)
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/v1/auth/login", `{"username":"`+username+`","password":"hunter2hunter2"}`)
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())
	return sessionCookie(s.t, rec)
}

// loginWithLeague logs in and selects the demo league.
func (s *testServer) loginWithLeague(username string) *http.Cookie {
	s.t.Helper()

	cookie := s.login(username)
	rec := s.do(http.MethodPost, "/v1/leagues/1/select", "", cookie)
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())
	return sessionCookie(s.t, rec)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	t.Fatalf("response has no %s cookie", sessionCookieName)
	return nil
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, rec.Code)
	data, ok := decodeBody(t, rec)["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ok", data["status"])
}

func TestScoringRoutes_RequireLogin(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodPost, "/update_boxscore", `{"game_id":1,"team_id":1,"player_id":1,"action":"FT Made"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestScoringRoutes_RedirectWithoutLeague(t *testing.T) {
	srv := newTestServer(t)
	cookie := srv.login("scorer")

	rec := srv.do(http.MethodPost, "/update_boxscore", `{"game_id":1,"team_id":1,"player_id":1,"action":"FT Made"}`, cookie)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/v1/leagues", rec.Header().Get("Location"))
}

func TestUpdateBoxScore_ThreePointerTwiceRefreshesTotals(t *testing.T) {
	srv := newTestServer(t)
	cookie := srv.loginWithLeague("scorer")

	for range 2 {
		rec := srv.do(http.MethodPost, "/update_boxscore", `{"game_id":"1","team_id":"1","player_id":"1","action":"3-Point Made"}`, cookie)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decodeBody(t, rec)
		assert.Equal(t, "success", body["status"])
		assert.Equal(t, "BoxScore updated successfully.", body["message"])
	}

	rec := srv.do(http.MethodGet, "/refresh_box_scores/1", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var refresh refreshBoxScoresResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &refresh))
	assert.Equal(t, 6, refresh.Team1TotalPoints)
	assert.Equal(t, 0, refresh.Team2TotalPoints)
	assert.Contains(t, refresh.Team1HTML, "Dana Reyes")
	assert.Contains(t, refresh.Team1HTML, "<caption>Rockets</caption>")
	assert.Contains(t, refresh.Team2HTML, "<caption>Hawks</caption>")
}

func TestUpdateBoxScore_Errors(t *testing.T) {
	srv := newTestServer(t)
	cookie := srv.loginWithLeague("scorer")

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "missing action",
			body:       `{"game_id":1,"team_id":1,"player_id":1}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Missing required fields.",
		},
		{
			name:       "invalid json",
			body:       `{"game_id":`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid or missing JSON data.",
		},
		{
			name:       "unknown game",
			body:       `{"game_id":999,"team_id":1,"player_id":1,"action":"FT Made"}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown player",
			body:       `{"game_id":1,"team_id":1,"player_id":9999,"action":"FT Made"}`,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.do(http.MethodPost, "/update_boxscore", tt.body, cookie)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			body := decodeBody(t, rec)
			assert.Equal(t, "error", body["status"])
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body["message"])
			}
		})
	}
}

func TestLogAction(t *testing.T) {
	srv := newTestServer(t)
	cookie := srv.loginWithLeague("scorer")

	rec := srv.do(http.MethodPost, "/log_action",
		`{"gameid":"1","teamid":"1","playerid":"1","actiontype":"shot","action":"2-Point Made","actiondesc":"pull-up","currenttimer":"07:42"}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "success", decodeBody(t, rec)["status"])

	rec = srv.do(http.MethodGet, "/v1/games/1/summary", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := decodeBody(t, rec)["data"].(map[string]any)
	logs := data["logs"].([]any)
	require.Len(t, logs, 1)
	entry := logs[0].(map[string]any)
	assert.Equal(t, "2-Point Made", entry["action"])
	assert.Equal(t, "00:07:42", entry["game_clock"])
}

func TestEndGame_SettlesFromBoxScores(t *testing.T) {
	srv := newTestServer(t)
	cookie := srv.loginWithLeague("scorer")

	for _, body := range []string{
		`{"game_id":1,"team_id":1,"player_id":1,"action":"2-Point Made"}`,
		`{"game_id":1,"team_id":2,"player_id":4,"action":"3-Point Made"}`,
		`{"game_id":1,"team_id":2,"player_id":5,"action":"FT Made"}`,
	} {
		rec := srv.do(http.MethodPost, "/update_boxscore", body, cookie)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec := srv.do(http.MethodPost, "/end_game", `{"game_id":1}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Game ended and scores updated.", decodeBody(t, rec)["message"])

	rec = srv.do(http.MethodGet, "/v1/games/1", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	g := decodeBody(t, rec)["data"].(map[string]any)["game"].(map[string]any)
	assert.Equal(t, "Played", g["status"])
	assert.EqualValues(t, 2, g["team1_score"])
	assert.EqualValues(t, 4, g["team2_score"])
	assert.EqualValues(t, 2, g["winner_team_id"])
}

func TestEndGame_UnknownGame(t *testing.T) {
	srv := newTestServer(t)
	cookie := srv.loginWithLeague("scorer")

	rec := srv.do(http.MethodPost, "/end_game", `{"game_id":404}`, cookie)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", decodeBody(t, rec)["status"])
}

func TestAuth(t *testing.T) {
	srv := newTestServer(t)
	srv.login("coach")

	t.Run("duplicate username conflicts", func(t *testing.T) {
		rec := srv.do(http.MethodPost, "/v1/auth/register",
			`{"username":"coach","email":"other@example.com","password":"hunter2hunter2","confirm_password":"hunter2hunter2"}`)

		require.Equal(t, http.StatusConflict, rec.Code)
		errObj := decodeBody(t, rec)["error"].(map[string]any)
		assert.Equal(t, "ALREADY_EXISTS", errObj["status"])
	})

	t.Run("password mismatch rejected", func(t *testing.T) {
		rec := srv.do(http.MethodPost, "/v1/auth/register",
			`{"username":"other","email":"other@example.com","password":"hunter2hunter2","confirm_password":"different1"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		rec := srv.do(http.MethodPost, "/v1/auth/login", `{"username":"coach","password":"not-the-password"}`)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		errObj := decodeBody(t, rec)["error"].(map[string]any)
		assert.Equal(t, "unauthorized: invalid username or password", errObj["message"])
	})

	t.Run("unknown user gets the same message", func(t *testing.T) {
		rec := srv.do(http.MethodPost, "/v1/auth/login", `{"username":"ghost","password":"not-the-password"}`)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		errObj := decodeBody(t, rec)["error"].(map[string]any)
		assert.Equal(t, "unauthorized: invalid username or password", errObj["message"])
	})

	t.Run("logout clears the cookie", func(t *testing.T) {
		rec := srv.do(http.MethodPost, "/v1/auth/logout", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, -1, sessionCookie(t, rec).MaxAge)
	})
}

func TestSession_TamperedCookieRejected(t *testing.T) {
	srv := newTestServer(t)
	cookie := srv.login("coach")
	cookie.Value += "x"

	rec := srv.do(http.MethodGet, "/v1/auth/session", "", cookie)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSelectLeague_PersistsInSession(t *testing.T) {
	srv := newTestServer(t)
	cookie := srv.loginWithLeague("coach")

	rec := srv.do(http.MethodGet, "/v1/auth/session", "", cookie)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.EqualValues(t, 1, data["selected_league_id"])
}

func TestQuickUploadAndTeamList(t *testing.T) {
	srv := newTestServer(t)
	cookie := srv.loginWithLeague("captain")

	rec := srv.do(http.MethodPost, "/v1/teams/quick-upload", `{
		"team_name": "Bulls",
		"players": [
			{"first_name": "Ada", "last_name": "King", "jersey_number": 7},
			{"first_name": "Missing", "last_name": ""},
			{"first_name": "Ben", "last_name": "Cole", "jersey_number": 12}
		]
	}`, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "Bulls", data["team"].(map[string]any)["name"])
	assert.Len(t, data["players"].([]any), 2)

	rec = srv.do(http.MethodGet, "/v1/teams", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	teams := decodeBody(t, rec)["data"].(map[string]any)["teams"].([]any)
	assert.Len(t, teams, 4)
}

func TestCreateTeam_ValidationError(t *testing.T) {
	srv := newTestServer(t)
	cookie := srv.loginWithLeague("captain")

	rec := srv.do(http.MethodPost, "/v1/teams", `{"division":"A"}`, cookie)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	errObj := decodeBody(t, rec)["error"].(map[string]any)
	assert.Equal(t, "INVALID_ARGUMENT", errObj["status"])
}

func TestDashboard(t *testing.T) {
	srv := newTestServer(t)
	cookie := srv.login("fan")

	rec := srv.do(http.MethodGet, "/v1/leagues/1/dashboard", "", cookie)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "Downtown Rec League", data["league"].(map[string]any)["name"])
	assert.Len(t, data["standings"].([]any), 3)

	rec = srv.do(http.MethodGet, "/v1/leagues/999/dashboard", "", cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_MetricsRoute(t *testing.T) {
	srv := newTestServer(t)
	rec := srv.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	mounted := NewRouter(NewHandler(nil, nil, nil, nil, nil, nil, nil, nil, nil), nil, nil, RouterConfig{
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("hoops_up 1\n"))
		}),
	})
	rec = httptest.NewRecorder()
	mounted.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hoops_up 1\n", rec.Body.String())
}
