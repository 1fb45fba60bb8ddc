package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metricsHandler http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}
}

func registerAuthRoutes(mux *http.ServeMux, handler *Handler, sessions *SessionManager) {
	mux.HandleFunc("POST /v1/auth/register", handler.Register)
	mux.HandleFunc("POST /v1/auth/login", handler.Login)
	mux.HandleFunc("POST /v1/auth/logout", handler.Logout)
	mux.Handle("GET /v1/auth/session", RequireLogin(sessions, http.HandlerFunc(handler.GetSession)))
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler, sessions *SessionManager) {
	mux.Handle("GET /v1/leagues", RequireLogin(sessions, http.HandlerFunc(handler.ListLeagues)))
	mux.Handle("POST /v1/leagues", RequireLogin(sessions, http.HandlerFunc(handler.CreateLeague)))
	mux.Handle("POST /v1/leagues/{leagueID}/select", RequireLogin(sessions, http.HandlerFunc(handler.SelectLeague)))
	mux.Handle("GET /v1/leagues/{leagueID}/seasons", RequireLogin(sessions, http.HandlerFunc(handler.ListSeasons)))
	mux.Handle("POST /v1/leagues/{leagueID}/seasons", RequireLogin(sessions, http.HandlerFunc(handler.CreateSeason)))
	mux.Handle("GET /v1/leagues/{leagueID}/dashboard", RequireLogin(sessions, http.HandlerFunc(handler.GetDashboard)))
}

// registerLeagueScopedRoutes serves routes that work on the session's selected league.
func registerLeagueScopedRoutes(mux *http.ServeMux, handler *Handler, sessions *SessionManager) {
	scoped := func(h http.HandlerFunc) http.Handler {
		return RequireLogin(sessions, RequireLeague(h))
	}

	mux.Handle("GET /v1/teams", scoped(handler.ListTeams))
	mux.Handle("POST /v1/teams", scoped(handler.CreateTeam))
	mux.Handle("POST /v1/teams/quick-upload", scoped(handler.QuickUpload))
	mux.Handle("GET /v1/teams/{teamID}", scoped(handler.GetTeamDetails))
	mux.Handle("GET /v1/games", scoped(handler.ListGames))
	mux.Handle("POST /v1/games/schedule", scoped(handler.ScheduleGame))
	mux.Handle("POST /v1/games/start", scoped(handler.StartGame))
	mux.Handle("GET /v1/games/{gameID}", scoped(handler.GetGame))
	mux.Handle("GET /v1/games/{gameID}/summary", scoped(handler.GetGameSummary))
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler, sessions *SessionManager) {
	mux.Handle("GET /v1/players", RequireLogin(sessions, http.HandlerFunc(handler.ListPlayers)))
	mux.Handle("POST /v1/players", RequireLogin(sessions, http.HandlerFunc(handler.CreatePlayer)))
	mux.Handle("GET /v1/players/{playerID}", RequireLogin(sessions, http.HandlerFunc(handler.GetPlayer)))
	mux.Handle("PUT /v1/players/{playerID}", RequireLogin(sessions, http.HandlerFunc(handler.UpdatePlayer)))
}

func registerScoringRoutes(mux *http.ServeMux, handler *Handler, sessions *SessionManager) {
	scoped := func(h http.HandlerFunc) http.Handler {
		return RequireLogin(sessions, RequireLeague(h))
	}

	mux.Handle("POST /log_action", scoped(handler.LogAction))
	mux.Handle("POST /update_boxscore", scoped(handler.UpdateBoxScore))
	mux.Handle("POST /end_game", scoped(handler.EndGame))
	mux.Handle("GET /refresh_box_scores/{gameID}", scoped(handler.RefreshBoxScores))
}
