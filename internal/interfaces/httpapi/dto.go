package httpapi

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/hoops-league/internal/domain/boxscore"
	"github.com/riskibarqy/hoops-league/internal/domain/game"
	"github.com/riskibarqy/hoops-league/internal/domain/gamelog"
	"github.com/riskibarqy/hoops-league/internal/domain/league"
	"github.com/riskibarqy/hoops-league/internal/domain/player"
	"github.com/riskibarqy/hoops-league/internal/domain/season"
	"github.com/riskibarqy/hoops-league/internal/domain/standing"
	"github.com/riskibarqy/hoops-league/internal/domain/team"
	"github.com/riskibarqy/hoops-league/internal/domain/user"
	"github.com/riskibarqy/hoops-league/internal/usecase"
)

const dateLayout = "2006-01-02"

// flexibleID accepts ids sent either as JSON numbers or as numeric strings,
// which is how form values reach the scoring routes.
type flexibleID int64

func (v *flexibleID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(bytes.Trim(data, `"`)))
	if raw == "" || raw == "null" {
		*v = 0
		return nil
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", raw)
	}
	*v = flexibleID(parsed)
	return nil
}

func parseDate(name, raw string) (time.Time, error) {
	value, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must use YYYY-MM-DD", usecase.ErrInvalidInput, name)
	}
	return value, nil
}

func parseOptionalDate(name, raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	value, err := parseDate(name, raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func formatOptionalDate(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.Format(dateLayout)
}

type userDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func userToDTO(v user.User) userDTO {
	return userDTO{
		ID:       v.ID,
		Username: v.Username,
		Email:    v.Email,
		Role:     string(v.Role),
	}
}

type sessionDTO struct {
	User             userDTO `json:"user"`
	SelectedLeagueID int64   `json:"selected_league_id,omitempty"`
	ExpiresAt        string  `json:"expires_at"`
}

type leagueDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func leagueToDTO(v league.League) leagueDTO {
	return leagueDTO{ID: v.ID, Name: v.Name, Description: v.Description}
}

type seasonDTO struct {
	ID        int64  `json:"id"`
	LeagueID  int64  `json:"league_id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

func seasonToDTO(v season.Season) seasonDTO {
	return seasonDTO{
		ID:        v.ID,
		LeagueID:  v.LeagueID,
		Name:      v.Name,
		StartDate: formatOptionalDate(v.StartDate),
		EndDate:   formatOptionalDate(v.EndDate),
	}
}

func seasonsToDTO(items []season.Season) []seasonDTO {
	out := make([]seasonDTO, 0, len(items))
	for _, item := range items {
		out = append(out, seasonToDTO(item))
	}
	return out
}

type teamDTO struct {
	ID            int64  `json:"id"`
	LeagueID      int64  `json:"league_id"`
	Name          string `json:"name"`
	Division      string `json:"division,omitempty"`
	Captain       string `json:"captain,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`
	ContactEmail  string `json:"contact_email,omitempty"`
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:            v.ID,
		LeagueID:      v.LeagueID,
		Name:          v.Name,
		Division:      v.Division,
		Captain:       v.Captain,
		ContactNumber: v.ContactNumber,
		ContactEmail:  v.ContactEmail,
	}
}

type playerDTO struct {
	ID              int64    `json:"id"`
	TeamID          int64    `json:"team_id"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	JerseyNumber    int      `json:"jersey_number"`
	Age             *int     `json:"age,omitempty"`
	PhoneNumber     string   `json:"phone_number,omitempty"`
	Email           string   `json:"email,omitempty"`
	Position        string   `json:"position,omitempty"`
	Weight          *float64 `json:"weight,omitempty"`
	Height          *float64 `json:"height,omitempty"`
	CountryOfOrigin string   `json:"country_of_origin,omitempty"`
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:              v.ID,
		TeamID:          v.TeamID,
		FirstName:       v.FirstName,
		LastName:        v.LastName,
		JerseyNumber:    v.JerseyNumber,
		Age:             v.Age,
		PhoneNumber:     v.PhoneNumber,
		Email:           v.Email,
		Position:        v.Position,
		Weight:          v.Weight,
		Height:          v.Height,
		CountryOfOrigin: v.CountryOfOrigin,
	}
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}
	return out
}

type gameDTO struct {
	ID           int64  `json:"id"`
	Date         string `json:"date"`
	Team1ID      int64  `json:"team1_id"`
	Team2ID      int64  `json:"team2_id"`
	Team1Score   int    `json:"team1_score"`
	Team2Score   int    `json:"team2_score"`
	WinnerTeamID *int64 `json:"winner_team_id"`
	Status       string `json:"status"`
	LeagueID     int64  `json:"league_id,omitempty"`
	SeasonID     int64  `json:"season_id,omitempty"`
}

func gameToDTO(v game.Game) gameDTO {
	return gameDTO{
		ID:           v.ID,
		Date:         v.Date.Format(dateLayout),
		Team1ID:      v.Team1ID,
		Team2ID:      v.Team2ID,
		Team1Score:   v.Team1Score,
		Team2Score:   v.Team2Score,
		WinnerTeamID: v.WinnerTeamID,
		Status:       string(v.Status),
		LeagueID:     v.LeagueID,
		SeasonID:     v.SeasonID,
	}
}

func gamesToDTO(items []game.Game) []gameDTO {
	out := make([]gameDTO, 0, len(items))
	for _, item := range items {
		out = append(out, gameToDTO(item))
	}
	return out
}

type countersDTO struct {
	Points         int     `json:"points"`
	FGM            int     `json:"fgm"`
	FGA            int     `json:"fga"`
	FGPercent      float64 `json:"fg_pct"`
	ThreeFGM       int     `json:"three_fgm"`
	ThreeFGA       int     `json:"three_fga"`
	ThreeFGPercent float64 `json:"three_fg_pct"`
	FTM            int     `json:"ftm"`
	FTA            int     `json:"fta"`
	OReb           int     `json:"oreb"`
	DReb           int     `json:"dreb"`
	Rebounds       int     `json:"reb"`
	Assists        int     `json:"assists"`
	Steals         int     `json:"steals"`
	Blocks         int     `json:"blocks"`
	Turnovers      int     `json:"turnovers"`
	Fouls          int     `json:"fouls"`
}

func countersToDTO(c boxscore.Counters) countersDTO {
	return countersDTO{
		Points:         c.Points,
		FGM:            c.FGM,
		FGA:            c.FGA,
		FGPercent:      c.FGPercent(),
		ThreeFGM:       c.ThreeFGM,
		ThreeFGA:       c.ThreeFGA,
		ThreeFGPercent: c.ThreeFGPercent(),
		FTM:            c.FTM,
		FTA:            c.FTA,
		OReb:           c.OReb,
		DReb:           c.DReb,
		Rebounds:       c.Rebounds(),
		Assists:        c.Assists,
		Steals:         c.Steals,
		Blocks:         c.Blocks,
		Turnovers:      c.Turnovers,
		Fouls:          c.Fouls,
	}
}

type boxScoreLineDTO struct {
	PlayerID     int64  `json:"player_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	JerseyNumber int    `json:"jersey_number"`
	countersDTO
}

type teamBoxScoreDTO struct {
	Team   teamDTO           `json:"team"`
	Lines  []boxScoreLineDTO `json:"lines"`
	Totals countersDTO       `json:"totals"`
}

func teamBoxScoreToDTO(v usecase.TeamBoxScore) teamBoxScoreDTO {
	lines := make([]boxScoreLineDTO, 0, len(v.Lines))
	for _, line := range v.Lines {
		lines = append(lines, boxScoreLineDTO{
			PlayerID:     line.Key.PlayerID,
			FirstName:    line.FirstName,
			LastName:     line.LastName,
			JerseyNumber: line.JerseyNumber,
			countersDTO:  countersToDTO(line.Counters),
		})
	}
	return teamBoxScoreDTO{
		Team:   teamToDTO(v.Team),
		Lines:  lines,
		Totals: countersToDTO(v.Totals),
	}
}

type gameLogDTO struct {
	ID          int64  `json:"id"`
	GameID      int64  `json:"game_id"`
	TeamID      int64  `json:"team_id"`
	PlayerID    int64  `json:"player_id"`
	ActionType  string `json:"action_type"`
	Action      string `json:"action"`
	Description string `json:"description,omitempty"`
	GameClock   string `json:"game_clock"`
	LoggedAt    string `json:"logged_at"`
}

func gameLogsToDTO(items []gamelog.Entry) []gameLogDTO {
	out := make([]gameLogDTO, 0, len(items))
	for _, item := range items {
		out = append(out, gameLogDTO{
			ID:          item.ID,
			GameID:      item.GameID,
			TeamID:      item.TeamID,
			PlayerID:    item.PlayerID,
			ActionType:  item.ActionType,
			Action:      item.Action,
			Description: item.Description,
			GameClock:   item.GameClock,
			LoggedAt:    item.LoggedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}

type standingDTO struct {
	Rank     int    `json:"rank"`
	TeamID   int64  `json:"team_id"`
	TeamName string `json:"team_name"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Record   string `json:"record"`
}

func standingToDTO(v standing.Record) standingDTO {
	return standingDTO{
		Rank:     v.Rank,
		TeamID:   v.TeamID,
		TeamName: v.TeamName,
		Wins:     v.Wins,
		Losses:   v.Losses,
		Record:   fmt.Sprintf("%d - %d", v.Wins, v.Losses),
	}
}

func standingsToDTO(items []standing.Record) []standingDTO {
	out := make([]standingDTO, 0, len(items))
	for _, item := range items {
		out = append(out, standingToDTO(item))
	}
	return out
}

type leaderDTO struct {
	PlayerID  int64   `json:"player_id"`
	TeamID    int64   `json:"team_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Points    int     `json:"points"`
	FGM       int     `json:"fgm"`
	FGA       int     `json:"fga"`
	FGPercent float64 `json:"fg_pct"`
}

func leaderToDTO(v boxscore.Leader) leaderDTO {
	return leaderDTO{
		PlayerID:  v.PlayerID,
		TeamID:    v.TeamID,
		FirstName: v.FirstName,
		LastName:  v.LastName,
		Points:    v.Points,
		FGM:       v.FGM,
		FGA:       v.FGA,
		FGPercent: v.FGPercent,
	}
}

func optionalLeaderToDTO(v *boxscore.Leader) *leaderDTO {
	if v == nil {
		return nil
	}
	out := leaderToDTO(*v)
	return &out
}

type dashboardDTO struct {
	League        leagueDTO     `json:"league"`
	Seasons       []seasonDTO   `json:"seasons"`
	Season        *seasonDTO    `json:"season,omitempty"`
	LastGame      *gameDTO      `json:"last_game,omitempty"`
	LastGameMVP   *leaderDTO    `json:"last_game_mvp,omitempty"`
	SeasonMVP     *leaderDTO    `json:"season_mvp,omitempty"`
	Standings     []standingDTO `json:"standings"`
	TopScorers    []leaderDTO   `json:"top_scorers"`
	UpcomingGames []gameDTO     `json:"upcoming_games"`
}

func dashboardToDTO(v usecase.LeagueDashboard) dashboardDTO {
	out := dashboardDTO{
		League:        leagueToDTO(v.League),
		Seasons:       seasonsToDTO(v.Seasons),
		LastGameMVP:   optionalLeaderToDTO(v.LastGameMVP),
		SeasonMVP:     optionalLeaderToDTO(v.SeasonMVP),
		Standings:     standingsToDTO(v.Standings),
		TopScorers:    make([]leaderDTO, 0, len(v.TopScorers)),
		UpcomingGames: gamesToDTO(v.UpcomingGames),
	}
	if v.Season != nil {
		item := seasonToDTO(*v.Season)
		out.Season = &item
	}
	if v.LastGame != nil {
		item := gameToDTO(*v.LastGame)
		out.LastGame = &item
	}
	for _, item := range v.TopScorers {
		out.TopScorers = append(out.TopScorers, leaderToDTO(item))
	}
	return out
}

type teamWithRecordDTO struct {
	Team   teamDTO     `json:"team"`
	Record standingDTO `json:"record"`
}

type teamStandingsDTO struct {
	Season *seasonDTO          `json:"season,omitempty"`
	Teams  []teamWithRecordDTO `json:"teams"`
}

func teamStandingsToDTO(v usecase.TeamStandings) teamStandingsDTO {
	out := teamStandingsDTO{Teams: make([]teamWithRecordDTO, 0, len(v.Records))}
	if v.Season != nil {
		item := seasonToDTO(*v.Season)
		out.Season = &item
	}
	for _, item := range v.Records {
		out.Teams = append(out.Teams, teamWithRecordDTO{
			Team:   teamToDTO(item.Team),
			Record: standingToDTO(item.Record),
		})
	}
	return out
}

type teamGamePerformanceDTO struct {
	GameID    int64   `json:"game_id"`
	Date      string  `json:"date"`
	Points    int     `json:"points"`
	FGPercent float64 `json:"fg_pct"`
}

type playerAverageDTO struct {
	PlayerID    int64   `json:"player_id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	GamesPlayed int     `json:"games_played"`
	AvgPoints   float64 `json:"avg_points"`
	FGPercent   float64 `json:"fg_pct"`
}

type teamGameResultDTO struct {
	GameID        int64  `json:"game_id"`
	Date          string `json:"date"`
	Status        string `json:"status"`
	OpponentID    int64  `json:"opponent_id"`
	OpponentName  string `json:"opponent_name"`
	TeamScore     int    `json:"team_score"`
	OpponentScore int    `json:"opponent_score"`
	Result        string `json:"result"`
}

type teamDetailsDTO struct {
	Team           teamDTO                  `json:"team"`
	Season         *seasonDTO               `json:"season,omitempty"`
	Record         standingDTO              `json:"record"`
	RecentGames    []teamGamePerformanceDTO `json:"recent_games"`
	PlayerAverages []playerAverageDTO       `json:"player_averages"`
	History        []teamGameResultDTO      `json:"history"`
}

func teamDetailsToDTO(v usecase.TeamDetails) teamDetailsDTO {
	out := teamDetailsDTO{
		Team:           teamToDTO(v.Team),
		Record:         standingToDTO(v.Record),
		RecentGames:    make([]teamGamePerformanceDTO, 0, len(v.RecentGames)),
		PlayerAverages: make([]playerAverageDTO, 0, len(v.PlayerAverages)),
		History:        make([]teamGameResultDTO, 0, len(v.History)),
	}
	if v.Season != nil {
		item := seasonToDTO(*v.Season)
		out.Season = &item
	}
	for _, item := range v.RecentGames {
		out.RecentGames = append(out.RecentGames, teamGamePerformanceDTO{
			GameID:    item.GameID,
			Date:      item.Date.Format(dateLayout),
			Points:    item.Points,
			FGPercent: item.FGPercent,
		})
	}
	for _, item := range v.PlayerAverages {
		out.PlayerAverages = append(out.PlayerAverages, playerAverageDTO{
			PlayerID:    item.PlayerID,
			FirstName:   item.FirstName,
			LastName:    item.LastName,
			GamesPlayed: item.GamesPlayed,
			AvgPoints:   item.AvgPoints,
			FGPercent:   item.FGPercent,
		})
	}
	for _, item := range v.History {
		out.History = append(out.History, teamGameResultDTO{
			GameID:        item.GameID,
			Date:          item.Date.Format(dateLayout),
			Status:        string(item.Status),
			OpponentID:    item.OpponentID,
			OpponentName:  item.OpponentName,
			TeamScore:     item.TeamScore,
			OpponentScore: item.OpponentScore,
			Result:        item.Result,
		})
	}
	return out
}

type gamesByStatusDTO struct {
	Scheduled []gameDTO `json:"scheduled"`
	Ongoing   []gameDTO `json:"ongoing"`
	Played    []gameDTO `json:"played"`
}

type gameDetailsDTO struct {
	Game         gameDTO         `json:"game"`
	Team1        teamBoxScoreDTO `json:"team1"`
	Team2        teamBoxScoreDTO `json:"team2"`
	Team1Players []playerDTO     `json:"team1_players,omitempty"`
	Team2Players []playerDTO     `json:"team2_players,omitempty"`
	Logs         []gameLogDTO    `json:"logs"`
}
