package postgres

import "time"

// boxScoreCounterColumns are the additive columns touched by an increment.
var boxScoreCounterColumns = []string{
	"fga", "fgm", "three_fga", "three_fgm", "fta", "ftm",
	"oreb", "dreb", "assists", "steals", "blocks", "turnovers", "fouls", "points",
}

type boxScoreCounters struct {
	FGA       int `db:"fga"`
	FGM       int `db:"fgm"`
	ThreeFGA  int `db:"three_fga"`
	ThreeFGM  int `db:"three_fgm"`
	FTA       int `db:"fta"`
	FTM       int `db:"ftm"`
	OReb      int `db:"oreb"`
	DReb      int `db:"dreb"`
	Assists   int `db:"assists"`
	Steals    int `db:"steals"`
	Blocks    int `db:"blocks"`
	Turnovers int `db:"turnovers"`
	Fouls     int `db:"fouls"`
	Points    int `db:"points"`
}

type boxScoreTableModel struct {
	ID         int64     `db:"id,auto"`
	GameID     int64     `db:"game_id"`
	TeamID     int64     `db:"team_id"`
	PlayerID   int64     `db:"player_id"`
	LeagueID   int64     `db:"league_id"`
	SeasonID   int64     `db:"season_id"`
	DatePlayed time.Time `db:"date_played"`
	boxScoreCounters
	CreatedAt time.Time `db:"created_at,auto"`
	UpdatedAt time.Time `db:"updated_at,auto"`
}

type boxScoreLineRow struct {
	boxScoreTableModel
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	JerseyNumber int    `db:"jersey_number"`
}

type boxScoreInsertModel struct {
	GameID     int64     `db:"game_id"`
	TeamID     int64     `db:"team_id"`
	PlayerID   int64     `db:"player_id"`
	LeagueID   int64     `db:"league_id"`
	SeasonID   int64     `db:"season_id"`
	DatePlayed time.Time `db:"date_played"`
	FGA        int       `db:"fga"`
	FGM        int       `db:"fgm"`
	ThreeFGA   int       `db:"three_fga"`
	ThreeFGM   int       `db:"three_fgm"`
	FTA        int       `db:"fta"`
	FTM        int       `db:"ftm"`
	OReb       int       `db:"oreb"`
	DReb       int       `db:"dreb"`
	Assists    int       `db:"assists"`
	Steals     int       `db:"steals"`
	Blocks     int       `db:"blocks"`
	Turnovers  int       `db:"turnovers"`
	Fouls      int       `db:"fouls"`
	Points     int       `db:"points"`
}

type leaderRow struct {
	PlayerID  int64  `db:"player_id"`
	TeamID    int64  `db:"team_id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Points    int    `db:"points"`
	FGM       int    `db:"fgm"`
	FGA       int    `db:"fga"`
}

type playerSeasonRow struct {
	PlayerID    int64  `db:"player_id"`
	FirstName   string `db:"first_name"`
	LastName    string `db:"last_name"`
	GamesPlayed int    `db:"games_played"`
	Points      int    `db:"points"`
	FGM         int    `db:"fgm"`
	FGA         int    `db:"fga"`
}
