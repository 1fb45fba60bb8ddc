package httpapi

import (
	"fmt"
	"html/template"

	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/hoops-league/internal/usecase"
)

var teamBoxScoreTemplate = template.Must(template.New("team_box_score").Funcs(template.FuncMap{
	"pct": func(v float64) string { return fmt.Sprintf("%.1f", v) },
}).Parse(`<table class="box-score" data-team-id="{{.Team.ID}}">
<caption>{{.Team.Name}}</caption>
<thead><tr><th>#</th><th>Player</th><th>PTS</th><th>FGM-FGA</th><th>FG%</th><th>3PM-3PA</th><th>FTM-FTA</th><th>OREB</th><th>DREB</th><th>REB</th><th>AST</th><th>STL</th><th>BLK</th><th>TO</th><th>PF</th></tr></thead>
<tbody>
{{- range .Lines}}
<tr data-player-id="{{.Key.PlayerID}}"><td>{{.JerseyNumber}}</td><td>{{.FirstName}} {{.LastName}}</td><td>{{.Points}}</td><td>{{.FGM}}-{{.FGA}}</td><td>{{pct .FGPercent}}</td><td>{{.ThreeFGM}}-{{.ThreeFGA}}</td><td>{{.FTM}}-{{.FTA}}</td><td>{{.OReb}}</td><td>{{.DReb}}</td><td>{{.Rebounds}}</td><td>{{.Assists}}</td><td>{{.Steals}}</td><td>{{.Blocks}}</td><td>{{.Turnovers}}</td><td>{{.Fouls}}</td></tr>
{{- end}}
</tbody>
{{- with .Totals}}
<tfoot><tr><td></td><td>Totals</td><td>{{.Points}}</td><td>{{.FGM}}-{{.FGA}}</td><td>{{pct .FGPercent}}</td><td>{{.ThreeFGM}}-{{.ThreeFGA}}</td><td>{{.FTM}}-{{.FTA}}</td><td>{{.OReb}}</td><td>{{.DReb}}</td><td>{{.Rebounds}}</td><td>{{.Assists}}</td><td>{{.Steals}}</td><td>{{.Blocks}}</td><td>{{.Turnovers}}</td><td>{{.Fouls}}</td></tr></tfoot>
{{- end}}
</table>`))

// renderTeamBoxScore renders one side of a game as an HTML table fragment.
func renderTeamBoxScore(v usecase.TeamBoxScore) (string, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := teamBoxScoreTemplate.Execute(buf, v); err != nil {
		return "", fmt.Errorf("render team box score: %w", err)
	}
	return buf.String(), nil
}
