// Package cache decorates the league, season and team repositories with the
// read-through cache from platform/cache. Writes go straight to the wrapped
// repository and then drop the keys they make stale.
package cache

import "strconv"

const (
	keyLeagueList   = "league:list"
	keyLeagueID     = "league:id:"
	keySeasonPrefix = "season:"
	keySeasonLeague = "season:league:"
	keySeasonLatest = "season:latest:"
	keySeasonID     = "season:id:"
	keyTeamLeague   = "team:league:"
	keyTeamID       = "team:id:"
)

func key(prefix string, id int64) string {
	return prefix + strconv.FormatInt(id, 10)
}
