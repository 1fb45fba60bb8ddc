package boxscore

import "strings"

// Action is a scorekeeper event label.
type Action string

const (
	ActionTwoPointMade     Action = "2-Point Made"
	ActionTwoPointMiss     Action = "2-Point Miss"
	ActionThreePointMade   Action = "3-Point Made"
	ActionThreePointMiss   Action = "3-Point Miss"
	ActionFreeThrowMade    Action = "FT Made"
	ActionFreeThrowMiss    Action = "FT Miss"
	ActionOffensiveRebound Action = "Offensive Rebound"
	ActionDefensiveRebound Action = "Defensive Rebound"
	ActionAssist           Action = "Assist"
	ActionSteal            Action = "Steal"
	ActionBlock            Action = "Block"
	ActionTurnover         Action = "Turnover"
	ActionFoul             Action = "Foul"
)

var deltas = map[Action]Counters{
	ActionTwoPointMade:     {FGA: 1, FGM: 1, Points: 2},
	ActionTwoPointMiss:     {FGA: 1},
	ActionThreePointMade:   {FGA: 1, FGM: 1, ThreeFGA: 1, ThreeFGM: 1, Points: 3},
	ActionThreePointMiss:   {FGA: 1, ThreeFGA: 1},
	ActionFreeThrowMade:    {FTA: 1, FTM: 1, Points: 1},
	ActionFreeThrowMiss:    {FTA: 1},
	ActionOffensiveRebound: {OReb: 1},
	ActionDefensiveRebound: {DReb: 1},
	ActionAssist:           {Assists: 1},
	ActionSteal:            {Steals: 1},
	ActionBlock:            {Blocks: 1},
	ActionTurnover:         {Turnovers: 1},
	ActionFoul:             {Fouls: 1},
}

// DeltaFor returns the counter increments for a label. Unknown labels yield
// a zero delta and false.
func DeltaFor(label string) (Counters, bool) {
	delta, ok := deltas[Action(strings.TrimSpace(label))]
	return delta, ok
}

// KnownActions lists every label with a counter effect.
func KnownActions() []Action {
	return []Action{
		ActionTwoPointMade,
		ActionTwoPointMiss,
		ActionThreePointMade,
		ActionThreePointMiss,
		ActionFreeThrowMade,
		ActionFreeThrowMiss,
		ActionOffensiveRebound,
		ActionDefensiveRebound,
		ActionAssist,
		ActionSteal,
		ActionBlock,
		ActionTurnover,
		ActionFoul,
	}
}
