package bracket

import (
	"slices"

	"bab-insa-tournament/packages/core/models"
)

// TeamsPerMatch is the number of player-disjoint teams that make up a match:
// two per game, two games per match.
const TeamsPerMatch = 4

// Assembly is the outcome of one run of AssembleMatches.
type Assembly struct {
	Matches []models.Match

	// Stranded holds the teams picked by the abandoned final attempt. They
	// are consumed by that attempt and never go back to the pool.
	Stranded []models.Team

	// Remaining holds the pool entries that were never picked.
	Remaining []models.Team
}

// AssembleMatches builds up to maxMatches matches from pool using greedy
// first-fit selection. Each attempt walks the pool in order and takes every
// team whose players are all still free, until four teams are held. The first
// attempt that cannot complete ends the assembly.
//
// The selection never backtracks, so it can strand teams that an optimal
// matching would have used. pool itself is not modified.
func AssembleMatches(pool []models.Team, maxMatches int) Assembly {
	working := slices.Clone(pool)
	var assembly Assembly

	for attempt := 0; attempt < maxMatches; attempt++ {
		selected, rest := selectDisjoint(working, TeamsPerMatch)
		working = rest

		if len(selected) < TeamsPerMatch {
			assembly.Stranded = selected
			break
		}

		assembly.Matches = append(assembly.Matches, newMatch(attempt+1, selected))
	}

	assembly.Remaining = working
	return assembly
}

// selectDisjoint picks up to want teams with no shared player. One ordered
// pass picks the same teams as rescanning from the head after every pick,
// because a team that is ineligible once stays ineligible.
func selectDisjoint(pool []models.Team, want int) (selected, rest []models.Team) {
	used := make(map[string]struct{}, want*2)
	selected = make([]models.Team, 0, want)
	rest = make([]models.Team, 0, len(pool))

	for _, team := range pool {
		if len(selected) < want && !isUsed(used, team) {
			selected = append(selected, team)
			used[team.Player1] = struct{}{}
			used[team.Player2] = struct{}{}
			continue
		}
		rest = append(rest, team)
	}

	return selected, rest
}

func isUsed(used map[string]struct{}, team models.Team) bool {
	_, p1 := used[team.Player1]
	_, p2 := used[team.Player2]
	return p1 || p2
}

func newMatch(number int, teams []models.Team) models.Match {
	return models.Match{
		MatchNumber: number,
		Games: []models.Game{
			{Label: models.GameOne, Team1: teams[0], Team2: teams[1]},
			{Label: models.GameTwo, Team1: teams[2], Team2: teams[3]},
		},
	}
}
