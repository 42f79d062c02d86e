package bracket

import "bab-insa-tournament/packages/core/models"

// BuildTeamPool returns every unordered pair of the given players, enumerated
// by ascending first index and then ascending second index. Fewer than two
// players yield an empty pool.
func BuildTeamPool(names []string) []models.Team {
	if len(names) < 2 {
		return []models.Team{}
	}

	pool := make([]models.Team, 0, len(names)*(len(names)-1)/2)
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			pool = append(pool, models.NewTeam(names[i], names[j]))
		}
	}

	return pool
}
