package models

type Stats struct {
	TotalPlayers   int64 `json:"total_players"`
	TotalMatches   int64 `json:"total_matches"`
	TotalGames     int64 `json:"total_games"`
	PartialMatches int64 `json:"partial_matches"`
}
