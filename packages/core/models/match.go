package models

import (
	"time"
)

const (
	GameOne = "Game 1"
	GameTwo = "Game 2"
)

// IsGameLabel reports whether label names one of the two games of a match.
func IsGameLabel(label string) bool {
	return label == GameOne || label == GameTwo
}

type Game struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	MatchID   uint      `gorm:"not null;uniqueIndex:idx_bracket_games_match_label" json:"-"`
	Label     string    `gorm:"size:20;not null;uniqueIndex:idx_bracket_games_match_label" json:"label"`
	Team1     Team      `gorm:"embedded;embeddedPrefix:team1_" json:"team1"`
	Team2     Team      `gorm:"embedded;embeddedPrefix:team2_" json:"team2"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Game) TableName() string {
	return "bracket_games"
}

// Players lists the four players of the game, team 1 first.
func (g Game) Players() []string {
	return []string{g.Team1.Player1, g.Team1.Player2, g.Team2.Player1, g.Team2.Player2}
}

// Match groups two simultaneous games. MatchNumber is assigned at generation
// and never changes; Position is the display order of the bracket.
type Match struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	MatchNumber int       `gorm:"not null;uniqueIndex" json:"match_number"`
	Position    int       `gorm:"not null;default:0;index" json:"position"`
	Games       []Game    `gorm:"foreignKey:MatchID;references:ID;constraint:OnDelete:CASCADE" json:"games"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Match) TableName() string {
	return "bracket_matches"
}

// Game returns the game stored under label, if present.
func (m *Match) Game(label string) (Game, bool) {
	for _, g := range m.Games {
		if g.Label == label {
			return g, true
		}
	}
	return Game{}, false
}

// SetGame stores g under its label, replacing any game with the same label.
func (m *Match) SetGame(g Game) {
	for i := range m.Games {
		if m.Games[i].Label == g.Label {
			m.Games[i] = g
			return
		}
	}
	m.Games = append(m.Games, g)
}

// ClearGame drops the game stored under label. It reports whether a game was removed.
func (m *Match) ClearGame(label string) bool {
	kept := make([]Game, 0, len(m.Games))
	for _, g := range m.Games {
		if g.Label != label {
			kept = append(kept, g)
		}
	}
	removed := len(kept) != len(m.Games)
	m.Games = kept
	return removed
}

func (m *Match) IsEmpty() bool {
	return len(m.Games) == 0
}

// Players returns every player across the match's games.
func (m *Match) Players() []string {
	players := make([]string, 0, 8)
	for _, g := range m.Games {
		players = append(players, g.Players()...)
	}
	return players
}

type RemoveGameRequest struct {
	Game string `json:"game" binding:"required"`
}

type RemoveGameResponse struct {
	MatchNumber  int    `json:"match_number"`
	Game         string `json:"game"`
	Removed      bool   `json:"removed"`
	DeletedMatch bool   `json:"deleted_match"`
}

type GenerateBracketResponse struct {
	Matches       []Match `json:"matches"`
	NbPlayers     int     `json:"nb_players"`
	NbTeams       int     `json:"nb_teams"`
	NbMatches     int     `json:"nb_matches"`
	StrandedTeams int     `json:"stranded_teams"`
}
