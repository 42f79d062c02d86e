package models

import "fmt"

// Team is an unordered pair of two distinct players, identified by name.
// It is stored inline in a Game and has no identity of its own.
type Team struct {
	Player1 string `gorm:"size:255;not null" json:"player1"`
	Player2 string `gorm:"size:255;not null" json:"player2"`
}

func NewTeam(player1, player2 string) Team {
	return Team{Player1: player1, Player2: player2}
}

// Equal reports whether both teams hold the same two players, in any order.
func (t Team) Equal(other Team) bool {
	return (t.Player1 == other.Player1 && t.Player2 == other.Player2) ||
		(t.Player1 == other.Player2 && t.Player2 == other.Player1)
}

func (t Team) Has(name string) bool {
	return t.Player1 == name || t.Player2 == name
}

func (t Team) Players() [2]string {
	return [2]string{t.Player1, t.Player2}
}

// Key is an order-independent identifier, usable as a map key.
func (t Team) Key() string {
	if t.Player1 < t.Player2 {
		return t.Player1 + "\x00" + t.Player2
	}
	return t.Player2 + "\x00" + t.Player1
}

func (t Team) String() string {
	return fmt.Sprintf("%s & %s", t.Player1, t.Player2)
}
