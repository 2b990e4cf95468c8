package entity

import "time"

// Match is the archived record of one finished game.
type Match struct {
	ID         string    `json:"id"`
	Mode       string    `json:"mode"`
	Difficulty string    `json:"difficulty,omitempty"`
	BoardSize  int       `json:"board_size"`
	WinLength  int       `json:"win_length"`
	Winner     string    `json:"winner"`
	Moves      int       `json:"moves"`
	FinishedAt time.Time `json:"finished_at"`
}
