package entity

const (
	StatusWaiting  = "waiting"
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"

	PlayerTie = "-"

	DefaultMarkX = "X"
	DefaultMarkO = "O"
)

const (
	ModePvP     = "pvp"
	ModeWithBot = "bot"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Game is the full state of one session: the board, the two seats, whose
// turn it is and how the game ended, if it did. Exactly one of
// ongoing / finished-with-winner / finished-as-draw holds at any time.
type Game struct {
	ID           string    `json:"id"`
	Board        *Board    `json:"board"`
	Players      []*Player `json:"players,omitempty"`
	Turn         string    `json:"turn,omitempty"`
	Winner       string    `json:"winner,omitempty"`
	WinningCells []Cell    `json:"winning_cells,omitempty"`
	Status       string    `json:"status"`
	Mode         string    `json:"mode,omitempty"`
	Difficulty   string    `json:"difficulty,omitempty"`
	WinLength    int       `json:"win_length"`
}

// NewGame - creates a waiting session with an empty size×size board.
// A winLength outside [1, size] falls back to the board size.
func NewGame(id string, size, winLength int) *Game {
	board := NewBoard(size)
	if winLength < 1 || winLength > board.Size {
		winLength = board.Size
	}

	return &Game{
		ID:        id,
		Board:     board,
		Status:    StatusWaiting,
		WinLength: winLength,
	}
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsDraw() bool {
	return that.Status == StatusFinished && that.Winner == PlayerTie
}

func (that *Game) HasWinner() bool {
	return that.Status == StatusFinished && that.Winner != PlayerTie && that.Winner != ""
}

func (that *Game) IsWithBot() bool {
	return that.Mode == ModeWithBot
}

// PlayerByMark - finds the seat playing the given mark, or nil.
func (that *Game) PlayerByMark(mark string) *Player {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player
		}
	}

	return nil
}

// CurrentPlayer - returns the seat whose turn it is, or nil once the game
// has ended.
func (that *Game) CurrentPlayer() *Player {
	return that.PlayerByMark(that.Turn)
}

// BotPlayer - returns the computer seat, or nil in a two-human session.
func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}

	return nil
}

// OpponentMark - returns the mark facing the given one. Falls back to the
// default X/O pair when the seats are not populated yet.
func (that *Game) OpponentMark(mark string) string {
	for _, player := range that.Players {
		if player.Mark != mark {
			return player.Mark
		}
	}

	if mark == DefaultMarkX {
		return DefaultMarkO
	}

	return DefaultMarkX
}

// Snapshot - returns a deep copy safe to hand to observers; mutating it
// cannot touch the live session.
func (that *Game) Snapshot() *Game {
	snapshot := &Game{
		ID:         that.ID,
		Turn:       that.Turn,
		Winner:     that.Winner,
		Status:     that.Status,
		Mode:       that.Mode,
		Difficulty: that.Difficulty,
		WinLength:  that.WinLength,
	}

	if that.Board != nil {
		snapshot.Board = that.Board.Clone()
	}

	if len(that.Players) > 0 {
		snapshot.Players = make([]*Player, len(that.Players))
		for i, player := range that.Players {
			copied := *player
			snapshot.Players[i] = &copied
		}
	}

	if len(that.WinningCells) > 0 {
		snapshot.WinningCells = make([]Cell, len(that.WinningCells))
		copy(snapshot.WinningCells, that.WinningCells)
	}

	return snapshot
}
