package entity

const (
	PlayerTypeHuman = "human"
	PlayerTypeBot   = "bot"
)

// Player is one of the two seats in a session. Dice holds the settled
// opening-roll value and means nothing once the game is under way.
type Player struct {
	Name string `json:"name"`
	Mark string `json:"mark"`
	Type string `json:"type"`
	Dice int    `json:"dice,omitempty"`
}

func NewPlayer(name, mark string) *Player {
	return &Player{
		Name: name,
		Mark: mark,
		Type: PlayerTypeHuman,
	}
}

func NewBotPlayer(name, mark string) *Player {
	return &Player{
		Name: name,
		Mark: mark,
		Type: PlayerTypeBot,
	}
}

func (that *Player) IsBot() bool {
	return that.Type == PlayerTypeBot
}
