package dooz

import (
	"math/rand"

	"github.com/elimu-ai/Dooz/internal/entity"
)

const dieSides = 6

// RollDie - returns a settled die value between 1 and 6.
func RollDie() int {
	return rand.Intn(dieSides) + 1 //nolint: gosec // it's ok
}

// FirstPlayer - decides who opens the game from two settled rolls: the
// strictly higher roll starts, an equal roll keeps the first seat on turn.
func FirstPlayer(first, second *entity.Player) *entity.Player {
	if first.Dice >= second.Dice {
		return first
	}

	return second
}
