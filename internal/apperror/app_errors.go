package apperror

import "errors"

var (
	ErrNoActiveGame     = errors.New("no active game")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrSettingNotFound  = errors.New("setting not found")
)
