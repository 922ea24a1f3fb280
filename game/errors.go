package game

import "errors"

// Validation failures raised from ApplyAction. All are synchronous and leave
// the match playable; the transport relays them to the acting client only.
var (
	ErrPlayerNotFound   = errors.New("player not found")
	ErrUnknownAction    = errors.New("unknown action type")
	ErrCardNotInHand    = errors.New("card not in hand")
	ErrLandLimitReached = errors.New("already played a land this turn")
	ErrWrongPhase       = errors.New("can only play lands during a main phase")
	ErrNotALand         = errors.New("card is not a land")
	ErrDeckImportFailed = errors.New("failed to import deck")
)
