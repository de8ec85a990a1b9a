package game

// Status strings reported back to the requester. Unauthorized or
// wrong-state events are dropped silently and never produce one of these.
var (
	ErrStatusMatchNotFound      string = "MATCH_NOT_FOUND"
	ErrStatusMatchFull          string = "MATCH_FULL"
	ErrStatusInvalidCombination string = "INVALID_COMBINATION"
)
