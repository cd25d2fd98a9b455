package match

import "errors"

var (
	// ErrNotFound is returned when a match id does not resolve.
	ErrNotFound = errors.New("match not found")
	// ErrNotParticipant rejects callers who are not one of the two players.
	ErrNotParticipant = errors.New("player is not a participant in this match")
	// ErrNotAllowed rejects a participant acting outside their role, such as
	// the challenger declining their own challenge.
	ErrNotAllowed = errors.New("not allowed")
	// ErrSelfChallenge rejects a match against oneself.
	ErrSelfChallenge = errors.New("cannot challenge yourself")
	// ErrDuplicatePending rejects a second unresolved challenge between the
	// same pair of players, in either order.
	ErrDuplicatePending = errors.New("a pending match already exists between these players")
	// ErrWrongState rejects an operation invalid for the current status.
	ErrWrongState = errors.New("operation invalid for current match status")
	// ErrNegativeScore rejects scores below zero.
	ErrNegativeScore = errors.New("scores must be non-negative")
	// ErrScoresNotSet rejects agreement before a score submission.
	ErrScoresNotSet = errors.New("scores have not been submitted")
)
