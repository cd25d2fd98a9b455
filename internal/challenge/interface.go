package challenge

// Recorder settles solo challenge attempts: one attempt row and one stats
// credit per call, in a single transaction.
type Recorder interface {
	RecordAttempt(playerID, challengeID string, scoreValue, maxValue int) (*Result, error)
}
