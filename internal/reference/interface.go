package reference

// Store defines read access to venues, sports and challenges. The engine never
// writes reference data; seeding happens out of band.
type Store interface {
	GetVenue(venueID string) (*Venue, error)
	GetSport(sportID string) (*Sport, error)
	GetChallenge(challengeID string) (*Challenge, error)
	GetPlayerName(playerID string) (string, error)
}
