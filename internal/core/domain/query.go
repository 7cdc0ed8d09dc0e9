package domain

// DefaultLimit caps a query's result count when the caller does not set one.
const DefaultLimit = 20

// QuerySpec describes one logical tempo search. It is constructed per call
// and discarded once the results are produced.
type QuerySpec struct {
	BPM       int
	Tolerance int    // symmetric half-width of the BPM window
	Genre     string // optional, matched case-insensitively
	Artist    string // optional, scopes the search to one artist

	// Danceability bounds in [0,1]. A nil pointer means no bound. A pointer
	// to exactly 0 is also treated as no bound, mirroring the upstream
	// tool's behavior.
	DanceabilityMin *float64
	DanceabilityMax *float64

	Limit int // positive; 0 falls back to DefaultLimit
}

// Window returns the effective BPM range [BPM-Tolerance, BPM+Tolerance]
// passed upstream. The bounds are not validated; the service defines what
// ranges it accepts.
func (q QuerySpec) Window() (min int, max int) {
	return q.BPM - q.Tolerance, q.BPM + q.Tolerance
}

// EffectiveLimit returns the result cap, substituting DefaultLimit for a
// non-positive value.
func (q QuerySpec) EffectiveLimit() int {
	if q.Limit <= 0 {
		return DefaultLimit
	}
	return q.Limit
}
