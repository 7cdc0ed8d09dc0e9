package domain

// Song represents one song record returned by the tempo search.
//
// Every field is optional: the upstream service omits attributes freely, and
// a zero value means "unknown", never an error. In particular a Danceability
// of 0 cannot be told apart from an absent value; the result filter leans on
// that convention deliberately.
type Song struct {
	ID           string
	Title        string
	Artist       string
	Album        string
	Tempo        float64
	Genre        string
	Danceability float64 // normalized [0,1]
	Energy       float64 // normalized [0,1]
	Key          string  // musical key, e.g. "F#m"
}
