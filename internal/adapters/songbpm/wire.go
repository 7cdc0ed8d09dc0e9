package songbpm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// envelope covers the three response shapes GetSongBPM answers with. The
// top-level key varies by endpoint: the generic search wraps its page in
// "search", the tempo endpoints in "tempo" (sometimes "search"), and the
// detail lookup wraps a single record in "song". Whichever key is populated
// wins.
type envelope struct {
	Search []wireSong `json:"search"`
	Tempo  []wireSong `json:"tempo"`
	Song   *wireSong  `json:"song"`
}

// page returns the list payload, preferring the "tempo" key when the server
// sent it at all.
func (e envelope) page() []wireSong {
	if e.Tempo != nil {
		return e.Tempo
	}
	return e.Search
}

// wireSong is the raw GetSongBPM song record. No field is mandatory.
type wireSong struct {
	ID           string     `json:"song_id"`
	Title        string     `json:"song_title"`
	Artist       wireArtist `json:"artist"`
	Album        wireAlbum  `json:"album"`
	Tempo        flexFloat  `json:"tempo"`
	Genre        string     `json:"genre"`
	Danceability flexFloat  `json:"danceability"`
	Energy       flexFloat  `json:"energy"`
	Key          string     `json:"key_of"`
}

type wireArtist struct {
	Name string `json:"name"`
}

type wireAlbum struct {
	Title string `json:"title"`
}

// flexFloat decodes a numeric field that the API serves either as a JSON
// number or as a quoted string (tempo in particular comes back as "180").
// null, an empty string, and an absent field all decode to 0.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("songbpm adapter: numeric field: %w", err)
		}
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("songbpm adapter: numeric field %q: %w", s, err)
		}
		*f = flexFloat(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("songbpm adapter: numeric field: %w", err)
	}
	*f = flexFloat(v)
	return nil
}
