package songbpm

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/tempolab/pacer/internal/core/domain"
)

// Request describes one upstream call: a path relative to the API base URL
// and its query parameters.
type Request struct {
	Path   string
	Params url.Values
}

// BuildRequest derives the upstream request shape for a tempo search. An
// artist filter selects the artist-scoped tempo endpoint; otherwise the
// general tempo-range endpoint is used. The result limit is always passed
// along. Nothing is validated here: a BPM of 0 or a negative tolerance go
// through as-is and the service decides what it accepts.
func BuildRequest(spec domain.QuerySpec) Request {
	bpmMin, bpmMax := spec.Window()

	params := url.Values{}
	params.Set("limit", strconv.Itoa(spec.EffectiveLimit()))

	if spec.Artist != "" {
		return Request{
			Path:   fmt.Sprintf("/artist/%s/tempo/%d/%d/", url.PathEscape(spec.Artist), bpmMin, bpmMax),
			Params: params,
		}
	}

	return Request{
		Path:   fmt.Sprintf("/tempo/%d/%d/", bpmMin, bpmMax),
		Params: params,
	}
}
