package interfaces

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// OptionalInt distinguishes a JSON key that is absent from one present with a
// null value. account_transfer_id must be in the payload, but may be null.
type OptionalInt struct {
	Present bool
	Value   *int
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// pathID parses a numeric path segment. A non-numeric id means the route does
// not exist, so callers answer 404 rather than 400.
func pathID(r *http.Request, name string) (int, error) {
	return strconv.Atoi(r.PathValue(name))
}
