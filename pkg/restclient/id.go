package restclient

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// ID is a server-assigned identifier. Servers send it as a number or a
// string; the console always carries it as a string.
type ID string

func (id ID) String() string { return string(id) }

func (id ID) IsZero() bool { return id == "" }

// UnmarshalJSON accepts 7, "7" and null.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.Errorf("id must be a number or a string, got %s", b)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON writes canonical integers as numbers. Anything else, such as
// "007" or "+5", stays a string.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}
