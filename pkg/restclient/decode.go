package restclient

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/iota-uz/pharma-admin/pkg/httpapi"
)

// Validatable records are checked right after decoding.
type Validatable interface {
	Validate() error
}

func checkRecord[T any](rec *T) error {
	if v, ok := any(rec).(Validatable); ok {
		return v.Validate()
	}
	if v, ok := any(*rec).(Validatable); ok {
		return v.Validate()
	}
	return nil
}

// unwrapData returns the value under "data" when body is an envelope whose
// data member has the wanted JSON shape ('{' or '[').
func unwrapData(body []byte, shape byte) ([]byte, bool) {
	if len(body) == 0 || body[0] != '{' {
		return nil, false
	}
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, false
	}
	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || data[0] != shape {
		return nil, false
	}
	return data, true
}

// decodeRecord accepts either the bare record or {data: record}. An empty
// body decodes to the zero record.
func decodeRecord[T any](body []byte) (T, error) {
	var out T
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return out, nil
	}
	if data, ok := unwrapData(body, '{'); ok {
		body = data
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, errors.Wrap(err, "decode record")
	}
	if err := checkRecord(&out); err != nil {
		return out, errors.Wrap(err, "invalid record")
	}
	return out, nil
}

// decodePage accepts a bare array or {data: [...], total_items: n}. When
// total_items is absent it defaults to the number of decoded rows.
func decodePage[T any](body []byte) (httpapi.Page[T], error) {
	body = bytes.TrimSpace(body)
	var page httpapi.Page[T]
	switch {
	case len(body) == 0:
		return page, errors.New("empty list body")
	case body[0] == '[':
		if err := json.Unmarshal(body, &page.Data); err != nil {
			return page, errors.Wrap(err, "decode list")
		}
		page.TotalItems = len(page.Data)
	case body[0] == '{':
		var raw struct {
			Data       json.RawMessage `json:"data"`
			TotalItems *int            `json:"total_items"`
		}
		if err := json.Unmarshal(body, &raw); err != nil {
			return page, errors.Wrap(err, "decode list envelope")
		}
		data := bytes.TrimSpace(raw.Data)
		if len(data) == 0 || data[0] != '[' {
			return page, errors.New("list envelope has no data array")
		}
		if err := json.Unmarshal(data, &page.Data); err != nil {
			return page, errors.Wrap(err, "decode list")
		}
		page.TotalItems = len(page.Data)
		if raw.TotalItems != nil {
			page.TotalItems = *raw.TotalItems
		}
	default:
		return page, errors.New("list body is neither an array nor an object")
	}
	for i := range page.Data {
		if err := checkRecord(&page.Data[i]); err != nil {
			return page, errors.Wrapf(err, "invalid record at index %d", i)
		}
	}
	if page.Data == nil {
		page.Data = []T{}
	}
	return page, nil
}
