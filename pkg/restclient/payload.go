package restclient

import (
	"bytes"
	"encoding/json"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/form"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// FilePart is one file attached to a multipart payload.
type FilePart struct {
	Field       string
	FileName    string
	ContentType string
	Data        []byte
}

// Payload is a request body. It is sent as JSON unless at least one file is
// attached, in which case scalar fields and files go out as multipart form
// data under the same snake_case keys the JSON encoding uses.
type Payload struct {
	body  any
	files []FilePart
}

// NewPayload wraps body. Field names come from the body's json tags.
func NewPayload(body any, files ...FilePart) *Payload {
	return &Payload{body: body, files: files}
}

func (p *Payload) Body() any { return p.body }

func (p *Payload) Files() []FilePart { return p.files }

func (p *Payload) IsMultipart() bool { return len(p.files) > 0 }

var fieldEncoder = newFieldEncoder()

func newFieldEncoder() *form.Encoder {
	enc := form.NewEncoder()
	enc.SetTagName("json")
	enc.RegisterCustomTypeFunc(func(x interface{}) ([]string, error) {
		return []string{x.(decimal.Decimal).String()}, nil
	}, decimal.Decimal{})
	return enc
}

// EmptyListSuffix marks a list member that is sent empty in a multipart
// body, e.g. "villages[]=". The form encoder writes no key at all for an
// empty slice, which a server cannot tell apart from "unchanged".
const EmptyListSuffix = "[]"

// Fields returns the scalar part of a multipart body. Every top-level list
// member is present: indexed keys for its rows, or an EmptyListSuffix key
// when it has none.
func (p *Payload) Fields() (url.Values, error) {
	if p.body == nil {
		return url.Values{}, nil
	}
	if values, ok := p.body.(url.Values); ok {
		return values, nil
	}
	values, err := fieldEncoder.Encode(p.body)
	if err != nil {
		return nil, errors.Wrap(err, "encode multipart fields")
	}
	for _, name := range emptyLists(p.body) {
		values.Set(name+EmptyListSuffix, "")
	}
	return values, nil
}

// emptyLists names the top-level slice members of body that have no rows.
func emptyLists(body any) []string {
	v := reflect.ValueOf(body)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	var names []string
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if !f.IsExported() || name == "-" || f.Type.Kind() != reflect.Slice {
			continue
		}
		if name == "" {
			name = f.Name
		}
		if v.Field(i).Len() == 0 {
			names = append(names, name)
		}
	}
	return names
}

// JSON returns the JSON encoding of the body.
func (p *Payload) JSON() ([]byte, error) {
	b, err := json.Marshal(p.body)
	if err != nil {
		return nil, errors.Wrap(err, "encode json body")
	}
	return b, nil
}

func (p *Payload) apply(req *resty.Request) error {
	if !p.IsMultipart() {
		b, err := p.JSON()
		if err != nil {
			return err
		}
		req.SetHeader("Content-Type", "application/json").SetBody(b)
		return nil
	}
	fields, err := p.Fields()
	if err != nil {
		return err
	}
	req.SetFormDataFromValues(fields)
	for _, f := range p.files {
		req.SetMultipartField(f.Field, f.FileName, f.ContentType, bytes.NewReader(f.Data))
	}
	return nil
}
