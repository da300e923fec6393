// Package upload holds client-side file field rules: which MIME types a
// field accepts, how large a file may be and how many files it takes.
package upload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"

	"github.com/iota-uz/pharma-admin/pkg/restclient"
)

const (
	KiB int64 = 1 << 10
	MiB int64 = 1 << 20
)

var (
	Images    = []string{"image/png", "image/jpeg", "image/webp", "image/gif"}
	Documents = []string{"application/pdf"}
	Sheets    = []string{
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"text/csv",
	}
)

// File is a file picked for upload, with its detected MIME type.
type File struct {
	Name string
	MIME string
	Size int64
	Data []byte
}

// FromBytes detects the MIME type of data from its content.
func FromBytes(name string, data []byte) File {
	return File{
		Name: filepath.Base(name),
		MIME: mimetype.Detect(data).String(),
		Size: int64(len(data)),
		Data: data,
	}
}

// Open reads a file from disk.
func Open(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, errors.Wrapf(err, "read %s", path)
	}
	return FromBytes(path, data), nil
}

// Part converts the file into a multipart part under the given server key.
func (f File) Part(field string) restclient.FilePart {
	return restclient.FilePart{
		Field:       field,
		FileName:    f.Name,
		ContentType: f.MIME,
		Data:        f.Data,
	}
}

// FieldSpec describes one file field of a form.
type FieldSpec struct {
	// Field is the server-side key of the file part.
	Field string
	Label string
	// Accept lists MIME types; "image/*" style wildcards are allowed. Empty
	// accepts anything.
	Accept   []string
	MaxSize  int64
	Multiple bool
	// Required applies on create only. On edit an empty field keeps the
	// existing asset.
	Required bool
}

func (s FieldSpec) label() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Field
}

// Accepts reports whether a file of the given MIME type may be attached.
// Parent types known to mimetype count, so a detected subtype of an accepted
// type passes.
func (s FieldSpec) Accepts(mime string) bool {
	if len(s.Accept) == 0 {
		return true
	}
	base, _, _ := strings.Cut(mime, ";")
	base = strings.TrimSpace(strings.ToLower(base))
	for _, a := range s.Accept {
		a = strings.ToLower(a)
		if prefix, ok := strings.CutSuffix(a, "/*"); ok {
			if strings.HasPrefix(base, prefix+"/") {
				return true
			}
			continue
		}
		for m := mimetype.Lookup(base); m != nil; m = m.Parent() {
			if m.Is(a) {
				return true
			}
		}
		if base == a {
			return true
		}
	}
	return false
}

// Check validates the files attached to the field and returns the first
// problem as a user-facing message, or "" when the files are acceptable.
func (s FieldSpec) Check(files []File, creating bool) string {
	if len(files) == 0 {
		if s.Required && creating {
			return fmt.Sprintf("%s is required", s.label())
		}
		return ""
	}
	if len(files) > 1 && !s.Multiple {
		return fmt.Sprintf("%s accepts a single file", s.label())
	}
	for _, f := range files {
		if !s.Accepts(f.MIME) {
			return fmt.Sprintf("%s must be of type %s (got %s)", s.label(), strings.Join(s.Accept, ", "), f.MIME)
		}
		if s.MaxSize > 0 && f.Size > s.MaxSize {
			return fmt.Sprintf("%s must not exceed %s", s.label(), HumanSize(s.MaxSize))
		}
	}
	return ""
}

// HumanSize renders a byte count with binary units.
func HumanSize(n int64) string {
	switch {
	case n >= MiB && n%MiB == 0:
		return fmt.Sprintf("%d MiB", n/MiB)
	case n >= MiB:
		return fmt.Sprintf("%.1f MiB", float64(n)/float64(MiB))
	case n >= KiB && n%KiB == 0:
		return fmt.Sprintf("%d KiB", n/KiB)
	case n >= KiB:
		return fmt.Sprintf("%.1f KiB", float64(n)/float64(KiB))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
