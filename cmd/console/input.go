package main

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/iota-uz/pharma-admin/pkg/crud"
	"github.com/iota-uz/pharma-admin/pkg/upload"
)

// parseSet turns repeated key=value flags into form values. Keys use the
// server's names, with rows addressed as villages[0].name.
func parseSet(pairs []string) (url.Values, error) {
	values := url.Values{}
	for _, p := range pairs {
		key, val, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, withCode(exitUsage, fmt.Errorf("invalid --set %q: want key=value", p))
		}
		values.Add(key, val)
	}
	return values, nil
}

// parseFiles reads field=path flags. A field given more than once collects
// every file.
func parseFiles(pairs []string) (map[string][]upload.File, error) {
	files := map[string][]upload.File{}
	for _, p := range pairs {
		field, path, ok := strings.Cut(p, "=")
		field = strings.TrimSpace(field)
		if !ok || field == "" || strings.TrimSpace(path) == "" {
			return nil, withCode(exitUsage, fmt.Errorf("invalid --file %q: want field=path", p))
		}
		f, err := upload.Open(strings.TrimSpace(path))
		if err != nil {
			return nil, withCode(exitUsage, err)
		}
		files[field] = append(files[field], f)
	}
	return files, nil
}

// parseRowRefs reads --remove values of the form villages[1].
func parseRowRefs(refs []string) ([]crud.RowRef, error) {
	out := make([]crud.RowRef, 0, len(refs))
	for _, ref := range refs {
		key, rest, ok := strings.Cut(strings.TrimSpace(ref), "[")
		idx, found := strings.CutSuffix(rest, "]")
		k, err := strconv.Atoi(idx)
		if !ok || !found || key == "" || err != nil || k < 0 {
			return nil, withCode(exitUsage, fmt.Errorf("invalid --remove %q: want field[index]", ref))
		}
		out = append(out, crud.RowRef{Key: key, Index: k})
	}
	return out, nil
}
