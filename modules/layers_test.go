package modules

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRestAPIBindingsDoNotImportMockBackend(t *testing.T) {
	t.Parallel()

	files, err := filepath.Glob(filepath.Join("*", "infrastructure", "restapi", "*.go"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	fset := token.NewFileSet()
	for _, path := range files {
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		require.NoError(t, err)
		for _, imp := range f.Imports {
			p, err := strconv.Unquote(imp.Path.Value)
			require.NoError(t, err)
			require.False(t, strings.HasSuffix(p, "/pkg/mockapi"), "%s imports %s", path, p)
		}
	}
}
