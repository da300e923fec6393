package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type row struct {
	ID        string   `csv:"ID"`
	Name      string   `csv:"Name"`
	Published bool     `csv:"Published"`
	Areas     []string `csv:"-"`
	internal  string
}

func sample() []row {
	return []row{
		{ID: "1", Name: "Dr. Rao", Published: true, Areas: []string{"x"}},
		{ID: "2", Name: "Dr. Mehta"},
	}
}

func TestTableOf(t *testing.T) {
	t.Parallel()

	table := TableOf("Doctors", sample())
	require.Equal(t, []string{"ID", "Name", "Published"}, table.Headers)
	require.Equal(t, [][]any{{"1", "Dr. Rao", "Yes"}, {"2", "Dr. Mehta", "No"}}, table.Rows)
}

func TestCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, sample()))
	require.Equal(t, "ID,Name,Published\n1,Dr. Rao,true\n2,Dr. Mehta,false\n", buf.String())
}

func TestXLSX(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, XLSX(&buf, TableOf("Doctors", sample())))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Doctors"}, f.GetSheetList())
	rows, err := f.GetRows("Doctors")
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"ID", "Name", "Published"},
		{"1", "Dr. Rao", "Yes"},
		{"2", "Dr. Mehta", "No"},
	}, rows)
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, WriteFile(filepath.Join(dir, "doctors.csv"), "Doctors", sample()))
	require.NoError(t, WriteFile(filepath.Join(dir, "doctors.xlsx"), "Doctors", sample()))
	require.Error(t, WriteFile(filepath.Join(dir, "doctors.pdf"), "Doctors", sample()))
}
