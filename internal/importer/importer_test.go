package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeFixture builds an .xlsx statement with the header labels on
// sheet row 5, matching the bank export layout.
func writeFixture(t *testing.T, path string, headers []string, rows [][]string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	require.NoError(t, f.SetCellValue(sheet, "A1", "Fixture"))
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 5)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, h))
	}
	for ri, row := range rows {
		for ci, v := range row {
			if v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(ci+1, 6+ri)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	require.NoError(t, f.SaveAs(path))
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ekstre.xlsx")
	writeFixture(t, path,
		[]string{"Firma Adı", "İşlem Türü", "İşlem Tutarı", "Bakiye"},
		[][]string{
			{"Acme", "FaturaGiris", "100", "100"},
			{"", "", "", ""}, // blank row, skipped
			{"Acme", "Tahsilat", "50", "150"},
		})

	rows, err := ReadFile(DefaultRegistry(), path, 4)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "FaturaGiris", rows[0]["İşlem Türü"])
	assert.Equal(t, "100", rows[0]["İşlem Tutarı"])
	assert.Equal(t, "Tahsilat", rows[1]["İşlem Türü"])
	assert.Equal(t, "150", rows[1]["Bakiye"])
}

func TestReadFile_TrimsHeaderWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ekstre.xlsx")
	writeFixture(t, path,
		[]string{"  İşlem Türü ", "Bakiye"},
		[][]string{{"Tahsilat", "10"}})

	rows, err := ReadFile(DefaultRegistry(), path, 4)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Tahsilat", rows[0]["İşlem Türü"])
}

func TestReadFile_EmptySheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bos.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := ReadFile(DefaultRegistry(), path, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Dosya boş veya geçersiz: bos.xlsx")
}

func TestReadFile_NoDataRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bos.xlsx")
	writeFixture(t, path, []string{"Bakiye"}, nil)

	_, err := ReadFile(DefaultRegistry(), path, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Dosya boş veya geçersiz")
}

func TestReadFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yok.xlsx")

	_, err := ReadFile(DefaultRegistry(), path, 4)
	require.Error(t, err)
	assert.Equal(t, "Dosya bulunamadı: yok.xlsx", err.Error())
}

func TestReadFile_UnsupportedType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ekstre.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0o644))

	_, err := ReadFile(DefaultRegistry(), path, 4)
	require.Error(t, err)
	assert.Equal(t, "Desteklenmeyen dosya türü: ekstre.csv", err.Error())
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.xlsx", "a.XLSX", "c.xls", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.xlsx"), 0o755))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join(dir, "a.XLSX"), files[0])
	assert.Equal(t, filepath.Join(dir, "b.xlsx"), files[1])
	assert.Equal(t, filepath.Join(dir, "c.xls"), files[2])
}

func TestRegistry_DuplicateExtension(t *testing.T) {
	r := NewRegistry()
	r.Register(&XLSXReader{})
	assert.Panics(t, func() { r.Register(&XLSXReader{}) })
}
