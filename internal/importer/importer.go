package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ekstre-dev/ekstre/internal/model"
)

// Reader extracts the raw cell grid of a statement file's first sheet.
type Reader interface {
	Cells(r io.ReadSeeker) ([][]string, error)
	Extensions() []string
}

// Registry holds readers keyed by file extension.
type Registry struct {
	readers map[string]Reader
}

// NewRegistry creates an empty reader registry.
func NewRegistry() *Registry {
	return &Registry{readers: make(map[string]Reader)}
}

// Register adds a reader. Panics on duplicate extension.
func (r *Registry) Register(rd Reader) {
	for _, ext := range rd.Extensions() {
		key := strings.ToLower(ext)
		if _, ok := r.readers[key]; ok {
			panic("duplicate reader extension: " + key)
		}
		r.readers[key] = rd
	}
}

// Get returns the reader for a file path's extension, or nil.
func (r *Registry) Get(path string) Reader {
	return r.readers[strings.ToLower(filepath.Ext(path))]
}

// DefaultRegistry returns a registry with all built-in readers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&XLSXReader{})
	r.Register(&XLSReader{})
	return r
}

// ReadFile reads one statement file into raw rows. Column labels come
// from the row at headerRow (0-based); data rows follow it. I/O
// failures are mapped to messages naming the file, as shown to the
// user in the batch summary.
func ReadFile(reg *Registry, path string, headerRow int) ([]model.RawRow, error) {
	name := filepath.Base(path)

	rd := reg.Get(path)
	if rd == nil {
		return nil, fmt.Errorf("Desteklenmeyen dosya türü: %s", name)
	}

	f, err := os.Open(path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return nil, fmt.Errorf("Dosya bulunamadı: %s", name)
		case os.IsPermission(err):
			return nil, fmt.Errorf("Dosya erişim izni yok: %s", name)
		default:
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}
	}
	defer f.Close()

	cells, err := rd.Cells(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	return rowsFromCells(cells, headerRow, name)
}

// rowsFromCells converts a cell grid into header-keyed rows, skipping
// rows whose cells are all empty.
func rowsFromCells(cells [][]string, headerRow int, name string) ([]model.RawRow, error) {
	if headerRow < 0 || len(cells) <= headerRow+1 {
		return nil, fmt.Errorf("Dosya boş veya geçersiz: %s", name)
	}

	headers := make([]string, len(cells[headerRow]))
	for i, h := range cells[headerRow] {
		headers[i] = strings.TrimSpace(h)
	}

	var rows []model.RawRow
	for _, rec := range cells[headerRow+1:] {
		row := make(model.RawRow, len(headers))
		empty := true
		for i, h := range headers {
			if h == "" {
				continue
			}
			var v string
			if i < len(rec) {
				v = rec[i]
			}
			row[h] = v
			if strings.TrimSpace(v) != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("Dosya boş veya geçersiz: %s", name)
	}
	return rows, nil
}

// Scan returns statement files (.xlsx/.xls) in dir, sorted by name.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".xlsx" && ext != ".xls" {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
