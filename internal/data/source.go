package data

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"commodity-profits/internal/model"
)

const (
	// DefaultDir is where the month files live unless configured otherwise.
	DefaultDir = "Data_Files"
	// DefaultExt is appended to the canonical month name to form a file name.
	DefaultExt = ".txt"
)

// Source resolves the record source for one canonical month name.
// Open returns an error when the source is absent or unreadable; the loader
// treats both as "no data for this month".
type Source interface {
	Open(month string) (io.ReadCloser, error)
	Name(month string) string
}

// FSSource reads month files named "<Month><Ext>" from an fs.FS.
type FSSource struct {
	FS  fs.FS
	Ext string
	// Dir is only used to render readable names in logs and reports.
	Dir string
}

// NewDirSource returns a Source backed by a directory on disk.
func NewDirSource(dir, ext string) FSSource {
	if dir == "" {
		dir = DefaultDir
	}
	if ext == "" {
		ext = DefaultExt
	}
	return FSSource{FS: os.DirFS(dir), Ext: ext, Dir: dir}
}

func (s FSSource) fileName(month string) string {
	ext := s.Ext
	if ext == "" {
		ext = DefaultExt
	}
	return month + ext
}

func (s FSSource) Open(month string) (io.ReadCloser, error) {
	return s.FS.Open(s.fileName(month))
}

func (s FSSource) Name(month string) string {
	if s.Dir == "" {
		return s.fileName(month)
	}
	return filepath.Join(s.Dir, s.fileName(month))
}

// SourceStatus describes whether a month's source is present.
type SourceStatus struct {
	Month   string `json:"month"`
	Name    string `json:"name"`
	Present bool   `json:"present"`
}

// Discover probes every canonical month and reports which sources can be
// opened and closed again. Nothing is parsed.
func Discover(src Source) []SourceStatus {
	out := make([]SourceStatus, 0, model.Months)
	for _, month := range model.MonthNames {
		st := SourceStatus{Month: month, Name: src.Name(month)}
		if rc, err := src.Open(month); err == nil {
			st.Present = rc.Close() == nil
		}
		out = append(out, st)
	}
	return out
}
