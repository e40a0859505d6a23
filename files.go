package askeys

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// Sink writes a named text blob into a directory. The default [DirSink]
// writes through the local filesystem; tests substitute an in-memory fake.
type Sink interface {
	WriteText(dir, filename, content string) error
}

// DirSink writes UTF-8 files into an existing directory. The directory is
// never created: writing into a missing one is a failure.
type DirSink struct{}

// WriteText implements [Sink] with a single buffered write.
func (DirSink) WriteText(dir, filename, content string) error {
	return os.WriteFile(filepath.Join(dir, filename), []byte(content), 0o644)
}

// WriteFiles runs the pipeline and writes its partitions into dir on the
// local filesystem. See WriteTo for the file layout.
func (e *Extractor) WriteFiles(dir string) error {
	return e.WriteTo(DirSink{}, dir)
}

// WriteTo runs the pipeline and writes one file per distinct label vector
// through sink, named
//
//	YYYYMMDD.<label values joined by _>.<row count>.txt
//
// with one key value per line and no header. With no labels active a single
// YYYYMMDD.<key name>.<row count>.txt covers the whole sequence; zero rows
// write nothing. Partitions go out in ascending label order and a failed
// write aborts immediately with ErrIO, leaving files already written in
// place.
func (e *Extractor) WriteTo(sink Sink, dir string) error {
	rows, key, _, err := e.run()
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	date := e.now().Format("20060102")
	if len(rows[0].Labels) == 0 {
		name := fmt.Sprintf("%s.%s.%d.txt", date, key, len(rows))
		return writePartition(sink, dir, name, rows)
	}
	for _, p := range partitionRows(rows) {
		values := lo.Map(p.labels, func(l Label, _ int) string { return formatValue(l.Value) })
		name := fmt.Sprintf("%s.%s.%d.txt", date, strings.Join(values, "_"), len(p.rows))
		if err := writePartition(sink, dir, name, p.rows); err != nil {
			return err
		}
	}
	return nil
}

func writePartition(sink Sink, dir, name string, rows []Row) error {
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(formatValue(r.Key))
		b.WriteByte('\n')
	}
	if err := sink.WriteText(dir, name, b.String()); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrIO, name, err)
	}
	return nil
}
