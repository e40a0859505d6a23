package askeys

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/samber/lo"
)

// Output selects how Extract renders the projected rows. The set is closed;
// any other value fails with ErrInvalidParameter.
type Output string

const (
	// OutputSeries returns the annotated rows untouched.
	OutputSeries Output = "series"
	// OutputString returns delimited text: a flat join of the key values, or
	// one block per partition when group or batch labels are active.
	OutputString Output = "string"
	// OutputStdout writes the OutputString text to the output writer.
	OutputStdout Output = "stdout"
	// OutputPrint behaves exactly like OutputStdout.
	OutputPrint Output = "print"
)

// Defaults for the optional extraction parameters.
const (
	DefaultSeparator = ";"
	DefaultBatchName = "batch"
)

// Extractor extracts, deduplicates, groups, batches, and renders the key
// column of a [Source]. Configure it by chaining, then call Extract, Rows,
// Text, or WriteFiles:
//
//	text, err := askeys.New(frame).
//	    Key("value").
//	    GroupBy("category").
//	    Text()
//
// Every call runs the full pipeline against the source; an Extractor holds
// configuration only and no state survives between calls, so it can be
// reused and reconfigured freely.
type Extractor struct {
	src Source

	key       string
	unique    bool
	groups    []string
	batchSize *int
	batchName string
	sample    *int
	sep       string

	rng *rand.Rand
	out io.Writer
	now func() time.Time
}

// New creates an Extractor over src with defaults: deduplication on, no
// grouping, no batching, no sampling, separator ";".
func New(src Source) *Extractor {
	return &Extractor{
		src:       src,
		unique:    true,
		batchName: DefaultBatchName,
		sep:       DefaultSeparator,
		out:       os.Stdout,
		now:       time.Now,
	}
}

// Key names the column to extract. A [Series] ignores it in favor of its own
// name; a [Frame] requires it.
func (e *Extractor) Key(name string) *Extractor {
	e.key = name
	return e
}

// Unique toggles deduplication of rows sharing the same (groups..., key)
// tuple, keeping first occurrence. On by default.
func (e *Extractor) Unique(on bool) *Extractor {
	e.unique = on
	return e
}

// GroupBy appends grouping columns. Call order defines the label order in
// every output.
func (e *Extractor) GroupBy(names ...string) *Extractor {
	e.groups = append(e.groups, names...)
	return e
}

// BatchSize enables batch numbering in blocks of n rows. Numbers restart per
// group when grouping is active. n must be positive; invalid values surface
// as ErrInvalidParameter when the pipeline runs.
func (e *Extractor) BatchSize(n int) *Extractor {
	e.batchSize = &n
	return e
}

// BatchName sets the name of the synthetic batch label. Default "batch".
func (e *Extractor) BatchName(name string) *Extractor {
	e.batchName = name
	return e
}

// Sample draws n rows uniformly at random without replacement after
// deduplication and batching. n must be positive and at most the available
// row count; invalid values surface as ErrInvalidParameter when the pipeline
// runs. Row order after sampling is unspecified.
func (e *Extractor) Sample(n int) *Extractor {
	e.sample = &n
	return e
}

// Separator sets the string joining key values in text output. Default ";".
func (e *Extractor) Separator(sep string) *Extractor {
	e.sep = sep
	return e
}

// WithRand injects the random generator used by Sample, so tests can fix a
// seed and assert exact sampled sets. Without it, sampling uses the shared
// top-level generator.
func (e *Extractor) WithRand(r *rand.Rand) *Extractor {
	e.rng = r
	return e
}

// WithOutput redirects OutputStdout and OutputPrint away from os.Stdout.
func (e *Extractor) WithOutput(w io.Writer) *Extractor {
	e.out = w
	return e
}

// WithNow injects the clock stamping partition filenames. Default time.Now.
func (e *Extractor) WithNow(now func() time.Time) *Extractor {
	e.now = now
	return e
}

// Result carries whichever form Extract produced, plus a Summary of the run.
// Rows is set for OutputSeries, Text for OutputString; the console modes set
// neither.
type Result struct {
	Rows    []Row
	Text    string
	Summary Summary
}

// Extract runs the pipeline and renders per the requested output mode.
func (e *Extractor) Extract(to Output) (*Result, error) {
	switch to {
	case OutputSeries, OutputString, OutputStdout, OutputPrint:
	default:
		return nil, fmt.Errorf("%w: output must be one of series, string, stdout, print; got %q", ErrInvalidParameter, to)
	}
	rows, _, sum, err := e.run()
	if err != nil {
		return nil, err
	}
	res := &Result{Summary: sum}
	switch to {
	case OutputSeries:
		res.Rows = rows
	case OutputString:
		res.Text = e.stringify(rows)
	case OutputStdout, OutputPrint:
		if _, err := fmt.Fprintln(e.out, e.stringify(rows)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIO, err)
		}
	}
	return res, nil
}

// Rows runs the pipeline and returns the annotated rows. Shorthand for
// Extract(OutputSeries).
func (e *Extractor) Rows() ([]Row, error) {
	res, err := e.Extract(OutputSeries)
	if err != nil {
		return nil, err
	}
	return res.Rows, nil
}

// Text runs the pipeline and returns the delimited text form. Shorthand for
// Extract(OutputString).
func (e *Extractor) Text() (string, error) {
	res, err := e.Extract(OutputString)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// run executes the fixed pipeline: resolve key, select and deduplicate,
// attach group labels, assign batch numbers, sample. The order matters:
// batching sees the deduplicated set and sampling sees the fully batched
// set, so both are deterministic for a given source and dedup policy.
func (e *Extractor) run() (rows []Row, key string, sum Summary, err error) {
	key, err = e.src.KeyName(e.key)
	if err != nil {
		return nil, "", sum, err
	}
	rows, err = e.src.Project(e.groups, key)
	if err != nil {
		return nil, "", sum, err
	}
	sum.Source = len(rows)
	if e.unique {
		rows = dedupe(rows)
	}
	if e.batchSize != nil {
		if rows, err = assignBatches(rows, *e.batchSize, e.batchName, len(e.groups) > 0); err != nil {
			return nil, "", sum, err
		}
	}
	if e.sample != nil {
		if rows, err = e.sampleRows(rows, *e.sample); err != nil {
			return nil, "", sum, err
		}
	}
	sum.count(rows)
	return rows, key, sum, nil
}

// dedupe keeps the first occurrence of each (labels..., key) tuple. Two nil
// values compare equal, so rows duplicating an all-nil tuple collapse too.
func dedupe(rows []Row) []Row {
	return lo.UniqBy(rows, func(r Row) string {
		return tupleKey(append(r.labelValues(), r.Key))
	})
}

// assignBatches appends the 1-based batch number label to every row. Numbers
// restart for each distinct group vector and follow post-dedup row order, or
// run over the whole table when no grouping is active.
func assignBatches(rows []Row, size int, name string, grouped bool) ([]Row, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: batch size must be positive, got %d", ErrInvalidParameter, size)
	}
	ranks := make(map[string]int)
	out := make([]Row, len(rows))
	for i, r := range rows {
		var group string
		if grouped {
			group = r.labelKey()
		}
		rank := ranks[group]
		ranks[group] = rank + 1
		labels := make([]Label, 0, len(r.Labels)+1)
		labels = append(labels, r.Labels...)
		r.Labels = append(labels, Label{Name: name, Value: rank/size + 1})
		out[i] = r
	}
	return out, nil
}

// sampleRows draws n rows uniformly without replacement as a permutation
// prefix. Row order is not preserved.
func (e *Extractor) sampleRows(rows []Row, n int) ([]Row, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: sample must be positive, got %d", ErrInvalidParameter, n)
	}
	if n > len(rows) {
		return nil, fmt.Errorf("%w: sample %d exceeds %d available rows", ErrInvalidParameter, n, len(rows))
	}
	perm := rand.Perm(len(rows))
	if e.rng != nil {
		perm = e.rng.Perm(len(rows))
	}
	out := make([]Row, n)
	for i, j := range perm[:n] {
		out[i] = rows[j]
	}
	return out, nil
}
