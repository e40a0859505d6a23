// Package askeys extracts, deduplicates, groups, batches, and renders the
// key column of a tabular dataset.
//
// The pipeline is fixed: select the key and grouping columns, drop duplicate
// (groups..., key) tuples, number rows into batches, sample. The result is
// rendered as annotated rows, as delimited text, or as one flat text file
// per partition. Everything runs synchronously over an in-memory table.
//
// # Quick Start
//
// Build a [Frame] and extract a column:
//
//	frame, err := askeys.NewFrame(
//	    []string{"category", "value"},
//	    [][]askeys.Value{
//	        {"A", 1}, {"A", 2}, {"B", 3}, {"B", 4}, {"C", 5},
//	    },
//	)
//	if err != nil {
//	    return err
//	}
//
//	text, err := askeys.New(frame).Key("value").Text()
//	// "1;2;3;4;5"
//
// A [Series] is a single named column whose name is the key, so no Key call
// is needed:
//
//	s := askeys.NewSeries("values", []askeys.Value{1, 2, 3})
//	text, err := askeys.New(s).Text()
//
// # Grouping
//
// GroupBy attaches a label vector to every row and turns the text form into
// one block per distinct label combination, ordered by the label values:
//
//	text, err := askeys.New(frame).Key("value").GroupBy("category").Text()
//
//	// [category: A] (2)
//	// 1;2
//	//
//	// [category: B] (2)
//	// 3;4
//	//
//	// [category: C] (1)
//	// 5
//
// # Batching
//
// BatchSize appends a synthetic batch label numbered 1, 2, ... in blocks of
// the given size. With grouping active, numbering restarts per group; the
// batch label partitions output exactly like a grouping column:
//
//	text, err := askeys.New(frame).Key("value").BatchSize(2).Text()
//
//	// [batch: 1] (2)
//	// 1;2
//	//
//	// [batch: 2] (2)
//	// 3;4
//	//
//	// [batch: 3] (1)
//	// 5
//
// # Sampling
//
// Sample draws rows uniformly without replacement after deduplication and
// batching. It is the only source of nondeterminism in the pipeline; inject
// a generator to pin it down:
//
//	rows, err := askeys.New(frame).
//	    Key("value").
//	    Sample(3).
//	    WithRand(rand.New(rand.NewPCG(1, 2))).
//	    Rows()
//
// Requesting more rows than are available is an error, never a short result.
//
// # Output Modes
//
// Extract takes one of four [Output] modes: [OutputSeries] returns the
// annotated rows, [OutputString] returns the text form, and [OutputStdout]
// and [OutputPrint] write that text to the configured writer. Rows, Text,
// WriteFiles, and WriteTo are shorthands for the common cases.
//
// # File Output
//
// WriteFiles writes one file per partition into an existing directory:
//
//	err := askeys.New(frame).Key("value").GroupBy("category").WriteFiles(dir)
//
//	// 20240115.A.2.txt
//	// 20240115.B.2.txt
//	// 20240115.C.1.txt
//
// Each file holds the partition's key values, one per line, no header. With
// no grouping or batching a single file named after the key column covers
// the whole sequence. Writes go through the [Sink] interface; substitute it
// to capture output in tests.
//
// # Errors
//
// All failures wrap one of three sentinels: [ErrMissingColumn] for unknown
// key or grouping columns, [ErrInvalidParameter] for rejected parameters
// (bad output mode, non-positive batch size, oversized sample), and [ErrIO]
// for failed writes. Classify with errors.Is.
package askeys
