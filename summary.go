package askeys

import "log/slog"

// Summary describes one extraction: how many rows the projection saw, how
// many survived the pipeline, the label arity, and how many partitions the
// label vectors produce. It marshals to JSON and implements slog.LogValuer
// so callers can log outcomes structurally.
type Summary struct {
	Source     int `json:"source"`
	Rows       int `json:"rows"`
	Labels     int `json:"labels"`
	Partitions int `json:"partitions"`
}

// count fills the post-pipeline fields from the final row set.
func (s *Summary) count(rows []Row) {
	s.Rows = len(rows)
	if len(rows) == 0 {
		return
	}
	s.Labels = len(rows[0].Labels)
	if s.Labels == 0 {
		s.Partitions = 1
		return
	}
	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		seen[r.labelKey()] = struct{}{}
	}
	s.Partitions = len(seen)
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("source", s.Source),
		slog.Int("rows", s.Rows),
		slog.Int("labels", s.Labels),
		slog.Int("partitions", s.Partitions),
	)
}
