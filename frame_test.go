package askeys_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	askeys "github.com/lcvriend/key-extractor"
)

func TestNewFrame(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		records [][]askeys.Value
		wantErr error
	}{
		{
			name:    "valid frame",
			columns: []string{"category", "value"},
			records: [][]askeys.Value{{"A", 1}, {"B", 2}},
		},
		{
			name:    "no records",
			columns: []string{"a", "b"},
			records: nil,
		},
		{
			name:    "no columns no records",
			columns: nil,
			records: nil,
		},
		{
			name:    "duplicate column",
			columns: []string{"a", "a"},
			records: nil,
			wantErr: askeys.ErrInvalidParameter,
		},
		{
			name:    "ragged record",
			columns: []string{"a", "b"},
			records: [][]askeys.Value{{1, 2}, {3}},
			wantErr: askeys.ErrInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := askeys.NewFrame(tt.columns, tt.records)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.columns, frame.Columns())
			require.Equal(t, len(tt.records), frame.Len())
		})
	}
}

func TestFrame_Project(t *testing.T) {
	frame, err := askeys.NewFrame(
		[]string{"category", "value"},
		[][]askeys.Value{{"A", 1}, {"B", 2}},
	)
	require.NoError(t, err)

	t.Run("key only", func(t *testing.T) {
		rows, err := frame.Project(nil, "value")
		require.NoError(t, err)
		require.Equal(t, []askeys.Row{
			{Index: 0, Key: 1},
			{Index: 1, Key: 2},
		}, rows)
	})

	t.Run("with groups", func(t *testing.T) {
		rows, err := frame.Project([]string{"category"}, "value")
		require.NoError(t, err)
		require.Equal(t, []askeys.Row{
			{Index: 0, Key: 1, Labels: []askeys.Label{{Name: "category", Value: "A"}}},
			{Index: 1, Key: 2, Labels: []askeys.Label{{Name: "category", Value: "B"}}},
		}, rows)
	})

	t.Run("missing key column", func(t *testing.T) {
		_, err := frame.Project(nil, "nope")
		require.ErrorIs(t, err, askeys.ErrMissingColumn)
	})

	t.Run("missing group column", func(t *testing.T) {
		_, err := frame.Project([]string{"nope"}, "value")
		require.ErrorIs(t, err, askeys.ErrMissingColumn)
	})
}

func TestFrame_KeyName(t *testing.T) {
	frame, err := askeys.NewFrame([]string{"value"}, nil)
	require.NoError(t, err)

	name, err := frame.KeyName("value")
	require.NoError(t, err)
	require.Equal(t, "value", name)

	_, err = frame.KeyName("")
	require.ErrorIs(t, err, askeys.ErrInvalidParameter)
}

func TestFromCSV(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		columns []string
		length  int
		wantErr error
	}{
		{
			name:    "typed cells",
			input:   "category,value\nA,1\nB,2.5\nC,\nD,text\n",
			columns: []string{"category", "value"},
			length:  4,
		},
		{
			name:    "header only",
			input:   "a,b\n",
			columns: []string{"a", "b"},
			length:  0,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: askeys.ErrInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := askeys.FromCSV(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.columns, frame.Columns())
			require.Equal(t, tt.length, frame.Len())
		})
	}
}

func TestFromCSV_MalformedInput(t *testing.T) {
	_, err := askeys.FromCSV(strings.NewReader("a,b\n\"unterminated\n"))
	require.Error(t, err)
}

func TestFromCSV_ParsesCellTypes(t *testing.T) {
	frame, err := askeys.FromCSV(strings.NewReader("k,value\na,1\nb,2.5\nc,\nd,text\n"))
	require.NoError(t, err)

	rows, err := frame.Project(nil, "value")
	require.NoError(t, err)
	require.Equal(t, []askeys.Value{int64(1), 2.5, nil, "text"}, keysOf(rows))
}

func TestSeries(t *testing.T) {
	s := askeys.NewSeries("values", []askeys.Value{1, 2, 3})
	require.Equal(t, "values", s.Name())
	require.Equal(t, 3, s.Len())

	t.Run("intrinsic name wins", func(t *testing.T) {
		name, err := s.KeyName("something else")
		require.NoError(t, err)
		require.Equal(t, "values", name)
	})

	t.Run("project", func(t *testing.T) {
		rows, err := s.Project(nil, "values")
		require.NoError(t, err)
		require.Equal(t, []askeys.Row{
			{Index: 0, Key: 1},
			{Index: 1, Key: 2},
			{Index: 2, Key: 3},
		}, rows)
	})

	t.Run("grouping is missing column", func(t *testing.T) {
		_, err := s.Project([]string{"category"}, "values")
		require.ErrorIs(t, err, askeys.ErrMissingColumn)
	})
}
