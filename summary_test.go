package askeys_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	askeys "github.com/lcvriend/key-extractor"
)

func TestSummary_MarshalJSON(t *testing.T) {
	sum := askeys.Summary{Source: 5, Rows: 4, Labels: 1, Partitions: 3}
	data, err := json.Marshal(sum)
	require.NoError(t, err)
	require.JSONEq(t, `{"source":5,"rows":4,"labels":1,"partitions":3}`, string(data))
}

func TestSummary_LogValue(t *testing.T) {
	sum := askeys.Summary{Source: 5, Rows: 4, Labels: 1, Partitions: 3}
	attrs := sum.LogValue().Group()
	require.Len(t, attrs, 4)
	require.Equal(t, "source", attrs[0].Key)
	require.Equal(t, int64(5), attrs[0].Value.Int64())
}

func TestSummary_UnlabeledSingleRun(t *testing.T) {
	s := askeys.NewSeries("values", []askeys.Value{1, 2, 2, 3})
	res, err := askeys.New(s).Extract(askeys.OutputSeries)
	require.NoError(t, err)
	require.Equal(t, askeys.Summary{Source: 4, Rows: 3, Labels: 0, Partitions: 1}, res.Summary)
}
