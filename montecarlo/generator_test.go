package montecarlo

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/errest/core/dataset"
	"github.com/YuminosukeSato/errest/pkg/errors"
)

func TestGeneratorClusters(t *testing.T) {
	const n, sep = 20000, 1.5
	ds := dataset.New(n, 2)
	require.NoError(t, NewGenerator(rand.NewPCG(3, 0)).Fill(ds, sep))

	var pos, neg struct{ x0, x1 []float64 }
	for i := 0; i < n; i++ {
		row := ds.Row(i)
		switch row[2] {
		case 1:
			pos.x0 = append(pos.x0, row[0])
			pos.x1 = append(pos.x1, row[1])
		case -1:
			neg.x0 = append(neg.x0, row[0])
			neg.x1 = append(neg.x1, row[1])
		default:
			t.Fatalf("case %d has outcome %v", i, row[2])
		}
	}

	assert.InDelta(t, 0.5, float64(len(pos.x0))/n, 0.02)
	assert.InDelta(t, -sep, stat.Mean(pos.x0, nil), 0.05)
	assert.InDelta(t, sep, stat.Mean(pos.x1, nil), 0.05)
	assert.InDelta(t, sep, stat.Mean(neg.x0, nil), 0.05)
	assert.InDelta(t, -sep, stat.Mean(neg.x1, nil), 0.05)

	// Within a class the predictors have unit variance and correlation ~0.7.
	assert.InDelta(t, 1.0, stat.Variance(pos.x1, nil), 0.05)
	assert.InDelta(t, Correlation, stat.Correlation(pos.x0, pos.x1, nil), 0.03)
	assert.InDelta(t, Correlation, stat.Correlation(neg.x0, neg.x1, nil), 0.03)
}

func TestGeneratorZeroSeparation(t *testing.T) {
	ds := dataset.New(500, 2)
	require.NoError(t, NewGenerator(rand.NewPCG(4, 0)).Fill(ds, 0))
	for i := 0; i < ds.Rows(); i++ {
		assert.Equal(t, 1.0, math.Abs(ds.Outcome(i)))
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	a := dataset.New(50, 2)
	b := dataset.New(50, 2)
	require.NoError(t, NewGenerator(rand.NewPCG(9, 0)).Fill(a, 1))
	require.NoError(t, NewGenerator(rand.NewPCG(9, 0)).Fill(b, 1))
	assert.True(t, a.Equal(b))

	require.NoError(t, NewGenerator(rand.NewPCG(10, 0)).Fill(b, 1))
	assert.False(t, a.Equal(b))
}

func TestGeneratorRejectsOtherShapes(t *testing.T) {
	err := NewGenerator(rand.NewPCG(1, 0)).Fill(dataset.New(5, 3), 1)
	var de *errors.DimensionError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 1, de.Axis)
}
