package linear

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/errest/core/dataset"
	"github.com/YuminosukeSato/errest/pkg/errors"
	"github.com/YuminosukeSato/errest/pkg/log"
)

// planeData は y = 2 + 1.5*x0 - 0.5*x1 上の点を生成する
func planeData(t *testing.T, n int) *dataset.Dataset {
	t.Helper()
	rng := rand.New(rand.NewPCG(1, 2))
	rows := make([][]float64, n)
	for i := range rows {
		x0, x1 := rng.NormFloat64(), rng.NormFloat64()
		rows[i] = []float64{x0, x1, 2 + 1.5*x0 - 0.5*x1}
	}
	ds, err := dataset.FromRows(rows)
	require.NoError(t, err)
	return ds
}

func TestSVDRegressionExactFit(t *testing.T) {
	ds := planeData(t, 20)
	lr := NewSVDRegression()
	predicted := make([]float64, ds.Rows())

	require.NoError(t, lr.TrainAndPredict(ds, ds, predicted))

	weights, err := lr.Coefficients()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.5, -0.5}, weights, 1e-9)

	intercept, err := lr.Intercept()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, intercept, 1e-9)

	rank, err := lr.Rank()
	require.NoError(t, err)
	assert.Equal(t, 3, rank)

	for i := 0; i < ds.Rows(); i++ {
		assert.InDelta(t, ds.Outcome(i), predicted[i], 1e-9)
	}
}

func TestSVDRegressionRankCutoff(t *testing.T) {
	// x1 は x0 の複製なので設計行列のランクは 2
	rows := [][]float64{
		{1, 1, 3},
		{2, 2, 5},
		{-1, -1, -1},
		{0.5, 0.5, 2},
	}
	ds, err := dataset.FromRows(rows)
	require.NoError(t, err)

	lr := NewSVDRegression()
	predicted := make([]float64, 4)
	require.NoError(t, lr.TrainAndPredict(ds, ds, predicted))

	rank, err := lr.Rank()
	require.NoError(t, err)
	assert.Equal(t, 2, rank)

	// 最小ノルム解は重複した列に等しく重みを分配する
	weights, err := lr.Coefficients()
	require.NoError(t, err)
	assert.InDelta(t, weights[0], weights[1], 1e-9)
	assert.InDelta(t, 2.0, weights[0]+weights[1], 1e-9)

	for i, row := range rows {
		assert.InDelta(t, row[2], predicted[i], 1e-9)
	}
}

func TestSVDRegressionSingularLimit(t *testing.T) {
	// x0 のスケールが他の列より桁違いに大きい
	rows := make([][]float64, 10)
	for i := range rows {
		x0 := 100 * (float64(i) - 4.5)
		x1 := float64(i%3) - 1
		rows[i] = []float64{x0, x1, 0.01*x0 + x1 + 0.5}
	}
	ds, err := dataset.FromRows(rows)
	require.NoError(t, err)
	predicted := make([]float64, ds.Rows())

	lr := NewSVDRegression()
	require.NoError(t, lr.TrainAndPredict(ds, ds, predicted))
	rank, err := lr.Rank()
	require.NoError(t, err)
	assert.Equal(t, 3, rank)

	lr = NewSVDRegression(WithSingularLimit(0.5))
	require.NoError(t, lr.TrainAndPredict(ds, ds, predicted))
	rank, err = lr.Rank()
	require.NoError(t, err)
	assert.Equal(t, 1, rank)
}

func TestSVDRegressionFewerCasesThanColumns(t *testing.T) {
	train, err := dataset.FromRows([][]float64{{0.3, -0.2, 1}})
	require.NoError(t, err)
	test, err := dataset.FromRows([][]float64{{0.3, -0.2, 1}, {5, 5, -1}})
	require.NoError(t, err)

	lr := NewSVDRegression()
	predicted := make([]float64, 2)
	require.NoError(t, lr.TrainAndPredict(train, test, predicted))

	assert.InDelta(t, 1.0, predicted[0], 1e-9)
	assert.False(t, math.IsNaN(predicted[1]))
}

func TestSVDRegressionSeparatesClasses(t *testing.T) {
	rows := [][]float64{
		{-2, 2, 1}, {-1.5, 2.5, 1}, {-2.5, 1.5, 1}, {-1, 3, 1},
		{2, -2, -1}, {1.5, -2.5, -1}, {2.5, -1.5, -1}, {1, -3, -1},
	}
	ds, err := dataset.FromRows(rows)
	require.NoError(t, err)

	predicted := make([]float64, len(rows))
	require.NoError(t, NewSVDRegression().TrainAndPredict(ds, ds, predicted))

	for i, row := range rows {
		assert.Equal(t, math.Signbit(row[2]), math.Signbit(predicted[i]), "case %d", i)
	}
}

func TestSVDRegressionErrors(t *testing.T) {
	ds := planeData(t, 6)
	other, err := dataset.FromRows([][]float64{{1, 2, 3, 1}})
	require.NoError(t, err)

	tests := []struct {
		name      string
		train     *dataset.Dataset
		test      *dataset.Dataset
		predicted []float64
		check     func(t *testing.T, err error)
	}{
		{
			name:      "nil train",
			train:     nil,
			test:      ds,
			predicted: make([]float64, 6),
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, errors.ErrEmptyData))
			},
		},
		{
			name:      "predictor mismatch",
			train:     ds,
			test:      other,
			predicted: make([]float64, 1),
			check: func(t *testing.T, err error) {
				var de *errors.DimensionError
				require.True(t, errors.As(err, &de))
				assert.Equal(t, 1, de.Axis)
			},
		},
		{
			name:      "short output",
			train:     ds,
			test:      ds,
			predicted: make([]float64, 2),
			check: func(t *testing.T, err error) {
				var de *errors.DimensionError
				require.True(t, errors.As(err, &de))
				assert.Equal(t, 0, de.Axis)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lr := NewSVDRegression()
			err := lr.TrainAndPredict(tt.train, tt.test, tt.predicted)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestSVDRegressionNotFitted(t *testing.T) {
	lr := NewSVDRegression()

	_, err := lr.Coefficients()
	var nf *errors.NotFittedError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Coefficients", nf.Method)

	// 失敗した呼び出しの後は前回の学習結果も参照できない
	ds := planeData(t, 5)
	require.NoError(t, lr.TrainAndPredict(ds, ds, make([]float64, 5)))
	_, err = lr.Intercept()
	require.NoError(t, err)

	require.Error(t, lr.TrainAndPredict(ds, ds, make([]float64, 1)))
	_, err = lr.Intercept()
	assert.True(t, errors.As(err, &nf))
}

func TestSVDRegressionIndependentCalls(t *testing.T) {
	a := planeData(t, 12)
	b := planeData(t, 7)
	predicted := make([]float64, 12)

	lr := NewSVDRegression()
	require.NoError(t, lr.TrainAndPredict(b, a, predicted))
	require.NoError(t, lr.TrainAndPredict(a, a, predicted))
	first, err := lr.Coefficients()
	require.NoError(t, err)

	fresh := NewSVDRegression()
	require.NoError(t, fresh.TrainAndPredict(a, a, predicted))
	second, err := fresh.Coefficients()
	require.NoError(t, err)

	assert.Equal(t, second, first)
}

func TestSVDRegressionLogsFit(t *testing.T) {
	logger, _ := log.NewTestLogger(log.LevelDebug)
	ds := planeData(t, 8)

	lr := NewSVDRegression(WithLogger(logger))
	require.NoError(t, lr.TrainAndPredict(ds, ds, make([]float64, 8)))

	assert.True(t, logger.ContainsMessage("Model fitted"))
	assert.True(t, logger.ContainsField(log.TrainerKey, "SVDRegression"))
	assert.True(t, logger.ContainsField(log.SamplesKey, float64(8)))
}
