package resample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/errest/core/dataset"
	"github.com/YuminosukeSato/errest/core/model"
	"github.com/YuminosukeSato/errest/pkg/errors"
	"github.com/YuminosukeSato/errest/pkg/log"
)

func TestCrossValidation(t *testing.T) {
	tests := []struct {
		name     string
		trainer  model.Trainer
		expected float64
	}{
		{name: "always right", trainer: oracle, expected: 0},
		{name: "always wrong", trainer: contrarian, expected: 1},
		{name: "right only on training cases", trainer: memorizer, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := twoClusters(12, 1, 1)
			sc := NewScratch(12, 2)

			got, err := CrossValidation(ds, tt.trainer, sc)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCrossValidationFolds(t *testing.T) {
	const n = 6
	ds := twoClusters(n, 1, 2)
	sc := NewScratch(n, 2)

	fold := 0
	checker := model.TrainerFunc(func(train, test *dataset.Dataset, predicted []float64) error {
		require.Equal(t, n-1, train.Rows())
		require.Equal(t, 1, test.Rows())
		assert.Equal(t, ds.Row(fold), test.Row(0), "held-out case of fold %d", fold)

		k := 0
		for i := 0; i < n; i++ {
			if i == fold {
				continue
			}
			assert.Equal(t, ds.Row(i), train.Row(k), "fold %d training row %d", fold, k)
			k++
		}
		fold++
		predicted[0] = test.Outcome(0)
		return nil
	})

	_, err := CrossValidation(ds, checker, sc)
	require.NoError(t, err)
	assert.Equal(t, n, fold)
}

func TestCrossValidationLeavesDatasetUnchanged(t *testing.T) {
	ds := twoClusters(5, 1, 3)
	before := ds.Clone()

	// A trainer that scribbles over the tables it is handed.
	vandal := model.TrainerFunc(func(train, test *dataset.Dataset, predicted []float64) error {
		for k := 0; k < train.Rows(); k++ {
			train.SetRow(k, []float64{99, 99, 99})
		}
		test.SetRow(0, []float64{-99, -99, -99})
		predicted[0] = 1
		return nil
	})

	_, err := CrossValidation(ds, vandal, NewScratch(5, 2))
	require.NoError(t, err)
	assert.True(t, before.Equal(ds), "dataset must be bit-identical after leave-one-out")

	// A well-behaved trainer afterwards still sees the original data.
	got, err := CrossValidation(ds, oracle, NewScratch(5, 2))
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
	assert.True(t, before.Equal(ds))
}

func TestCrossValidationValidation(t *testing.T) {
	ds := twoClusters(6, 1, 4)

	tests := []struct {
		name string
		ds   *dataset.Dataset
		sc   *Scratch
	}{
		{name: "nil dataset", ds: nil, sc: NewScratch(6, 2)},
		{name: "single case", ds: dataset.New(1, 2), sc: NewScratch(6, 2)},
		{name: "nil scratch", ds: ds, sc: nil},
		{name: "scratch too small", ds: ds, sc: NewScratch(4, 2)},
		{name: "scratch with other predictors", ds: ds, sc: NewScratch(6, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CrossValidation(tt.ds, oracle, tt.sc)
			assert.Error(t, err)
		})
	}
}

func TestCrossValidationTrainerError(t *testing.T) {
	sentinel := errors.New("solver diverged")
	failing := model.TrainerFunc(func(_, _ *dataset.Dataset, _ []float64) error {
		return sentinel
	})

	logger, _ := log.NewTestLogger(log.LevelDebug)
	_, err := CrossValidation(twoClusters(4, 1, 5), failing, NewScratch(4, 2), WithLogger(logger))
	require.Error(t, err)
	assert.True(t, errors.Is(err, sentinel))
	assert.Contains(t, err.Error(), "fold 0")
	assert.True(t, logger.ContainsMessage("Trainer failed"))
	assert.True(t, logger.ContainsField(log.FoldKey, float64(0)))
}

func TestCrossValidationTrainerPanic(t *testing.T) {
	panicky := model.TrainerFunc(func(_, _ *dataset.Dataset, _ []float64) error {
		panic("index out of range")
	})

	_, err := CrossValidation(twoClusters(4, 1, 6), panicky, NewScratch(4, 2))
	require.Error(t, err)

	var pe *errors.PanicError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "CrossValidation", pe.Operation)
	assert.Equal(t, "index out of range", pe.PanicValue)
}

func TestCrossValidationLogsEstimate(t *testing.T) {
	logger, _ := log.NewTestLogger(log.LevelDebug)

	_, err := CrossValidation(twoClusters(8, 1, 7), oracle, NewScratch(8, 2), WithLogger(logger))
	require.NoError(t, err)

	assert.True(t, logger.ContainsMessage("Estimate computed"))
	assert.True(t, logger.ContainsField(log.EstimatorKey, "CrossValidation"))
	assert.True(t, logger.ContainsField(log.SamplesKey, float64(8)))
	assert.True(t, logger.ContainsField(log.EstimateKey, float64(0)))
}
