package resample

import (
	"math"
	"math/rand/v2"

	"github.com/YuminosukeSato/errest/core/dataset"
	"github.com/YuminosukeSato/errest/core/model"
)

// oracle always predicts the true label of every test case.
var oracle = model.TrainerFunc(func(_, test *dataset.Dataset, predicted []float64) error {
	for i := 0; i < test.Rows(); i++ {
		predicted[i] = test.Outcome(i)
	}
	return nil
})

// contrarian always predicts the wrong sign.
var contrarian = model.TrainerFunc(func(_, test *dataset.Dataset, predicted []float64) error {
	for i := 0; i < test.Rows(); i++ {
		predicted[i] = -test.Outcome(i)
	}
	return nil
})

// memorizer is right on cases it was trained on and wrong on every other case.
var memorizer = model.TrainerFunc(func(train, test *dataset.Dataset, predicted []float64) error {
	for i := 0; i < test.Rows(); i++ {
		predicted[i] = -test.Outcome(i)
		for k := 0; k < train.Rows(); k++ {
			if sameInputs(train.Inputs(k), test.Inputs(i)) {
				predicted[i] = test.Outcome(i)
				break
			}
		}
	}
	return nil
})

func sameInputs(a, b []float64) bool {
	for j := range a {
		if math.Float64bits(a[j]) != math.Float64bits(b[j]) {
			return false
		}
	}
	return true
}

// centroid classifies by the nearer class mean of the training cases.
type centroid struct{ calls int }

func (c *centroid) Name() string { return "Centroid" }

func (c *centroid) TrainAndPredict(train, test *dataset.Dataset, predicted []float64) error {
	c.calls++
	p := train.Predictors()
	pos := make([]float64, p)
	neg := make([]float64, p)
	var npos, nneg float64
	for k := 0; k < train.Rows(); k++ {
		x := train.Inputs(k)
		if train.Outcome(k) > 0 {
			npos++
			for j := range x {
				pos[j] += x[j]
			}
		} else {
			nneg++
			for j := range x {
				neg[j] += x[j]
			}
		}
	}
	for j := 0; j < p; j++ {
		if npos > 0 {
			pos[j] /= npos
		}
		if nneg > 0 {
			neg[j] /= nneg
		}
	}
	for i := 0; i < test.Rows(); i++ {
		x := test.Inputs(i)
		var dpos, dneg float64
		for j := range x {
			dpos += (x[j] - pos[j]) * (x[j] - pos[j])
			dneg += (x[j] - neg[j]) * (x[j] - neg[j])
		}
		predicted[i] = dneg - dpos
	}
	return nil
}

// twoClusters returns n cases of two predictors with classes ±1 whose means
// are sep apart on each axis.
func twoClusters(n int, sep float64, seed uint64) *dataset.Dataset {
	rng := rand.New(rand.NewPCG(seed, 99))
	ds := dataset.New(n, 2)
	for i := 0; i < n; i++ {
		y := 1.0
		if i%2 == 1 {
			y = -1
		}
		ds.SetRow(i, []float64{
			rng.NormFloat64() - y*sep/2,
			rng.NormFloat64() + y*sep/2,
			y,
		})
	}
	return ds
}

// fixedSource replays values cyclically.
type fixedSource struct {
	values []float64
	pos    int
}

func (f *fixedSource) Float64() float64 {
	v := f.values[f.pos%len(f.values)]
	f.pos++
	return v
}
