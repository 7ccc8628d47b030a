package model

import (
	"github.com/YuminosukeSato/errest/core/dataset"
	"github.com/YuminosukeSato/errest/pkg/errors"
)

// Trainer は学習と予測を一度に行うモデルのインターフェース
//
// TrainAndPredict trains a fresh model on train and writes one prediction
// per row of test into predicted[:test.Rows()]. Only the predictor columns
// of test are read. Each call behaves as if on a newly reset model: nothing
// learned in one call may influence the next. Implementations are expected
// to absorb singular designs themselves.
type Trainer interface {
	TrainAndPredict(train, test *dataset.Dataset, predicted []float64) error
}

// TrainerFunc adapts an ordinary function to the Trainer interface.
type TrainerFunc func(train, test *dataset.Dataset, predicted []float64) error

// TrainAndPredict calls f(train, test, predicted).
func (f TrainerFunc) TrainAndPredict(train, test *dataset.Dataset, predicted []float64) error {
	return f(train, test, predicted)
}

// Namer is implemented by trainers that report a name for logging.
type Namer interface {
	Name() string
}

// NameOf returns t's name, or "Trainer" when it does not implement Namer.
func NameOf(t Trainer) string {
	if n, ok := t.(Namer); ok {
		return n.Name()
	}
	return "Trainer"
}

// CheckTables validates the arguments of a TrainAndPredict call.
func CheckTables(op string, train, test *dataset.Dataset, predicted []float64) error {
	if train == nil || test == nil {
		return errors.NewModelError(op, "nil table", errors.ErrEmptyData)
	}
	if train.Rows() == 0 {
		return errors.NewModelError(op, "empty training table", errors.ErrEmptyData)
	}
	if test.Predictors() != train.Predictors() {
		return errors.NewDimensionError(op, train.Predictors()+1, test.Predictors()+1, 1)
	}
	if len(predicted) < test.Rows() {
		return errors.NewDimensionError(op, test.Rows(), len(predicted), 0)
	}
	return nil
}
