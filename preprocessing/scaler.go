// Package preprocessing は予測変数の標準化を提供する
package preprocessing

import (
	"fmt"

	"github.com/YuminosukeSato/errest/core/dataset"
	"github.com/YuminosukeSato/errest/core/model"
	"github.com/YuminosukeSato/errest/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// zeroScale 未満の標準偏差は 1 として扱う（ゼロ除算を避ける）
const zeroScale = 1e-8

// StandardScaler は予測変数を平均0、標準偏差1に変換する
// 結果変数（最終列）は変換しない
type StandardScaler struct {
	state *model.StateManager

	// Mean は各予測変数の平均値
	Mean []float64

	// Scale は各予測変数の母標準偏差（n で割る）
	Scale []float64

	// NFeatures は予測変数の数
	NFeatures int

	// WithMean は平均を引くかどうか (デフォルト: true)
	WithMean bool

	// WithStd は標準偏差で割るかどうか (デフォルト: true)
	WithStd bool

	col []float64
}

// NewStandardScaler は新しいStandardScalerを作成する
//
// 使用例:
//
//	scaler := preprocessing.NewStandardScaler(true, true)
//	err := scaler.Fit(train)
//	scaled, err := scaler.Transform(test)
func NewStandardScaler(withMean, withStd bool) *StandardScaler {
	return &StandardScaler{
		state:    model.NewStateManager(),
		WithMean: withMean,
		WithStd:  withStd,
	}
}

// NewStandardScalerDefault はデフォルト設定でStandardScalerを作成する
func NewStandardScalerDefault() *StandardScaler {
	return NewStandardScaler(true, true)
}

// Fit は訓練データの予測変数から平均と標準偏差を計算する
// 再学習のたびに前回の統計量は破棄される
func (s *StandardScaler) Fit(ds *dataset.Dataset) error {
	s.state.Reset()
	if ds == nil || ds.Rows() == 0 {
		return errors.NewModelError("StandardScaler.Fit", "empty data", errors.ErrEmptyData)
	}

	r, c := ds.Rows(), ds.Predictors()
	s.NFeatures = c
	s.Mean = resize(s.Mean, c)
	s.Scale = resize(s.Scale, c)
	s.col = resize(s.col, r)

	x := ds.PredictorMatrix()
	for j := 0; j < c; j++ {
		mean, std := stat.PopMeanStdDev(mat.Col(s.col, j, x), nil)

		s.Mean[j] = 0.0
		if s.WithMean {
			s.Mean[j] = mean
		}
		s.Scale[j] = 1.0
		if s.WithStd && std >= zeroScale {
			s.Scale[j] = std
		}
	}

	if err := errors.CheckNumericalStability("StandardScaler.Fit", s.Scale); err != nil {
		return err
	}
	s.state.SetFitted(c, r)
	return nil
}

// TransformRow は1ケース分の予測変数 x を標準化して dst に書き込む
func (s *StandardScaler) TransformRow(dst, x []float64) {
	for j := range x {
		dst[j] = (x[j] - s.Mean[j]) / s.Scale[j]
	}
}

// Transform は学習済みの統計情報で ds を標準化したコピーを返す
func (s *StandardScaler) Transform(ds *dataset.Dataset) (*dataset.Dataset, error) {
	if err := s.state.RequireFitted("StandardScaler", "Transform"); err != nil {
		return nil, err
	}
	if ds.Predictors() != s.NFeatures {
		return nil, errors.NewDimensionError("StandardScaler.Transform", s.NFeatures+1, ds.Predictors()+1, 1)
	}

	result := ds.Clone()
	for i := 0; i < result.Rows(); i++ {
		s.TransformRow(result.Inputs(i), ds.Inputs(i))
	}
	return result, nil
}

// InverseTransform は標準化された ds を元のスケールに戻したコピーを返す
func (s *StandardScaler) InverseTransform(ds *dataset.Dataset) (*dataset.Dataset, error) {
	if err := s.state.RequireFitted("StandardScaler", "InverseTransform"); err != nil {
		return nil, err
	}
	if ds.Predictors() != s.NFeatures {
		return nil, errors.NewDimensionError("StandardScaler.InverseTransform", s.NFeatures+1, ds.Predictors()+1, 1)
	}

	result := ds.Clone()
	for i := 0; i < result.Rows(); i++ {
		row := result.Inputs(i)
		for j := range row {
			row[j] = row[j]*s.Scale[j] + s.Mean[j]
		}
	}
	return result, nil
}

// IsFitted は学習済みかどうかを返す
func (s *StandardScaler) IsFitted() bool {
	return s.state.IsFitted()
}

// String はスケーラーの文字列表現を返す
func (s *StandardScaler) String() string {
	if !s.IsFitted() {
		return fmt.Sprintf("StandardScaler(with_mean=%t, with_std=%t)", s.WithMean, s.WithStd)
	}
	return fmt.Sprintf("StandardScaler(with_mean=%t, with_std=%t, n_features=%d)",
		s.WithMean, s.WithStd, s.NFeatures)
}

func resize(s []float64, n int) []float64 {
	if cap(s) < n {
		return make([]float64, n)
	}
	return s[:n]
}
