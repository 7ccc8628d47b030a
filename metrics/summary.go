package metrics

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/errest/pkg/errors"
)

// Summary は試行ごとの推定値の要約統計量
type Summary struct {
	N    int
	Mean float64
	// Std は母標準偏差（n で割る）
	Std float64
	Min float64
	Max float64
}

// Summarize は推定値の平均・標準偏差・最小値・最大値を計算する
//
// 標準偏差は母分散（n で割る）から計算する。反復試行の散らばりを
// そのまま報告する目的なので不偏補正は行わない。
func Summarize(values []float64) (Summary, error) {
	n := len(values)
	if n == 0 {
		return Summary{}, errors.NewValueError("Summarize", "empty vector")
	}
	if err := errors.CheckNumericalStability("Summarize", values); err != nil {
		return Summary{}, err
	}

	mean, std := stat.PopMeanStdDev(values, nil)

	return Summary{
		N:    n,
		Mean: mean,
		Std:  std,
		Min:  floats.Min(values),
		Max:  floats.Max(values),
	}, nil
}
