package metrics

import (
	"github.com/YuminosukeSato/errest/core/dataset"
	"github.com/YuminosukeSato/errest/pkg/errors"
)

// Loss は符号一致による 0/1 損失を計算する
//
// 真値と予測値の積が正（同符号かつ非ゼロ）なら 0、それ以外は 1 を返す。
// クラスラベルは ±1 で符号化されている前提で、trueValue が 0 の場合は常に 1 になる。
func Loss(trueValue, predicted float64) float64 {
	if trueValue*predicted > 0 {
		return 0
	}
	return 1
}

// ErrorRate はデータセット全体に対する平均 0/1 損失を計算する
// predicted[i] はデータセットの i 行目に対する予測値
func ErrorRate(ds *dataset.Dataset, predicted []float64) (float64, error) {
	n := ds.Rows()
	if n == 0 {
		return 0, errors.NewValueError("ErrorRate", "empty dataset")
	}
	if len(predicted) < n {
		return 0, errors.NewDimensionError("ErrorRate", n, len(predicted), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += Loss(ds.Outcome(i), predicted[i])
	}
	return sum / float64(n), nil
}

// Accuracy は 1 - ErrorRate を返す
func Accuracy(ds *dataset.Dataset, predicted []float64) (float64, error) {
	rate, err := ErrorRate(ds, predicted)
	if err != nil {
		return 0, err
	}
	return 1 - rate, nil
}
