// Package linear は SVD による最小二乗の線形判別器を提供する
package linear

import (
	"github.com/YuminosukeSato/errest/core/dataset"
	"github.com/YuminosukeSato/errest/core/model"
	"github.com/YuminosukeSato/errest/core/parallel"
	"github.com/YuminosukeSato/errest/pkg/errors"
	"github.com/YuminosukeSato/errest/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// DefaultSingularLimit は最大特異値に対する打ち切り比率の既定値
const DefaultSingularLimit = 1e-8

// 並列処理の閾値（この値以下の行数では逐次処理を使用）
const parallelThreshold = 1000

// SVDRegression は特異値分解で最小二乗解を求める線形モデル
//
// 設計行列は予測変数の後ろに定数列 1 を付け加えたもので、
// limit*s_max 以下の特異値は捨てる（ランク打ち切りによる正則化）。
// 予測値は b0 + Σ bj*xj で、符号がクラスを表す。
type SVDRegression struct {
	state *model.StateManager

	limit  float64
	logger log.Logger

	design    *mat.Dense   // 作業用の設計行列（行数が同じなら再利用）
	svd       mat.SVD      // 作業用の分解
	solution  mat.VecDense // 作業用の解ベクトル
	weights   []float64    // 重み（係数）
	intercept float64      // 切片
	rank      int          // 打ち切り後の有効ランク
}

// NewSVDRegression は新しい SVD 線形モデルを作成する
func NewSVDRegression(opts ...Option) *SVDRegression {
	lr := &SVDRegression{
		state:  model.NewStateManager(),
		limit:  DefaultSingularLimit,
		logger: log.GetLogger(),
	}
	for _, opt := range opts {
		opt(lr)
	}
	if lr.logger == nil {
		lr.logger = log.NewNopLogger()
	}
	return lr
}

// Name はログ出力用の名前を返す
func (lr *SVDRegression) Name() string {
	return "SVDRegression"
}

// TrainAndPredict は train で学習し、test の各行の予測値を predicted に書き込む
// 呼び出しごとに状態はリセットされる
func (lr *SVDRegression) TrainAndPredict(train, test *dataset.Dataset, predicted []float64) error {
	const op = "SVDRegression.TrainAndPredict"
	lr.state.Reset()

	if err := model.CheckTables(op, train, test, predicted); err != nil {
		return err
	}
	if err := lr.fit(train); err != nil {
		return err
	}

	out := predicted[:test.Rows()]
	for i := range out {
		out[i] = lr.predictOne(test.Inputs(i))
	}
	return errors.CheckNumericalStability(op, out)
}

// fit は設計行列を組み立てて最小ノルム最小二乗解を求める
func (lr *SVDRegression) fit(train *dataset.Dataset) error {
	const op = "SVDRegression.fit"
	r, p := train.Rows(), train.Predictors()

	// X_design = [X, 1]
	if lr.design == nil {
		lr.design = mat.NewDense(r, p+1, nil)
	} else if dr, dc := lr.design.Dims(); dr != r || dc != p+1 {
		lr.design = mat.NewDense(r, p+1, nil)
	}
	design := lr.design
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			row := design.RawRowView(i)
			copy(row, train.Inputs(i))
			row[p] = 1.0 // 定数項
		}
	})

	if ok := lr.svd.Factorize(design, mat.SVDThin); !ok {
		return errors.NewModelError(op, "svd failed to converge", errors.ErrSingularMatrix)
	}
	rank := lr.svd.Rank(lr.limit)
	if rank == 0 {
		return errors.NewModelError(op, "all singular values below limit", errors.ErrSingularMatrix)
	}

	lr.solution.Reset()
	lr.svd.SolveVecTo(&lr.solution, train.OutcomeVector(), rank)

	// 重みと切片を分離
	if cap(lr.weights) < p {
		lr.weights = make([]float64, p)
	}
	lr.weights = lr.weights[:p]
	for j := 0; j < p; j++ {
		lr.weights[j] = lr.solution.AtVec(j)
	}
	lr.intercept = lr.solution.AtVec(p)
	lr.rank = rank

	if err := errors.CheckNumericalStability(op, lr.solution.RawVector().Data); err != nil {
		return err
	}

	lr.state.SetFitted(p, r)
	lr.logger.Debug("Model fitted",
		log.TrainerKey, lr.Name(),
		log.SamplesKey, r,
		log.FeaturesKey, p,
		"rank", rank,
	)
	return nil
}

func (lr *SVDRegression) predictOne(x []float64) float64 {
	pred := lr.intercept
	for j, w := range lr.weights {
		pred += x[j] * w
	}
	return pred
}

// Coefficients は直近の学習で得た重み（係数）のコピーを返す
func (lr *SVDRegression) Coefficients() ([]float64, error) {
	if err := lr.state.RequireFitted(lr.Name(), "Coefficients"); err != nil {
		return nil, err
	}
	weights := make([]float64, len(lr.weights))
	copy(weights, lr.weights)
	return weights, nil
}

// Intercept は直近の学習で得た切片を返す
func (lr *SVDRegression) Intercept() (float64, error) {
	if err := lr.state.RequireFitted(lr.Name(), "Intercept"); err != nil {
		return 0, err
	}
	return lr.intercept, nil
}

// Rank は直近の学習での打ち切り後の有効ランクを返す
func (lr *SVDRegression) Rank() (int, error) {
	if err := lr.state.RequireFitted(lr.Name(), "Rank"); err != nil {
		return 0, err
	}
	return lr.rank, nil
}
