package montecarlo

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/errest/core/dataset"
	"github.com/YuminosukeSato/errest/pkg/errors"
)

// Correlation is the weight tying the second predictor to the first:
// x1 = Correlation*x0 + Correlation*z, giving unit variance and a
// correlation of about 0.7 within each class.
const Correlation = 0.7071

// Generator draws the two-class benchmark problem.
type Generator struct {
	normal  distuv.Normal
	uniform distuv.Uniform
}

// NewGenerator returns a Generator drawing from src.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{
		normal:  distuv.Normal{Mu: 0, Sigma: 1, Src: src},
		uniform: distuv.Uniform{Min: 0, Max: 1, Src: src},
	}
}

// Fill overwrites every case of ds. With probability one half a case is
// class +1 and shifted to (x0-sep, x1+sep); otherwise it is class -1 and
// shifted to (x0+sep, x1-sep). ds must have exactly two predictors.
func (g *Generator) Fill(ds *dataset.Dataset, sep float64) error {
	if ds.Predictors() != 2 {
		return errors.NewDimensionError("Generator.Fill", 3, ds.Predictors()+1, 1)
	}
	for i := 0; i < ds.Rows(); i++ {
		row := ds.Row(i)
		x0 := g.normal.Rand()
		x1 := Correlation*x0 + Correlation*g.normal.Rand()
		if g.uniform.Rand() > 0.5 {
			row[0], row[1], row[2] = x0-sep, x1+sep, 1
		} else {
			row[0], row[1], row[2] = x0+sep, x1-sep, -1
		}
	}
	return nil
}
