package resample

import (
	"github.com/YuminosukeSato/errest/core/dataset"
)

// Draw fills sample with a bootstrap resample of ds: n cases drawn
// uniformly with replacement. counts[k] is set to the number of times case k
// was drawn, so the counts always sum to n.
//
// The index is floor(u*n), clamped to n-1 in case the source ever returns
// exactly 1.
func Draw(ds *dataset.Dataset, src Source, sample *dataset.Dataset, counts []int) {
	n := ds.Rows()
	clear(counts[:n])
	for i := 0; i < n; i++ {
		k := int(src.Float64() * float64(n))
		if k >= n {
			k = n - 1
		}
		sample.CopyRow(i, ds, k)
		counts[k]++
	}
}
