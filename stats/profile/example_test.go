package profile_test

import (
	"fmt"

	"github.com/cwbudde/algo-rebin/dsp/grid"
	"github.com/cwbudde/algo-rebin/stats/profile"
)

func ExampleCalculate() {
	s, err := profile.Calculate(grid.Grid{0, 1, 3}, []float64{1, 1, 1})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("flux=%.2f centroid=%.2f max=%.0f@%.0f\n", s.Flux, s.Centroid, s.Max, s.MaxAt)
	// Output:
	// flux=5.00 centroid=1.60 max=1@0
}
