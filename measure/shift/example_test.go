package shift_test

import (
	"fmt"

	"github.com/cwbudde/algo-libs/measure/shift"
)

func ExampleEstimator_Estimate() {
	ref := []float64{0, 0, 1, 4, 1, 0, 0, 0, 0, 0}
	target := []float64{0, 0, 0, 0, 1, 4, 1, 0, 0, 0}

	est, err := shift.NewEstimator(0.5).Estimate(ref, target)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("lag=%.1f shift=%.1f nm score=%.2f\n", est.Lag, est.Shift, est.Score)

	// Output:
	// lag=2.0 shift=1.0 nm score=1.00
}
