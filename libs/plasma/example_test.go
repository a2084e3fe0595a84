package plasma_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-libs/libs/plasma"
)

func ExampleValidate() {
	err := plasma.Validate(
		plasma.Composition{Elements: []string{"W", "Fe"}, Percentages: []float64{70, 40}},
		plasma.Condition{Te: 1, Ne: 1e17, MaxIonCharge: 3},
		plasma.Window{Low: 200, Upper: 1000},
	)
	fmt.Println(errors.Is(err, plasma.ErrComposition))
	fmt.Println(err)
	// Output:
	// true
	// plasma: composition error: percentages=110: sum must be <= 100
}
