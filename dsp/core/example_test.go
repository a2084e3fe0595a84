package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-libs/dsp/core"
)

func ExampleRound() {
	fmt.Println(core.Round(200+7*0.1, 3), core.Round(-0.0001, 3))

	// Output:
	// 200.7 0
}
