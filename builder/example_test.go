// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/pqdijkstra/builder"
)

// ExampleBuildGraph composes a weighted chain from functional pieces.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(3,
		[]builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(4))},
		builder.RandomSparse(1),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("V =", g.Order(), "E =", g.Size())
	// Output: V = 3 E = 6
}
