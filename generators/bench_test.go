// SPDX-License-Identifier: MIT
package generators_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvtree/generators"
)

func BenchmarkBinomialTree(b *testing.B) {
	for _, order := range []uint{8, 12, 16} {
		for _, bidir := range []bool{false, true} {
			b.Run(fmt.Sprintf("order=%d/bidir=%t", order, bidir), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := generators.BinomialTree[int, struct{}, struct{}](newListGraph[struct{}, struct{}], order, nil, nil, nil, bidir); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkFingerprint(b *testing.B) {
	g, err := generators.BinomialTree[int, struct{}, struct{}](newListGraph[struct{}, struct{}], 14, nil, nil, nil, true)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = generators.Fingerprint[int](g)
	}
}
