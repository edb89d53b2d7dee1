package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRows(t *testing.T) {
	tests := []struct {
		name string
		n    int
		cfg  Config
	}{
		{name: "sequential small", n: 5, cfg: DefaultConfig()},
		{name: "single worker", n: 1000, cfg: Config{Workers: 1, MinChunk: 1}},
		{name: "split", n: 1000, cfg: Config{Workers: 4, MinChunk: 16}},
		{name: "uneven split", n: 37, cfg: Config{Workers: 8, MinChunk: 2}},
		{name: "empty", n: 0, cfg: Config{Workers: 4, MinChunk: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visits := make([]int32, tt.n)
			var total int64

			Rows(tt.n, func(i int) {
				atomic.AddInt32(&visits[i], 1)
				atomic.AddInt64(&total, 1)
			}, tt.cfg)

			assert.Equal(t, int64(tt.n), total)
			for i, v := range visits {
				assert.Equal(t, int32(1), v, "row %d", i)
			}
		})
	}
}
