package domain

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand returns the same value for every call, clamped to n-1.
type fixedRand int

func (f fixedRand) IntN(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

func TestRandomDistinctIndex_NeverReturnsCurrent(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for n := 2; n <= 6; n++ {
		for current := 0; current < n; current++ {
			seen := make(map[int]int)
			for i := 0; i < 500; i++ {
				idx, err := RandomDistinctIndex(n, current, r)
				require.NoError(t, err)
				require.NotEqual(t, current, idx)
				require.GreaterOrEqual(t, idx, 0)
				require.Less(t, idx, n)
				seen[idx]++
			}
			assert.Len(t, seen, n-1, "n=%d current=%d should reach every other index", n, current)
		}
	}
}

func TestRandomDistinctIndex_SkipsCurrent(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		current int
		draw    fixedRand
		want    int
	}{
		{"draw below current", 4, 2, 1, 1},
		{"draw at current shifts up", 4, 2, 2, 3},
		{"current first", 3, 0, 0, 1},
		{"current last", 3, 2, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RandomDistinctIndex(tt.n, tt.current, tt.draw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRandomDistinctIndex_Anomalies(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		current int
		wantErr error
	}{
		{"single item", 1, 0, ErrSelectionNoop},
		{"empty", 0, 0, ErrNoCurrentItem},
		{"current past end", 3, 3, ErrNoCurrentItem},
		{"negative current", 3, -1, ErrNoCurrentItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RandomDistinctIndex(tt.n, tt.current, DefaultRand())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.current, got)
		})
	}
}

func TestRandomDistinctIndex_NilRand(t *testing.T) {
	got, err := RandomDistinctIndex(2, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}
