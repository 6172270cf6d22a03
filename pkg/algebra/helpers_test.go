package algebra

import (
	"math/rand"
	"testing"

	fuzz "github.com/google/gofuzz"
)

const (
	propertyRuns = 200
	tolerance    = 1e-9
	fuzzSeed     = 20240613
)

// newFuzzer keeps components small so float round-off stays well under
// tolerance and integer products never overflow.
func newFuzzer(t *testing.T) *fuzz.Fuzzer {
	t.Helper()
	return fuzz.New().
		NilChance(0).
		RandSource(rand.NewSource(fuzzSeed)).
		Funcs(
			func(f *float64, c fuzz.Continue) {
				*f = c.Float64()*20 - 10
			},
			func(i *int64, c fuzz.Continue) {
				*i = c.Int63n(201) - 100
			},
		)
}

func randomFloat(f *fuzz.Fuzzer) Quaternion64 {
	var c [4]float64
	f.Fuzz(&c)
	return New(c[0], c[1], c[2], c[3])
}

func randomInt(f *fuzz.Fuzzer) Quaternion[int64] {
	var c [4]int64
	f.Fuzz(&c)
	return New(c[0], c[1], c[2], c[3])
}

func basis[T Scalar]() (one, i, j, k Quaternion[T]) {
	return New[T](1, 0, 0, 0), New[T](0, 1, 0, 0), New[T](0, 0, 1, 0), New[T](0, 0, 0, 1)
}
