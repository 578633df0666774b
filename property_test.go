package clipper

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func init() {
	rand.Seed(time.Now().UTC().UnixNano())
}

// randomRect grounds on the teacher's RandomPoly (ctessum-go.clipper,
// clipper_test.go): random simple axis-aligned rectangles, rather than
// fully random vertex soup, so the generated subject/clip inputs are
// always non-self-intersecting and the area identity below holds exactly.
func randomRect(maxWidth, maxHeight int64) Path64 {
	x0, x1 := rand.Int63n(maxWidth), rand.Int63n(maxWidth)
	y0, y1 := rand.Int63n(maxHeight), rand.Int63n(maxHeight)
	if x0 == x1 {
		x1++
	}
	if y0 == y1 {
		y1++
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return square(x0, y0, x1, y1)
}

func different(a, b float64) bool {
	if b == 0 {
		return math.Abs(a-b) > 1e-6
	}
	return math.Abs(a-b)/b > 0.01
}

// TestRandomAreaIdentity mirrors the teacher's TestRandom: for many random
// subject/clip pairs, union's area must equal intersection's plus xor's.
func TestRandomAreaIdentity(t *testing.T) {
	for i := 0; i < 200; i++ {
		subj := randomRect(640, 480)
		clip := randomRect(640, 480)

		areas := make(map[ClipType]float64)
		for _, ct := range []ClipType{Union, Intersection, Xor} {
			c := NewEngine(false)
			require.NoError(t, c.AddSubject(Paths64{subj}))
			require.NoError(t, c.AddClip(Paths64{clip}))
			out, err := c.Execute(ct, EvenOdd)
			require.NoError(t, err)
			areas[ct] = AreaPaths(out)
		}

		if different(areas[Union], areas[Intersection]+areas[Xor]) {
			t.Fatalf("iteration %d: union=%.1f intersection+xor=%.1f subj=%v clip=%v",
				i, areas[Union], areas[Intersection]+areas[Xor], subj, clip)
		}
	}
}
