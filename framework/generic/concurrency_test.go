package generic

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestIsAssignable_ConcurrentCallers(t *testing.T) {
	t.Parallel()

	u := newUniverse()
	bounded := u.numberComparable()
	declared := []Type{
		bounded,
		u.listOf(u.String),
		u.listOf(Extends(u.Number)),
		ArrayOf(TypeVar("T")),
		Super(u.Integer),
	}
	candidates := u.classes()

	// sequential reference results
	want := make([][]bool, len(declared))
	for i, d := range declared {
		want[i] = make([]bool, len(candidates))
		for j, c := range candidates {
			want[i][j] = assignable(d, c)
		}
	}

	const workers = 32
	var wg sync.WaitGroup
	errs := make(chan string, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, d := range declared {
				for j, c := range candidates {
					if assignable(d, c) != want[i][j] {
						errs <- d.String() + " <- " + c.String()
						return
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		assert.Fail(t, "concurrent result differs", e)
	}
}
