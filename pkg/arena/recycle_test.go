//go:build go1.22

package arena_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/wisptrie/art/pkg/arena"
)

func TestRecycled(t *testing.T) {
	Convey("Given a Recycled allocator", t, func() {
		a := &arena.Recycled{}

		Convey("Release followed by Alloc of the same size reuses the block", func() {
			p1 := arena.New(a, pair{X: 7, Y: 8})
			addr := p1

			arena.Free(a, p1)
			p2 := arena.New(a, pair{X: 0, Y: 0})

			So(p2, ShouldEqual, addr)
			So(p2.X, ShouldEqual, 0) // recycled memory is cleared before reuse.
		})

		Convey("Reset clears free lists without breaking further allocation", func() {
			p := arena.New(a, pair{X: 1})
			arena.Free(a, p)
			a.Reset()

			q := arena.New(a, pair{X: 2})
			So(q.X, ShouldEqual, 2)
		})
	})
}
