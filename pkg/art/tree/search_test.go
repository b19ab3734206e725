package tree

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/wisptrie/art/pkg/arena"
	"github.com/wisptrie/art/pkg/art/node"
)

func TestSearchEmptyTree(t *testing.T) {
	Convey("Given an empty trie", t, func() {
		var root node.Ref[int]

		_, ok := Search(root, []byte{1})
		So(ok, ShouldBeFalse)

		_, ok = Minimum(root)
		So(ok, ShouldBeFalse)

		_, ok = Maximum(root)
		So(ok, ShouldBeFalse)
	})
}

func TestSearchSingleLeafRoot(t *testing.T) {
	Convey("Given a trie with a single key", t, func() {
		a := &arena.Arena{}
		var root node.Ref[int]
		mustInsert(t, a, &root, []byte{1, 2, 3}, 42)

		Convey("Then Minimum and Maximum both resolve to it", func() {
			lo, ok := Minimum(root)
			So(ok, ShouldBeTrue)
			So(lo.Value, ShouldEqual, 42)

			hi, ok := Maximum(root)
			So(ok, ShouldBeTrue)
			So(hi.Value, ShouldEqual, 42)
		})

		Convey("Then an empty key misses", func() {
			_, ok := Search(root, nil)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestSearchMinimumMaximum(t *testing.T) {
	Convey("Given a trie with several keys under one inner node", t, func() {
		a := &arena.Arena{}
		var root node.Ref[int]
		mustInsert(t, a, &root, []byte{1, 2, 3}, 3)
		mustInsert(t, a, &root, []byte{1, 2, 1}, 1)
		mustInsert(t, a, &root, []byte{1, 2, 9}, 9)
		mustInsert(t, a, &root, []byte{1, 2, 5}, 5)

		Convey("Then Minimum reports the lowest-keyed leaf", func() {
			lo, ok := Minimum(root)
			So(ok, ShouldBeTrue)
			So(lo.Value, ShouldEqual, 1)
		})

		Convey("Then Maximum reports the highest-keyed leaf", func() {
			hi, ok := Maximum(root)
			So(ok, ShouldBeTrue)
			So(hi.Value, ShouldEqual, 9)
		})
	})
}
