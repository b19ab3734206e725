package node

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/wisptrie/art/pkg/arena"
)

func TestRef(t *testing.T) {
	Convey("Given the empty Ref", t, func() {
		var r Ref[int]
		So(r.Empty(), ShouldBeTrue)
		So(r.IsLeaf(), ShouldBeFalse)
		So(r.IsInner(), ShouldBeFalse)
	})

	Convey("Given a tagged Ref for each node class", t, func() {
		a := &arena.Arena{}

		leaf := NewLeaf(a, []byte("k"), 1)
		n4 := NewNode4[int](a)
		n16 := NewNode16[int](a)
		n48 := NewNode48[int](a)
		n256 := NewNode256[int](a)

		Convey("Then the tag identifies the variant without touching memory", func() {
			So(leaf.Ref().Type(), ShouldEqual, TypeLeaf)
			So(n4.Ref().Type(), ShouldEqual, TypeNode4)
			So(n16.Ref().Type(), ShouldEqual, TypeNode16)
			So(n48.Ref().Type(), ShouldEqual, TypeNode48)
			So(n256.Ref().Type(), ShouldEqual, TypeNode256)
		})

		Convey("Then AsNode dispatches to the concrete type", func() {
			So(n4.Ref().AsNode(), ShouldEqual, n4)
			So(leaf.Ref().AsNode(), ShouldEqual, leaf)
		})

		Convey("Then AsInner is nil for leaves and non-nil for inner nodes", func() {
			So(leaf.Ref().AsInner(), ShouldBeNil)
			So(n4.Ref().AsInner(), ShouldNotBeNil)
		})

		Convey("Then the wrong accessor returns nil rather than panicking", func() {
			So(n4.Ref().AsNode16(), ShouldBeNil)
			So(n16.Ref().AsNode4(), ShouldBeNil)
			So(leaf.Ref().AsNode4(), ShouldBeNil)
		})

		Convey("Then IsInner is true for every inner class and false for a leaf", func() {
			So(n4.Ref().IsInner(), ShouldBeTrue)
			So(n16.Ref().IsInner(), ShouldBeTrue)
			So(n48.Ref().IsInner(), ShouldBeTrue)
			So(n256.Ref().IsInner(), ShouldBeTrue)
			So(leaf.Ref().IsInner(), ShouldBeFalse)
		})
	})
}

func TestTypeString(t *testing.T) {
	Convey("Given each Type constant", t, func() {
		So(TypeNode4.String(), ShouldEqual, "Node4")
		So(TypeNode16.String(), ShouldEqual, "Node16")
		So(TypeNode48.String(), ShouldEqual, "Node48")
		So(TypeNode256.String(), ShouldEqual, "Node256")
		So(TypeLeaf.String(), ShouldEqual, "Leaf")
		So(Type(99).String(), ShouldEqual, "Unknown")
	})
}
