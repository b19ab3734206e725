package node

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestHeader(t *testing.T) {
	Convey("Given a fresh Header", t, func() {
		var h Header
		So(h.NumChildren(), ShouldEqual, 0)
		So(h.PrefixLen(), ShouldEqual, 0)

		Convey("When SetPrefix stores a prefix within the inline buffer", func() {
			h.SetPrefix([]byte{1, 2, 3})
			So(h.PrefixLen(), ShouldEqual, 3)
			So(h.InlinePrefix(), ShouldResemble, []byte{1, 2, 3})
		})

		Convey("When SetPrefix stores a prefix longer than InlinePrefixLen", func() {
			full := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
			h.SetPrefix(full)
			So(h.PrefixLen(), ShouldEqual, len(full))
			So(h.InlinePrefix(), ShouldResemble, full[:InlinePrefixLen])
		})

		Convey("When Prepend extends a short prefix", func() {
			h.SetPrefix([]byte{5, 6})
			h.Prepend([]byte{1, 2, 3})
			So(h.PrefixLen(), ShouldEqual, 5)
			So(h.InlinePrefix(), ShouldResemble, []byte{1, 2, 3, 5, 6})
		})

		Convey("When Prepend overflows the inline buffer", func() {
			h.SetPrefix([]byte{9, 9, 9})
			h.Prepend([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
			So(h.PrefixLen(), ShouldEqual, 13)
			So(h.InlinePrefix(), ShouldResemble, []byte{1, 2, 3, 4, 5, 6, 7, 8})
		})

		Convey("When TrimLeft discards bytes fully held inline", func() {
			h.SetPrefix([]byte{1, 2, 3, 4, 5})
			h.TrimLeft(2, func(i int) byte { panic("should not need a witness") })
			So(h.PrefixLen(), ShouldEqual, 3)
			So(h.InlinePrefix(), ShouldResemble, []byte{3, 4, 5})
		})

		Convey("When TrimLeft must recover bytes past the inline buffer from a witness", func() {
			witness := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
			h.SetPrefix(witness)
			h.TrimLeft(6, func(i int) byte { return witness[i] })

			So(h.PrefixLen(), ShouldEqual, 6)
			So(h.InlinePrefix(), ShouldResemble, witness[6:12])
		})
	})
}
