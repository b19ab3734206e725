package art

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/wisptrie/art/pkg/arena"
)

func TestTreeLenAndIsEmpty(t *testing.T) {
	Convey("Given an empty Tree", t, func() {
		a := &arena.Arena{}
		var tr Tree[int]
		So(tr.IsEmpty(), ShouldBeTrue)
		So(tr.Len(), ShouldEqual, 0)

		Convey("When a key is inserted, Len and IsEmpty update", func() {
			_, outcome := tr.Insert(a, []byte{1}, 10)
			So(outcome, ShouldEqual, Inserted)
			So(tr.Len(), ShouldEqual, 1)
			So(tr.IsEmpty(), ShouldBeFalse)

			Convey("Then replacing it does not change Len", func() {
				old, outcome := tr.Insert(a, []byte{1}, 20)
				So(outcome, ShouldEqual, Replaced)
				So(old, ShouldEqual, 10)
				So(tr.Len(), ShouldEqual, 1)
			})

			Convey("Then a prefix-conflicting insert does not change Len", func() {
				_, outcome := tr.Insert(a, []byte{1, 2}, 99)
				So(outcome, ShouldEqual, PrefixConflict)
				So(tr.Len(), ShouldEqual, 1)
			})

			Convey("Then deleting it brings Len back to 0", func() {
				v, ok := tr.Delete(a, []byte{1})
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, 10)
				So(tr.Len(), ShouldEqual, 0)
				So(tr.IsEmpty(), ShouldBeTrue)
			})
		})
	})
}

func TestTreeInsertOutcomeString(t *testing.T) {
	Convey("Given each InsertOutcome value", t, func() {
		So(Inserted.String(), ShouldEqual, "Inserted")
		So(Replaced.String(), ShouldEqual, "Replaced")
		So(PrefixConflict.String(), ShouldEqual, "PrefixConflict")
		So(InsertOutcome(99).String(), ShouldEqual, "Unknown")
	})
}

func TestTreeSearchMinMax(t *testing.T) {
	Convey("Given a Tree with a few keys", t, func() {
		a := &arena.Arena{}
		var tr Tree[int]
		tr.Insert(a, []byte{1, 2, 1}, 1)
		tr.Insert(a, []byte{1, 2, 5}, 5)
		tr.Insert(a, []byte{1, 2, 3}, 3)

		v, ok := tr.Search([]byte{1, 2, 5})
		So(ok, ShouldBeTrue)
		So(v, ShouldEqual, 5)

		lo, ok := tr.Minimum()
		So(ok, ShouldBeTrue)
		So(lo.Value, ShouldEqual, 1)

		hi, ok := tr.Maximum()
		So(ok, ShouldBeTrue)
		So(hi.Value, ShouldEqual, 5)
	})
}

func TestTreeIterAndPrefixIter(t *testing.T) {
	Convey("Given a Tree with keys under two prefixes", t, func() {
		a := &arena.Arena{}
		var tr Tree[int]
		tr.Insert(a, []byte{1, 2, 3, 1}, 1)
		tr.Insert(a, []byte{1, 2, 3, 2}, 2)
		tr.Insert(a, []byte{1, 2, 4, 3}, 3)

		Convey("Then Iter visits every key in ascending order", func() {
			var got []int
			it := tr.Iter()
			for {
				l, ok := it.Next()
				if !ok {
					break
				}
				got = append(got, l.Value)
			}
			So(got, ShouldResemble, []int{1, 2, 3})
		})

		Convey("Then ReverseIter visits every key in descending order", func() {
			var got []int
			it := tr.ReverseIter()
			for {
				l, ok := it.Next()
				if !ok {
					break
				}
				got = append(got, l.Value)
			}
			So(got, ShouldResemble, []int{3, 2, 1})
		})

		Convey("Then IterPrefix restricts to the matching subtree", func() {
			var got []int
			it := tr.IterPrefix([]byte{1, 2, 3})
			for {
				l, ok := it.Next()
				if !ok {
					break
				}
				got = append(got, l.Value)
			}
			So(got, ShouldResemble, []int{1, 2})
		})

		Convey("Then ReverseIterPrefix restricts and reverses", func() {
			var got []int
			it := tr.ReverseIterPrefix([]byte{1, 2, 3})
			for {
				l, ok := it.Next()
				if !ok {
					break
				}
				got = append(got, l.Value)
			}
			So(got, ShouldResemble, []int{2, 1})
		})

		Convey("Then IterPrefix on an absent prefix yields nothing", func() {
			it := tr.IterPrefix([]byte{9, 9})
			_, ok := it.Next()
			So(ok, ShouldBeFalse)
		})
	})
}
