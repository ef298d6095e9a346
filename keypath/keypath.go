package keypath

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is one segment of a path expression, linked to the segments that
// follow it. A nil *Path is the empty path. Exactly one of the segment
// fields is set per node:
//   - Field: associative lookup by string key (e.g. ".name")
//   - Index: ordered-collection index or int-keyed lookup (e.g. "[0]")
//   - Range: bounded range over an ordered collection (e.g. "[1:3]")
//   - All: select-all over either collection kind ("[*]" or "[:]")
//   - Subtree: recursive-descent wildcard ("..")
type Path struct {
	Field   *string
	Index   *int
	Range   *Range
	All     bool
	Subtree bool
	Next    *Path
}

// Range selects the elements of an ordered collection from Start up to but
// not including End. Nil bounds are open; negative bounds count from the
// end of the collection.
type Range struct {
	Start *int
	End   *int
}

// Field returns a one-segment path selecting an object field.
func Field(name string) *Path {
	return &Path{Field: &name}
}

// Index returns a one-segment path selecting an array element or an
// int-keyed object entry. Negative indices count from the end.
func Index(i int) *Path {
	return &Path{Index: &i}
}

// Span returns a one-segment path selecting the [start:end) range.
func Span(start, end int) *Path {
	return &Path{Range: &Range{Start: &start, End: &end}}
}

// From returns a one-segment path selecting the [start:] range.
func From(start int) *Path {
	return &Path{Range: &Range{Start: &start}}
}

// Upto returns a one-segment path selecting the [:end] range.
func Upto(end int) *Path {
	return &Path{Range: &Range{End: &end}}
}

// All returns a one-segment select-all path.
func All() *Path {
	return &Path{All: true}
}

// Wildcard returns a one-segment recursive-descent path.
func Wildcard() *Path {
	return &Path{Subtree: true}
}

// Then appends next to the end of p and returns p, so paths can be built
// left to right:
//
//	keypath.Field("things").Then(keypath.Index(1)).Then(keypath.Field("id"))
func (p *Path) Then(next *Path) *Path {
	last := p
	for last.Next != nil {
		last = last.Next
	}
	last.Next = next
	return p
}

// Join links the given one-segment paths into one path.
func Join(segs ...*Path) *Path {
	var head *Path
	for _, seg := range segs {
		if seg == nil {
			continue
		}
		if head == nil {
			head = seg
			continue
		}
		head.Then(seg)
	}
	return head
}

// Len returns the number of segments.
func (p *Path) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// Spreads reports whether any segment of p selects multiple values (a
// range, select-all, or recursive-descent wildcard). The resolver uses this
// on a path continuation to decide whether broadcast results are flattened.
func (p *Path) Spreads() bool {
	for x := p; x != nil; x = x.Next {
		if x.All || x.Subtree || x.Range != nil {
			return true
		}
	}
	return false
}

// String returns the canonical $-rooted expression for p. Parse(p.String())
// yields a path equal to p.
func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	afterSubtree := false
	x := p
	for x != nil {
		switch {
		case x.Subtree:
			buf.WriteString("..")
			afterSubtree = true
			x = x.Next
			continue
		case x.All:
			buf.WriteString("[*]")
		case x.Range != nil:
			buf.WriteByte('[')
			if x.Range.Start != nil {
				buf.WriteString(strconv.Itoa(*x.Range.Start))
			}
			buf.WriteByte(':')
			if x.Range.End != nil {
				buf.WriteString(strconv.Itoa(*x.Range.End))
			}
			buf.WriteByte(']')
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		case x.Field != nil:
			f := *x.Field
			sep := "."
			if afterSubtree {
				sep = ""
			}
			if quoteField(f) {
				buf.WriteString(sep + "'" + strings.Replace(f, "'", "\\'", -1) + "'")
			} else {
				buf.WriteString(sep + f)
			}
		}
		afterSubtree = false
		x = x.Next
	}
	return buf.String()
}

func quoteField(f string) bool {
	if f == "" {
		return true
	}
	return strings.IndexAny(f, " \t.'\"*$:[]{}") != -1
}

// Equal reports whether two paths have the same segments.
func (p *Path) Equal(o *Path) bool {
	for p != nil && o != nil {
		if !segmentEqual(p, o) {
			return false
		}
		p = p.Next
		o = o.Next
	}
	return p == nil && o == nil
}

func segmentEqual(a, b *Path) bool {
	if a.All != b.All || a.Subtree != b.Subtree {
		return false
	}
	if !ptrEqual(a.Field, b.Field) {
		return false
	}
	if !ptrEqual(a.Index, b.Index) {
		return false
	}
	if (a.Range == nil) != (b.Range == nil) {
		return false
	}
	if a.Range != nil {
		return ptrEqual(a.Range.Start, b.Range.Start) && ptrEqual(a.Range.End, b.Range.End)
	}
	return true
}

func ptrEqual[T comparable](a, b *T) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

func (p *Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Path) UnmarshalText(d []byte) error {
	pp, err := Parse(string(d))
	if err != nil {
		return err
	}
	if pp == nil {
		return fmt.Errorf("cannot unmarshal empty path into non-nil Path")
	}
	*p = *pp
	return nil
}
