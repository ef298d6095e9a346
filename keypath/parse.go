package keypath

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses a path expression into a Path. The empty expression and the
// bare root marker "$" parse to the empty path (nil).
//
// Syntax:
//   - "$" optional root marker
//   - ".field" or leading "field" — object field; quote with single or
//     double quotes when the name contains separators (".'a b'")
//   - "[0]" — array index or int-keyed object lookup; negatives count
//     from the end
//   - "[1:3]", "[1:]", "[:2]", "[:-1]" — ranges over ordered collections
//   - "[*]" or "[:]" — select-all over either collection kind
//   - ".." — recursive descent (zero or more levels)
func Parse(p string) (*Path, error) {
	if strings.HasPrefix(p, "$") {
		p = p[1:]
	}
	if p == "" {
		return nil, nil
	}
	root := &Path{}
	if err := parseFrag(p, root); err != nil {
		return nil, err
	}
	return root, nil
}

// MustParse is Parse for statically known expressions; it panics on error.
func MustParse(p string) *Path {
	res, err := Parse(p)
	if err != nil {
		panic(fmt.Sprintf("keypath: invalid path %q: %v", p, err))
	}
	return res
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			if len(frag) == 2 {
				return nil
			}
			next := &Path{}
			if err := parseFrag(frag[2:], next); err != nil {
				return err
			}
			parent.Next = next
			return nil
		}
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(rest, next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <selector> ']'")
		}
		if err := parseSelector(frag[1:i+1], parent); err != nil {
			return err
		}
		if len(frag) == i+2 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(frag[i+2:], next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		// a path may begin with a bare field name
		field, rest, err := parseField(frag)
		if err != nil {
			return err
		}
		parent.Field = &field
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(rest, next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	}
}

// parseSelector parses bracket contents: "*", an index, or a range.
func parseSelector(is string, parent *Path) error {
	if is == "*" || is == ":" {
		parent.All = true
		return nil
	}
	colon := strings.IndexByte(is, ':')
	if colon == -1 {
		index, err := strconv.Atoi(is)
		if err != nil {
			return fmt.Errorf("invalid index %q: %v", is, err)
		}
		parent.Index = &index
		return nil
	}
	r := &Range{}
	if s := is[:colon]; s != "" {
		start, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid range start %q: %v", s, err)
		}
		r.Start = &start
	}
	if e := is[colon+1:]; e != "" {
		if strings.IndexByte(e, ':') != -1 {
			return fmt.Errorf("stepped ranges are not supported: %q", is)
		}
		end, err := strconv.Atoi(e)
		if err != nil {
			return fmt.Errorf("invalid range end %q: %v", e, err)
		}
		r.End = &end
	}
	parent.Range = r
	return nil
}

// parseField parses an object field name, stopping at '.' or '['.
// Quoted names may contain separators; the quote character and backslash
// are escaped with a backslash.
func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' && frag[0] != '"' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	quote := frag[0]
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			if escaped {
				res = append(res, c)
				escaped = false
				continue
			}
			escaped = true
		case quote:
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			escaped = false
			res = append(res, c)
		default:
			if escaped {
				res = append(res, '\\')
			}
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for %q", string(quote))
}
