package path

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is a single lookup step into a config tree: either a Key
// (mapping lookup) or an Index (sequence lookup).
type Segment interface {
	fmt.Stringer
	segment()
}

// Key is a mapping-key segment.
type Key string

func (Key) segment() {}

// String implements fmt.Stringer.
func (k Key) String() string { return string(k) }

// Index is a sequence-index segment.
type Index int

func (Index) segment() {}

// String implements fmt.Stringer.
func (i Index) String() string { return "[" + strconv.Itoa(int(i)) + "]" }

// Path is an ordered sequence of segments into a config tree.
type Path []Segment

// String renders the path in the same grammar accepted by Parse.
func (p Path) String() string {
	var sb strings.Builder

	for i, seg := range p {
		if i > 0 {
			if _, isIndex := seg.(Index); !isIndex {
				sb.WriteByte('.')
			}
		}

		sb.WriteString(seg.String())
	}

	return sb.String()
}

// ParseError is returned by Parse for a malformed path string.
type ParseError struct {
	Input  string
	Reason string
}

// Error implements the error interface.
func (e ParseError) Error() string {
	return fmt.Sprintf("invalid config path %q: %s", e.Input, e.Reason)
}

// Parse parses a path string of the form segment('.'segment)*, where a
// segment is a name optionally followed by one "[n]" index suffix with a
// non-negative n.
func Parse(s string) (Path, error) {
	if s == "" {
		return nil, ParseError{Input: s, Reason: "empty path"}
	}

	var p Path

	for _, part := range strings.Split(s, ".") {
		segs, err := parseSegment(s, part)
		if err != nil {
			return nil, err
		}

		p = append(p, segs...)
	}

	return p, nil
}

func parseSegment(input, part string) ([]Segment, error) {
	if part == "" {
		return nil, ParseError{Input: input, Reason: "empty segment"}
	}

	open := strings.IndexByte(part, '[')
	if open < 0 {
		if strings.ContainsRune(part, ']') {
			return nil, ParseError{Input: input, Reason: fmt.Sprintf("unexpected ']' in segment %q", part)}
		}

		return []Segment{Key(part)}, nil
	}

	if open == 0 {
		return nil, ParseError{Input: input, Reason: fmt.Sprintf("segment %q has no name before its index", part)}
	}

	name := part[:open]
	suffix := part[open:]

	if !strings.HasSuffix(suffix, "]") || strings.Count(suffix, "[") > 1 || strings.Count(suffix, "]") > 1 {
		return nil, ParseError{Input: input, Reason: fmt.Sprintf("malformed index suffix in segment %q", part)}
	}

	n, err := strconv.Atoi(suffix[1 : len(suffix)-1])
	if err != nil || n < 0 {
		return nil, ParseError{Input: input, Reason: fmt.Sprintf("bad index in segment %q", part)}
	}

	return []Segment{Key(name), Index(n)}, nil
}
