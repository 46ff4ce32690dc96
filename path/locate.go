package path

import (
	"errors"
	"reflect"
	"runtime"
	"strings"
)

// ErrNotFunc is returned by Locate when the given value is not a function.
var ErrNotFunc = errors.New("value is not a function")

// ErrNoMetadata is returned by Locate when the runtime has no symbol
// information for the function, e.g. for some reflect-made functions.
var ErrNoMetadata = errors.New("no runtime metadata for function")

// Location identifies where a function was declared: the segments of its
// package import path and of its qualified name inside that package.
// Methods contribute their receiver type name to Qual.
type Location struct {
	Module []string
	Qual   []string
}

// Locate derives the declaration Location of fn from runtime metadata.
func Locate(fn any) (Location, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return Location{}, ErrNotFunc
	}

	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return Location{}, ErrNoMetadata
	}

	return parseFuncName(rf.Name()), nil
}

// parseFuncName splits a runtime symbol name such as
// "github.com/acme/app/db.(*Client).Connect-fm" into package path
// segments and qualified name segments.
func parseFuncName(name string) Location {
	pkg := name

	var qual string

	slash := strings.LastIndexByte(name, '/')

	dot := strings.IndexByte(name[slash+1:], '.')
	if dot >= 0 {
		pkg = name[:slash+1+dot]
		qual = name[slash+1+dot+1:]
	}

	loc := Location{Module: strings.Split(pkg, "/")}
	if qual == "" {
		return loc
	}

	for _, part := range strings.Split(stripBrackets(qual), ".") {
		if seg := cleanQualSegment(part); seg != "" {
			loc.Qual = append(loc.Qual, seg)
		}
	}

	return loc
}

// stripBrackets removes generic instantiation suffixes like
// "[go.shape.int]", which would otherwise break splitting on dots.
func stripBrackets(s string) string {
	for {
		i := strings.IndexByte(s, '[')
		if i < 0 {
			return s
		}

		j := strings.IndexByte(s[i:], ']')
		if j < 0 {
			return s[:i]
		}

		s = s[:i] + s[i+j+1:]
	}
}

// cleanQualSegment normalizes one qualified-name segment: "(*Client)"
// becomes "Client" and the "-fm" suffix of method values is dropped.
func cleanQualSegment(s string) string {
	s = strings.TrimSuffix(s, "-fm")
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	s = strings.TrimPrefix(s, "*")

	return s
}
