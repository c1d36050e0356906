package urlpath

import "strings"

// Join combines path1 and path2 into one normalized path.
//
// A protocol ("http://host") or protocol-relative ("//host") prefix on path1
// is kept verbatim. "." segments are dropped and ".." removes the segment
// before it, whichever of the two paths contributed it; ".." never climbs
// above the root. The result ends with a slash only when path2 does.
func Join(path1, path2 string) string {
	if path1 == "" {
		return path2
	}

	if path2 == "" {
		return path1
	}

	base := ParseUri(path1)
	// path2 never carries a prefix of its own, all of it is segments
	relSegments := splitSegments(path2)
	trailingSlash := strings.HasSuffix(path2, sepString)

	segments := make([]string, 0, len(base.PathSegments)+len(relSegments))
	segments = normalize(segments, base.PathSegments)
	segments = normalize(segments, relSegments)

	var b strings.Builder
	b.WriteString(base.Prefix)

	if base.IsAbsolute() {
		b.WriteByte(sep)
	} else if len(segments) == 0 {
		// a trailing slash alone would turn a relative result absolute
		return ""
	}

	b.WriteString(strings.Join(segments, sepString))

	if trailingSlash && len(segments) > 0 {
		b.WriteByte(sep)
	}

	return b.String()
}

func normalize(stack []string, segments []string) []string {
	for _, s := range segments {
		switch s {
		case currentSegment:
		case parentSegment:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, s)
		}
	}
	return stack
}

// RelativeToFile resolves path against the directory that contains file.
func RelativeToFile(path, file string) string {
	if file == "" {
		return path
	}

	var dir string
	prefix := ParseUri(file).Prefix
	switch i := strings.LastIndexByte(file, sep); {
	case i < len(prefix):
		// file is just a host
		dir = prefix
	case i == 0:
		dir = sepString
	default:
		dir = file[:i]
	}

	return Join(dir, path)
}
