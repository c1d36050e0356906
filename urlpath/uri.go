package urlpath

import "strings"

type UriType int

const (
	UriTypeAuthority UriType = iota
	UriTypeAbsolute
	UriTypeRootless
	UriTypeEmpty
)

func (t UriType) String() string {
	switch t {
	case UriTypeAuthority:
		return "authority"
	case UriTypeAbsolute:
		return "absolute"
	case UriTypeRootless:
		return "rootless"
	case UriTypeEmpty:
		return "empty"
	}
	return "unknown"
}

// Uri is a path string split into the part that is never normalized (Prefix)
// and the slash separated segments that follow it.
type Uri struct {
	Type          UriType
	Scheme        string
	Authority     string
	Prefix        string
	PathSegments  []string
	TrailingSlash bool
}

func (u Uri) IsAbsolute() bool {
	return u.Type == UriTypeAuthority || u.Type == UriTypeAbsolute
}

const (
	sep                  = '/'
	sepString            = "/"
	protocolRelative     = "//"
	schemeSeparator      = "://"
	currentSegment       = "."
	parentSegment        = ".."
	schemeForbiddenChars = "/:"
)

// ParseUri splits p into its protocol or protocol-relative prefix and its
// path segments. Empty segments are dropped; segments are not normalized.
func ParseUri(p string) Uri {
	if p == "" {
		return Uri{Type: UriTypeEmpty}
	}

	u := Uri{
		Type:          UriTypeRootless,
		TrailingSlash: p[len(p)-1] == sep,
	}

	rest := p
	if scheme, after, ok := cutScheme(p); ok {
		u.Type = UriTypeAuthority
		u.Scheme = scheme
		u.Authority, rest = cutAuthority(after)
		u.Prefix = scheme + schemeSeparator + u.Authority
	} else if strings.HasPrefix(p, protocolRelative) {
		u.Type = UriTypeAuthority
		u.Authority, rest = cutAuthority(p[len(protocolRelative):])
		u.Prefix = protocolRelative + u.Authority
	} else if p[0] == sep {
		u.Type = UriTypeAbsolute
	}

	u.PathSegments = splitSegments(rest)
	return u
}

// cutScheme reports whether p starts with "scheme://" and returns the scheme
// and what follows the separator.
func cutScheme(p string) (scheme, rest string, ok bool) {
	i := strings.Index(p, schemeSeparator)
	if i <= 0 {
		return "", p, false
	}

	if strings.ContainsAny(p[:i], schemeForbiddenChars) {
		return "", p, false
	}

	return p[:i], p[i+len(schemeSeparator):], true
}

func cutAuthority(p string) (authority, rest string) {
	i := strings.IndexByte(p, sep)
	if i < 0 {
		return p, ""
	}

	return p[:i], p[i:]
}

func splitSegments(p string) []string {
	var segments []string
	for _, s := range strings.Split(p, sepString) {
		if s == "" {
			continue
		}
		segments = append(segments, s)
	}
	return segments
}
