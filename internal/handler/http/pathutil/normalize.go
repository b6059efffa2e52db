package pathutil

import (
	"regexp"
	"strings"
)

// pathPattern pairs a route regex with its normalized template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// pathPatterns lists the dynamic routes, most specific first.
// Pre-compiled at initialization.
var pathPatterns = []*pathPattern{
	{pattern: regexp.MustCompile(`^/notices/search$`), template: "/notices/search"},
	{pattern: regexp.MustCompile(`^/notices/[^/]+$`), template: "/notices/:bidNtceNo"},
}

// NormalizePath converts paths containing notice numbers to template form
// (e.g. /notices/20240115-00042 -> /notices/:bidNtceNo) so metrics label
// cardinality stays bounded. Static paths are returned unchanged.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		path = "/"
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
