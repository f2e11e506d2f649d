package coverage

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Selection is a descendant matched by TreeReport.Select.
type Selection struct {
	Path   string
	Report *TreeReport
}

// Select returns every descendant of r whose slash joined name path matches
// the doublestar pattern, in depth first order. r itself is never matched.
//
// Node names are joined as they are, so a name that itself holds slashes,
// such as the source path `com/example/Foo.java` of a file node, spans
// several pattern segments: `*` does not match it whole, while
// `**/Foo.java` and `pkg/com/example/*.java` do.
func (r *TreeReport) Select(pattern string) ([]Selection, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, doublestar.ErrBadPattern
	}
	var out []Selection
	r.Walk(func(path []string, node *TreeReport) bool {
		joined := strings.Join(path, "/")
		if ok, _ := doublestar.Match(pattern, joined); ok {
			out = append(out, Selection{Path: joined, Report: node})
		}
		return true
	})
	return out, nil
}
