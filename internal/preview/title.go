package preview

import "github.com/jsnider3/ffind/internal/matcher"

// Title truncates path to fit the preview pane border's width, reusing the
// same head/tail ellipsis policy the results list applies to match text.
func Title(path string, width int) string {
	return matcher.Truncate(path, width)
}
