// Package clipboard copies selected paths to the system clipboard, the way
// copyPath-style helpers do, but returning a plain error instead of
// mutating status-bar state directly -- the caller decides how to surface it.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// CopyPath writes path to the system clipboard.
func CopyPath(path string) error {
	if err := clipboard.WriteAll(path); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
