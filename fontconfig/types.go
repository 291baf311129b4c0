// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package fontconfig

import (
	"fmt"
)

var _ = fmt.Print

// FontEntry describes one (file, family) face combination with fontconfig's
// platform style codes normalized to the CSS vocabulary the cache consumer
// understands. Values are immutable once created.
type FontEntry struct {
	File    string `json:"file"`
	Family  string `json:"family"`
	Style   string `json:"style"`
	Variant string `json:"variant"`
	Weight  int    `json:"weight"`
	Stretch string `json:"stretch"`
	Size    string `json:"size"`
}

func (self FontEntry) String() string {
	return fmt.Sprintf("FontEntry(file=%q, family=%q, style=%s, variant=%s, weight=%d, stretch=%s, size=%s)",
		self.File, self.Family, self.Style, self.Variant, self.Weight, self.Stretch, self.Size)
}
