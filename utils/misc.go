// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package utils

import (
	"cmp"
	"fmt"
	"slices"
)

var _ = fmt.Print

func StableSortWithKey[T any, C cmp.Ordered](s []T, key func(T) C) []T {
	slices.SortStableFunc(s, func(a, b T) int { return cmp.Compare(key(a), key(b)) })
	return s
}
