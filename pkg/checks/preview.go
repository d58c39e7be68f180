/*
Copyright © 2025 Fiberforge
SPDX-License-Identifier: Apache-2.0
*/

package checks

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// defaultPreviewLimit bounds the violation entries included in a failed
// result. The summary always states the true count.
const defaultPreviewLimit = 5

// preview returns at most limit items plus the true total. Truncated reports
// whether anything was cut.
func preview[T any](items []T, limit int) (head []T, total int, truncated bool) {
	total = len(items)
	if limit <= 0 || total <= limit {
		return items, total, false
	}
	return items[:limit], total, true
}

// noun formats a count with correct singular/plural phrasing, e.g.
// "1 closure", "4 closures".
func noun(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// join renders a column list for error messages.
func join(cols []string) string {
	return strings.Join(cols, ", ")
}

var titleCaser = cases.Title(language.English)

// layerTitle renders a layer name for human-facing messages, splitting the
// camel-cased export name into title-cased words: "PrimDistributionCables"
// becomes "Prim Distribution Cables".
func layerTitle(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return titleCaser.String(strings.ToLower(b.String()))
}
