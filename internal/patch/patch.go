// Package patch performs idempotent, anchor-based mutation of a generated
// project's aggregator module file. It inserts one import line and one
// registration entry without duplicating either or disturbing unrelated
// content. The transform is pure text; it never parses the target source.
package patch

import (
	"errors"
	"regexp"
	"strings"
)

// ErrAnchorNotFound indicates the registration list anchor was missing from
// the aggregator text. The returned text still carries the inserted import;
// callers should surface this as a warning with manual-fix guidance, not
// abort the workflow.
var ErrAnchorNotFound = errors.New("registration anchor \"imports: [\" not found")

var (
	importLinePattern = regexp.MustCompile(`(?m)^import\b.*$`)
	registryPattern   = regexp.MustCompile(`imports:\s*\[`)
)

// Patch returns aggregatorText with importLine added to the import block and
// identifier added to the registration list.
//
// The operation is idempotent: when identifier already occurs anywhere in
// the text the input is returned unchanged. It is also monotonic: existing
// imports and registration entries are never removed or reordered. When the
// registration anchor cannot be located, the text with only the import
// inserted is returned together with ErrAnchorNotFound.
func Patch(aggregatorText, importLine, identifier string) (string, error) {
	if strings.Contains(aggregatorText, identifier) {
		return aggregatorText, nil
	}

	out := insertImport(aggregatorText, importLine)

	loc := registryPattern.FindStringIndex(out)
	if loc == nil {
		return out, ErrAnchorNotFound
	}

	open := loc[1] // position right after '['
	rest := out[open:]
	trimmed := strings.TrimLeft(rest, " \t\n")
	if strings.HasPrefix(trimmed, "]") {
		// Canonical empty list: collapse any interior whitespace away and
		// emit a one-element list.
		closing := open + (len(rest) - len(trimmed))
		return out[:open] + identifier + out[closing:], nil
	}

	// Non-empty list: new entry goes right after the opening bracket.
	return out[:open] + identifier + ", " + out[open:], nil
}

// insertImport places importLine after the last existing import statement,
// or at the very start of the file when no imports exist.
func insertImport(text, importLine string) string {
	locs := importLinePattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return importLine + "\n" + text
	}
	end := locs[len(locs)-1][1]
	return text[:end] + "\n" + importLine + text[end:]
}
