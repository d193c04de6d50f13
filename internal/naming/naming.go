// Package naming derives every identifier form the generator needs from a
// single user-supplied entity token. All transforms are pure functions: the
// same input always produces the same Bundle, and every downstream path and
// identifier is built from Bundle fields rather than re-derived ad hoc.
package naming

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidToken indicates a raw entity name that does not match TokenPattern.
var ErrInvalidToken = errors.New("invalid entity name: must match [a-z0-9_-]+")

// TokenPattern is the accepted shape of a raw entity token. Validation is a
// caller concern; Normalize assumes its input already matches.
var TokenPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// Bundle holds all derived identifier forms for one entity token.
//
// Plural drives directory and registration naming, Singular drives file
// names, Class and Property drive identifiers inside generated source.
type Bundle struct {
	Raw      string // token as supplied, e.g. "user-profiles"
	Singular string // singular token, e.g. "user-profile"
	Plural   string // plural token, e.g. "user-profiles"
	Class    string // PascalCase of the singular, e.g. "UserProfile"
	Property string // camelCase of the singular, e.g. "userProfile"
	Kebab    string // kebab-case of the singular, e.g. "user-profile"
	Snake    string // snake_case of the singular, e.g. "user_profile"
}

// ValidateToken reports whether raw is an acceptable entity token.
func ValidateToken(raw string) error {
	if !TokenPattern.MatchString(raw) {
		return ErrInvalidToken
	}
	return nil
}

// Normalize derives the full identifier bundle for a raw token. The raw
// token may be supplied in either singular or plural form; both are folded
// to the canonical singular first.
func Normalize(raw string) Bundle {
	singular := Singularize(raw)
	return Bundle{
		Raw:      raw,
		Singular: singular,
		Plural:   Pluralize(singular),
		Class:    ClassCase(singular),
		Property: PropertyCase(singular),
		Kebab:    KebabCase(singular),
		Snake:    SnakeCase(singular),
	}
}

var titleCaser = cases.Title(language.English, cases.NoLower)

// splitWords breaks a token on '-', '_' and whitespace runs, then on
// lower-to-upper boundaries so already-cased input splits into the same
// words as its delimited form.
func splitWords(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	var words []string
	for _, f := range fields {
		runes := []rune(f)
		start := 0
		for i := 1; i < len(runes); i++ {
			if unicode.IsUpper(runes[i]) && unicode.IsLower(runes[i-1]) {
				words = append(words, string(runes[start:i]))
				start = i
			}
		}
		words = append(words, string(runes[start:]))
	}
	return words
}

// ClassCase converts a token to PascalCase: each word's first letter is
// uppercased, the rest lowercased, and the words concatenated.
func ClassCase(s string) string {
	var b strings.Builder
	for _, w := range splitWords(s) {
		b.WriteString(titleCaser.String(strings.ToLower(w)))
	}
	return b.String()
}

// PropertyCase is ClassCase with the first letter lowercased.
func PropertyCase(s string) string {
	c := ClassCase(s)
	if c == "" {
		return c
	}
	r := []rune(c)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// KebabCase lowercases a token, inserting '-' before an uppercase letter
// that follows a lowercase letter and collapsing '_'/whitespace runs to a
// single '-'.
func KebabCase(s string) string {
	return delimitedCase(s, '-')
}

// SnakeCase is the kebab rule with '_' as the separator.
func SnakeCase(s string) string {
	return delimitedCase(s, '_')
}

func delimitedCase(s string, sep rune) string {
	var b strings.Builder
	prevLower := false
	pendingSep := false
	for _, r := range s {
		switch {
		case r == '-' || r == '_' || unicode.IsSpace(r):
			if b.Len() > 0 {
				pendingSep = true
			}
			prevLower = false
			continue
		case unicode.IsUpper(r):
			if prevLower {
				pendingSep = true
			}
			prevLower = false
		default:
			prevLower = unicode.IsLower(r)
		}
		if pendingSep {
			b.WriteRune(sep)
			pendingSep = false
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Pluralize converts a singular token to its plural form. The rule is a
// heuristic, not a dictionary: trailing "y" becomes "ies", a token already
// ending in a lone "s" is left as-is, everything else (including "ss"
// endings) gets an "s" appended. Irregular nouns are not handled.
func Pluralize(s string) string {
	switch {
	case s == "":
		return s
	case strings.HasSuffix(s, "y"):
		return s[:len(s)-1] + "ies"
	case strings.HasSuffix(s, "s") && !strings.HasSuffix(s, "ss"):
		return s
	default:
		return s + "s"
	}
}

// Singularize is the inverse heuristic of Pluralize: trailing "ies" becomes
// "y" and a trailing lone "s" is stripped. Tokens ending in "ss" are treated
// as already singular.
func Singularize(s string) string {
	switch {
	case strings.HasSuffix(s, "ies"):
		return s[:len(s)-3] + "y"
	case strings.HasSuffix(s, "s") && !strings.HasSuffix(s, "ss"):
		return s[:len(s)-1]
	default:
		return s
	}
}
