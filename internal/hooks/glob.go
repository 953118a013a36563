package hooks

import (
	"regexp"
	"strings"
)

// MatchGlob reports whether key matches a standard glob pattern (*, ?,
// character classes). Unlike path/filepath.Match, '*' here matches any
// sequence of characters including '/' — gate keys are opaque strings (tool
// names, normalized Bash commands), not filesystem paths, so the
// path-separator-aware semantics of the stdlib file-glob matcher would
// silently fail to match a "*" across a slash in a command argument. The
// pattern is compiled to a regexp by hand instead. On a compile failure
// (e.g. an unterminated character class) it falls back to a literal-prefix
// match against everything up to the last '*' in the pattern.
func MatchGlob(pattern, key string) bool {
	re, err := compileGlob(pattern)
	if err == nil {
		return re.MatchString(key)
	}
	prefix := pattern
	if idx := strings.LastIndex(pattern, "*"); idx >= 0 {
		prefix = pattern[:idx]
	}
	return strings.HasPrefix(key, prefix)
}

// compileGlob translates a glob pattern into an anchored regexp: '*' becomes
// '.*', '?' becomes '.', a '[...]' character class passes through as-is
// (after validating it's well-formed), and every other rune is escaped
// literally.
func compileGlob(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '[':
			end := indexRune(runes, i+1, ']')
			if end == -1 {
				return nil, errUnterminatedClass
			}
			b.WriteRune('[')
			class := runes[i+1 : end]
			if len(class) > 0 && class[0] == '!' {
				b.WriteRune('^')
				class = class[1:]
			}
			b.WriteString(string(class))
			b.WriteRune(']')
			i = end
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")

	return regexp.Compile(b.String())
}

var errUnterminatedClass = &globError{"unterminated character class"}

type globError struct{ msg string }

func (e *globError) Error() string { return e.msg }

func indexRune(runes []rune, from int, target rune) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == target {
			return i
		}
	}
	return -1
}

// FirstMatchingPattern returns the first pattern (in list order) that
// matches key, and whether any did. Ordering is significant: more specific
// patterns must be listed before general ones.
func FirstMatchingPattern(patterns []string, key string) (string, bool) {
	for _, p := range patterns {
		if MatchGlob(p, key) {
			return p, true
		}
	}
	return "", false
}
