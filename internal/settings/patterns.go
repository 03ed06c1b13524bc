package settings

import (
	"log/slog"
	"regexp"
	"strings"
)

// patternFormRe recognises the explicit /pattern/flags entry form.
var patternFormRe = regexp.MustCompile(`^/(.+)/([a-zA-Z]*)$`)

// CompilePatterns compiles command-hide entries. An entry is either an
// explicit /pattern/flags form or a bare string compiled case-insensitively.
// Invalid entries are skipped with a warning; the rest still apply.
func CompilePatterns(entries []string, logger *slog.Logger) []*regexp.Regexp {
	var out []*regexp.Regexp
	for _, entry := range entries {
		expr := toGoExpr(entry)
		re, err := regexp.Compile(expr)
		if err != nil {
			logger.Warn("settings: invalid command-hide pattern, skipping",
				slog.String("pattern", entry),
				slog.String("error", err.Error()))
			continue
		}
		out = append(out, re)
	}
	return out
}

// toGoExpr converts one entry into a Go regexp source string.
func toGoExpr(entry string) string {
	m := patternFormRe.FindStringSubmatch(entry)
	if m == nil {
		return "(?i)" + entry
	}
	var flags strings.Builder
	for _, f := range m[2] {
		switch f {
		case 'i', 'm', 's':
			flags.WriteRune(f)
		}
		// Other flags have no Go equivalent and are ignored.
	}
	if flags.Len() == 0 {
		return m[1]
	}
	return "(?" + flags.String() + ")" + m[1]
}
