package flatfile

import (
	"strings"
	"time"
)

const (
	// TimeLayout is the timestamp format used in every file.
	TimeLayout = "2006-01-02T15:04:05"

	delimiter = "|"
	listSep   = ","
)

var (
	fieldEscaper = strings.NewReplacer(`\`, `\\`, "|", `\|`, "\n", `\n`)
	idEscaper    = strings.NewReplacer(`\`, `\\`, "|", `\|`, "\n", `\n`, ",", `\,`)
)

func escapeField(s string) string {
	return fieldEscaper.Replace(s)
}

func unescapeField(s string) string {
	return unescape(s, false)
}

// unescape reverses escapeField in a single pass. A backslash before any
// other character is kept as written, so older files that stored bare
// backslashes read back unchanged.
func unescape(s string, list bool) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		switch next := s[i+1]; {
		case next == '\\' || next == '|':
			b.WriteByte(next)
		case next == 'n':
			b.WriteByte('\n')
		case next == ',' && list:
			b.WriteByte(',')
		default:
			b.WriteByte(c)
			continue
		}
		i++
	}
	return b.String()
}

// splitFields splits a line on delimiters that are not escaped. Fields
// are returned still escaped.
func splitFields(line string) []string {
	return splitEscaped(line, delimiter[0])
}

func splitEscaped(s string, sep byte) []string {
	fields := make([]string, 0, 12)
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case sep:
			fields = append(fields, s[start:i])
			start = i + 1
		}
	}
	return append(fields, s[start:])
}

func escapeID(id string) string {
	return idEscaper.Replace(id)
}

func unescapeID(s string) string {
	return unescape(s, true)
}

func joinIDs(ids []string) string {
	escaped := make([]string, len(ids))
	for i, id := range ids {
		escaped[i] = escapeID(id)
	}
	return strings.Join(escaped, listSep)
}

func splitIDs(s string) []string {
	if s == "" {
		return nil
	}
	ids := splitEscaped(s, listSep[0])
	for i, id := range ids {
		ids[i] = unescapeID(id)
	}
	return ids
}

func formatTime(t time.Time) string {
	return t.In(time.Local).Format(TimeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.ParseInLocation(TimeLayout, s, time.Local)
}

// optional reports whether a nullable field holds a value. Older files
// carry the literal "null" for missing values.
func optional(s string) bool {
	return s != "" && s != "null"
}
