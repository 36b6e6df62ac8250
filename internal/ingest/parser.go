package ingest

import "strings"

// ParseLine tokenizes one raw CSV line into field values. Commas inside
// double-quoted spans do not split; a quote immediately preceded by a
// backslash is a literal character and does not toggle quoting. This is the
// upload format's own escaping convention, not RFC 4180; doubled quotes are
// not an escape here.
//
// Unbalanced quotes are not an error at this layer; the resulting field count
// is checked against the header downstream. An empty line yields a single
// empty field rather than no fields, so it surfaces as a count mismatch
// instead of vanishing.
func ParseLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"' && (i == 0 || line[i-1] != '\\'):
			inQuotes = !inQuotes
			cur.WriteByte(c)
		case c == ',' && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	fields = append(fields, cur.String())

	for i, f := range fields {
		fields[i] = stripSurroundingQuotes(f)
	}
	return fields
}

// stripSurroundingQuotes removes one layer of quotes when a field both starts
// and ends with one.
func stripSurroundingQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
