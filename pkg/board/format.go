package board

import (
	"io"
	"strings"
)

// FormatRow renders a row as a sequence literal, e.g. ['F', '10♠', 'Q♠'].
// Cells are single-quoted unless they contain a single quote and no double
// quote, in which case double quotes are used.
func FormatRow(r Row) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, cell := range r {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeQuoted(&sb, cell)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Write prints b to w, one row literal per line.
func Write(w io.Writer, b Board) error {
	for _, r := range b {
		if _, err := io.WriteString(w, FormatRow(r)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeQuoted(sb *strings.Builder, s string) {
	quote := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}
	sb.WriteByte(quote)
	for _, r := range s {
		switch {
		case r == '\\':
			sb.WriteString(`\\`)
		case r == rune(quote):
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte(quote)
}
