package sqlparser

import "strings"

// Normalize strips comments and collapses whitespace runs to single
// spaces. Textual detectors match against this form. Normalize is
// idempotent.
func Normalize(sql string) string {
	return strings.Join(strings.Fields(stripComments(sql)), " ")
}

// stripComments removes line (`--`) and block (`/* */`) comments,
// leaving quoted text untouched. Each removed comment is replaced by a
// single space so adjacent tokens stay separated.
func stripComments(sql string) string {
	var b strings.Builder
	b.Grow(len(sql))

	var quote byte
	inLineComment := false
	inBlockComment := false

	for i := 0; i < len(sql); i++ {
		c := sql[i]
		switch {
		case inLineComment:
			if c == '\n' {
				inLineComment = false
				b.WriteByte('\n')
			}
		case inBlockComment:
			if c == '*' && i+1 < len(sql) && sql[i+1] == '/' {
				inBlockComment = false
				i++
				b.WriteByte(' ')
			}
		case quote != 0:
			b.WriteByte(c)
			if c == '\\' && i+1 < len(sql) {
				i++
				b.WriteByte(sql[i])
			} else if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"' || c == '`':
			quote = c
			b.WriteByte(c)
		case c == '-' && i+1 < len(sql) && sql[i+1] == '-':
			inLineComment = true
			i++
		case c == '/' && i+1 < len(sql) && sql[i+1] == '*':
			inBlockComment = true
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
