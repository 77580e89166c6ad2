// Package sqlparser provides statement segmentation, text
// normalization, dialect detection, and the narrow contract for the
// pluggable SQL parsing backend.
package sqlparser

import "strings"

// SingleSQL is one segmented statement with its source position.
// Line and Column are 1-based and point at the first non-blank
// character of the statement.
type SingleSQL struct {
	Text   string
	Line   int
	Column int
}

type span struct {
	start int
	end   int
}

// Split segments raw SQL text into individual statements. A `;`
// inside a string literal, quoted identifier, or comment is not a
// separator. Statement text is emitted verbatim, without the
// terminating semicolon; statements that are empty after trimming are
// skipped.
//
// Split never fails: if the scan ends inside an unterminated literal
// or block comment, the statements scanned before the failed region
// are kept and the failed region degrades to a naive split on every
// semicolon.
func Split(sql string) []SingleSQL {
	spans, failedFrom := scanSpans(sql)
	if failedFrom >= 0 {
		base := failedFrom
		for {
			i := strings.IndexByte(sql[base:], ';')
			if i < 0 {
				spans = append(spans, span{base, len(sql)})
				break
			}
			spans = append(spans, span{base, base + i})
			base += i + 1
		}
	}

	var result []SingleSQL
	for _, sp := range spans {
		text := sql[sp.start:sp.end]
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}
		line, column := positionAt(sql, sp.start+strings.Index(text, trimmed[:1]))
		result = append(result, SingleSQL{
			Text:   text,
			Line:   line,
			Column: column,
		})
	}
	return result
}

// scanSpans walks the input once, tracking quote and comment state,
// and returns the spans between top-level separators. The second
// return value is the start offset of a region the scanner could not
// finish (unterminated quote or block comment), or -1.
func scanSpans(sql string) ([]span, int) {
	var spans []span
	start := 0
	var quote byte
	inLineComment := false
	inBlockComment := false

	for i := 0; i < len(sql); i++ {
		c := sql[i]
		switch {
		case inLineComment:
			if c == '\n' {
				inLineComment = false
			}
		case inBlockComment:
			if c == '*' && i+1 < len(sql) && sql[i+1] == '/' {
				inBlockComment = false
				i++
			}
		case quote != 0:
			if c == '\\' {
				i++ // skip the escaped character
			} else if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"' || c == '`':
			quote = c
		case c == '-' && i+1 < len(sql) && sql[i+1] == '-':
			inLineComment = true
			i++
		case c == '/' && i+1 < len(sql) && sql[i+1] == '*':
			inBlockComment = true
			i++
		case c == ';':
			spans = append(spans, span{start, i})
			start = i + 1
		}
	}

	if quote != 0 || inBlockComment {
		return spans, start
	}
	if start < len(sql) {
		spans = append(spans, span{start, len(sql)})
	}
	return spans, -1
}

// positionAt converts a byte offset into a 1-based line/column pair.
func positionAt(sql string, offset int) (line, column int) {
	line, column = 1, 1
	for i := 0; i < offset && i < len(sql); i++ {
		if sql[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}
