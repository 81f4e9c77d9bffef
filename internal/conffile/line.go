package conffile

import "strings"

const commentDelim = '#'

// lineKind says what a physical line turned out to be.
type lineKind int

const (
	lineComment lineKind = iota // whole line is a comment
	lineSection                 // [name] header
	lineEntry                   // name=value
	lineRaw                     // anything else, preserved verbatim
)

// parsedLine is the outcome of classifying one logical line. The comment
// field holds the trailing comment verbatim, delimiter and leading
// whitespace included, so writing a line back is plain concatenation.
type parsedLine struct {
	kind    lineKind
	name    string
	value   string
	comment string
}

// classify splits a logical line into content and comment and decides
// what the content is. Names and values are kept byte-for-byte: no
// whitespace is trimmed around the '=' so a round trip reproduces the
// original line.
func classify(raw string) parsedLine {
	if strings.HasPrefix(raw, "#") {
		return parsedLine{kind: lineComment, comment: raw}
	}

	content, comment := splitComment(raw)

	if strings.HasPrefix(content, "[") {
		name := content[1:]
		// A header without a closing bracket is tolerated: the rest of
		// the line becomes the name. The bracket is searched from the
		// right so a ']' inside the name survives.
		if j := strings.LastIndexByte(name, ']'); j >= 0 {
			name = name[:j]
		}
		return parsedLine{kind: lineSection, name: name, comment: comment}
	}

	// A line whose '=' comes first has no name to look up or rewrite, so
	// it is kept verbatim like any other unrecognized line.
	if i := strings.IndexByte(content, '='); i > 0 {
		return parsedLine{kind: lineEntry, name: content[:i], value: content[i+1:], comment: comment}
	}

	return parsedLine{kind: lineRaw, value: content, comment: comment}
}

// splitComment finds the comment boundary of a non-comment line. The
// comment starts at the whitespace run immediately before the first '#'
// and runs to the end of the line, untouched. Trailing whitespace (and a
// CR from Windows line endings) with no comment after it is dropped.
func splitComment(raw string) (content, comment string) {
	end := strings.IndexByte(raw, commentDelim)
	if end < 0 {
		return strings.TrimRight(raw, " \t\r\n"), ""
	}

	start := end
	for start > 0 && isLineSpace(raw[start-1]) {
		start--
	}
	return raw[:start], raw[start:]
}

func isLineSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
