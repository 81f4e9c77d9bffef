package conffile

import (
	"fmt"
	"io"
)

// parse consumes the stream to the end and builds the document. Lines
// that look like nothing in particular still become entries: malformed
// input is preserved, never rejected. Only a stream-level read error
// fails the parse, and then the partial document is discarded.
func parse(r io.Reader) (*document, error) {
	doc := newDocument()
	current := doc.sections[0]

	lr := newLineReader(r)
	for {
		raw, err := lr.ReadLine()
		if err == io.EOF {
			return doc, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read line: %w", err)
		}

		line := classify(raw)
		switch line.kind {
		case lineSection:
			current = doc.appendSection(line.name, line.comment)
		default:
			// Entry, raw and comment-only lines all belong to the
			// current section. A comment-only line keeps the whole
			// line in its comment field.
			current.appendEntry(line.name, line.value, line.comment)
		}
	}
}
