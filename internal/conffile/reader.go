package conffile

import (
	"bufio"
	"io"
)

// lineReader yields one logical line at a time from an underlying stream.
// Lines may be arbitrarily long; the buffered reader grows as needed, so
// there is no fixed maximum line length.
type lineReader struct {
	br *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{br: bufio.NewReader(r)}
}

// ReadLine returns the next line without its terminating newline.
// A final line that lacks a trailing newline is still returned as a
// normal line; the following call reports io.EOF. Any other error is a
// stream error and the line content is discarded.
func (lr *lineReader) ReadLine() (string, error) {
	line, err := lr.br.ReadString('\n')
	if err == io.EOF {
		if len(line) > 0 {
			return line, nil
		}
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	return line[:len(line)-1], nil
}
