package conffile

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// stagingSuffix is appended to the config path to form the staging file
// written during a save.
const stagingSuffix = ".tmp"

// serialize writes the document text to w in section and entry order.
// The implicit first section has no header line. Comments are stored
// verbatim with their delimiter and whitespace, so every line is plain
// concatenation.
func serialize(doc *document, w io.Writer) error {
	bw := bufio.NewWriter(w)

	for i, sec := range doc.sections {
		if i > 0 {
			if _, err := fmt.Fprintf(bw, "[%s]%s\n", sec.Name, sec.Comment); err != nil {
				return err
			}
		}
		for _, e := range sec.Entries {
			var err error
			if e.Name != "" {
				_, err = fmt.Fprintf(bw, "%s=%s%s\n", e.Name, e.Value, e.Comment)
			} else {
				_, err = fmt.Fprintf(bw, "%s%s\n", e.Value, e.Comment)
			}
			if err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// writeDocument persists doc at path. The full document is written and
// synced to the staging file first; the original is only touched by the
// final rename, which replaces it in one step. Any failure before that
// removes the staging file and leaves the original as it was.
func writeDocument(doc *document, path, stagingPath string) error {
	f, err := os.OpenFile(stagingPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("create staging file: %w", err)
	}

	success := false
	defer func() {
		if !success {
			_ = f.Close()
			_ = os.Remove(stagingPath)
		}
	}()

	if err := serialize(doc, f); err != nil {
		return fmt.Errorf("write staging file: %w", err)
	}

	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync staging file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close staging file: %w", err)
	}

	if err := os.Rename(stagingPath, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}

	success = true
	return nil
}
