// Package conffile loads, edits and writes back line-oriented
// configuration files without losing their formatting.
//
// A config file is a sequence of sections ([name] header lines) holding
// name=value entries. Comments, blank lines, malformed lines and the
// order of everything are preserved: parsing a file and writing it
// straight back reproduces it byte for byte. Saves go through a staging
// file that replaces the original in a single rename, so a failed save
// never corrupts the stored config.
//
// A File is owned by one caller for its whole lifetime and is not safe
// for concurrent use.
package conffile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/drivekit-tools/cli/internal/log"
)

// ErrClosed is returned when a File is used after Close.
var ErrClosed = errors.New("conffile: file already closed")

// File is an open handle on a configuration file. Mutations happen in
// memory and are flushed on Close, and only if anything changed.
type File struct {
	doc         *document
	path        string
	stagingPath string
	dirty       bool
	closed      bool
}

// Open reads and parses the configuration file at path. It fails if the
// file cannot be opened for reading; a file full of malformed lines is
// not an error.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = f.Close() }()

	doc, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	log.Debug("conffile: parsed %s (%d sections)", path, len(doc.sections))

	return &File{
		doc:         doc,
		path:        path,
		stagingPath: path + stagingSuffix,
	}, nil
}

// Create is Open, except a missing file is first created empty.
func Create(path string) (*File, error) {
	cf, err := Open(path)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return cf, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("create config: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("create config: %w", err)
	}

	return Open(path)
}

// Get returns the value of entry in section, or false if either does
// not exist. The empty section name addresses the implicit unnamed
// section before the first header. Lookups are case-sensitive and never
// mutate the file.
func (cf *File) Get(section, entry string) (string, bool) {
	if cf.closed {
		return "", false
	}
	e := cf.doc.findEntry(section, entry, false)
	if e == nil {
		return "", false
	}
	return e.Value, true
}

// Set replaces the value of entry in section, creating the section and
// the entry as needed, and marks the file dirty. A created section is
// appended after all existing sections; a created entry goes directly
// after the section's last named entry.
func (cf *File) Set(section, entry, value string) error {
	if cf.closed {
		return ErrClosed
	}
	if entry == "" {
		return errors.New("conffile: empty entry name")
	}

	e := cf.doc.findEntry(section, entry, true)
	e.Value = value
	cf.dirty = true
	return nil
}

// Close flushes the file if it is dirty and invalidates the handle.
// The in-memory document is released either way; a flush failure leaves
// the stored file as it was before and is returned to the caller.
func (cf *File) Close() error {
	if cf.closed {
		return ErrClosed
	}
	cf.closed = true

	var err error
	if cf.dirty {
		err = writeDocument(cf.doc, cf.path, cf.stagingPath)
		if err == nil {
			log.Debug("conffile: wrote %s", cf.path)
		} else {
			log.Error("conffile: write %s: %v", cf.path, err)
		}
	}

	cf.doc = nil
	return err
}

// Dirty reports whether the in-memory document has diverged from the
// stored file.
func (cf *File) Dirty() bool {
	return cf.dirty
}

// Path returns the path of the stored configuration file.
func (cf *File) Path() string {
	return cf.path
}

// SectionNames returns the section names in document order. The first
// element is always "" for the implicit unnamed section.
func (cf *File) SectionNames() []string {
	if cf.closed {
		return nil
	}
	names := make([]string, 0, len(cf.doc.sections))
	for _, s := range cf.doc.sections {
		names = append(names, s.Name)
	}
	return names
}

// Entries returns copies of the entries of the named section in
// document order, raw lines included, or false if the section does not
// exist.
func (cf *File) Entries(section string) ([]Entry, bool) {
	if cf.closed {
		return nil, false
	}
	sec := cf.doc.findSection(section)
	if sec == nil {
		return nil, false
	}
	entries := make([]Entry, 0, len(sec.Entries))
	for _, e := range sec.Entries {
		entries = append(entries, *e)
	}
	return entries, true
}

// Text returns the document serialized exactly as Close would write it.
func (cf *File) Text() string {
	if cf.closed {
		return ""
	}
	var sb strings.Builder
	_ = serialize(cf.doc, &sb)
	return sb.String()
}
