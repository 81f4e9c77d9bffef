package conffile

// Entry is one line of a configuration document. An Entry with an empty
// Name has no key=value form on its line: it is a raw, malformed,
// comment-only, or blank line, kept only so the document round-trips
// byte for byte. Such entries are never lookup targets.
type Entry struct {
	Name    string
	Value   string
	Comment string
}

// Section is a named group of entries, corresponding to a [name] header
// line. The first section of every document is the implicit unnamed
// group holding the lines before any header.
type Section struct {
	Name    string
	Comment string
	Entries []*Entry
}

// document is the in-memory form of one configuration file. Section and
// entry order is insertion order and is preserved across a read/write
// cycle.
type document struct {
	sections []*Section
}

// newDocument returns a document holding only the implicit unnamed
// section. It exists even for an empty file.
func newDocument() *document {
	return &document{sections: []*Section{{}}}
}

func (d *document) appendSection(name, comment string) *Section {
	s := &Section{Name: name, Comment: comment}
	d.sections = append(d.sections, s)
	return s
}

func (s *Section) appendEntry(name, value, comment string) *Entry {
	e := &Entry{Name: name, Value: value, Comment: comment}
	s.Entries = append(s.Entries, e)
	return e
}

// findSection resolves a section name to the first match in document
// order. The empty name addresses the implicit first section, so a
// literal "[]" header (a named section with an empty name) is never a
// lookup target.
func (d *document) findSection(name string) *Section {
	if name == "" {
		return d.sections[0]
	}
	for _, s := range d.sections[1:] {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// findEntry looks up the first entry named entry in the first section
// named section. With create set, a missing section is appended after
// all existing sections and a missing entry is inserted directly after
// the section's last named entry. Raw lines trailing that entry stay
// behind the insertion point: they usually comment the next header, and
// appending after them would move them into the wrong group.
func (d *document) findEntry(section, entry string, create bool) *Entry {
	if entry == "" {
		return nil
	}

	sec := d.findSection(section)
	if sec == nil {
		if !create {
			return nil
		}
		sec = d.appendSection(section, "")
	}

	insertAt := 0
	for i, e := range sec.Entries {
		if e.Name == "" {
			continue
		}
		if e.Name == entry {
			return e
		}
		insertAt = i + 1
	}

	if !create {
		return nil
	}

	e := &Entry{Name: entry}
	sec.Entries = append(sec.Entries, nil)
	copy(sec.Entries[insertAt+1:], sec.Entries[insertAt:])
	sec.Entries[insertAt] = e
	return e
}
