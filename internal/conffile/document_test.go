package conffile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindEntry_Lookup(t *testing.T) {
	doc := newDocument()
	doc.sections[0].appendEntry("global", "1", "")
	sec := doc.appendSection("drives", "")
	sec.appendEntry("first", "a", "")
	sec.appendEntry("first", "b", "") // duplicate, must not shadow the first
	sec.appendEntry("", "rawline", "")

	e := doc.findEntry("", "global", false)
	require.NotNil(t, e)
	require.Equal(t, "1", e.Value)

	e = doc.findEntry("drives", "first", false)
	require.NotNil(t, e)
	require.Equal(t, "a", e.Value, "lookup must return the first match in order")

	require.Nil(t, doc.findEntry("drives", "missing", false))
	require.Nil(t, doc.findEntry("missing", "first", false))

	// Case-sensitive on both levels.
	require.Nil(t, doc.findEntry("Drives", "first", false))
	require.Nil(t, doc.findEntry("drives", "First", false))

	// Raw entries are never lookup targets.
	require.Nil(t, doc.findEntry("drives", "", false))
	require.Nil(t, doc.findEntry("drives", "rawline", false))
}

func TestFindEntry_CreateSection(t *testing.T) {
	doc := newDocument()
	doc.appendSection("a", "")
	doc.appendSection("b", "")

	e := doc.findEntry("c", "key", true)
	require.NotNil(t, e)

	// New section goes after all existing ones.
	require.Len(t, doc.sections, 4)
	require.Equal(t, "c", doc.sections[3].Name)
	require.Same(t, e, doc.sections[3].Entries[0])
}

func TestFindEntry_InsertAfterLastNamed(t *testing.T) {
	doc := newDocument()
	sec := doc.appendSection("drives", "")
	sec.appendEntry("", "# block comment", "")
	sec.appendEntry("one", "1", "")
	sec.appendEntry("two", "2", "")
	sec.appendEntry("", "", "# trailing comment for the next header")

	e := doc.findEntry("drives", "three", true)
	require.NotNil(t, e)

	var names []string
	for _, entry := range sec.Entries {
		names = append(names, entry.Name)
	}
	// The new entry lands after "two", not after the trailing raw line.
	require.Equal(t, []string{"", "one", "two", "three", ""}, names)
}

func TestFindEntry_InsertAtStartWhenNoNamed(t *testing.T) {
	doc := newDocument()
	sec := doc.appendSection("drives", "")
	sec.appendEntry("", "rawonly", "")

	e := doc.findEntry("drives", "key", true)
	require.NotNil(t, e)
	require.Same(t, e, sec.Entries[0])
	require.Equal(t, "rawonly", sec.Entries[1].Value)
}

func TestFindEntry_EmptyNameNeverCreated(t *testing.T) {
	doc := newDocument()
	require.Nil(t, doc.findEntry("", "", true))
	require.Empty(t, doc.sections[0].Entries)
}

func TestFindSection_ImplicitIsNotNamed(t *testing.T) {
	doc := newDocument()
	doc.appendSection("", "") // a literal [] header

	// "" addresses the implicit first section, never the [] one.
	require.Same(t, doc.sections[0], doc.findSection(""))
}
