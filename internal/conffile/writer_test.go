package conffile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerialize(t *testing.T) {
	doc := newDocument()
	doc.sections[0].appendEntry("", "", "# header comment")
	doc.sections[0].appendEntry("global", "yes", "")

	sec := doc.appendSection("drives", " # bus 0")
	sec.appendEntry("device", "8", " #primary")
	sec.appendEntry("", "justtext", "")
	sec.appendEntry("", "", "")

	var sb strings.Builder
	require.NoError(t, serialize(doc, &sb))

	want := strings.Join([]string{
		"# header comment",
		"global=yes",
		"[drives] # bus 0",
		"device=8 #primary",
		"justtext",
		"",
	}, "\n") + "\n"
	require.Equal(t, want, sb.String())
}

func TestWriteDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings")
	staging := path + stagingSuffix

	require.NoError(t, os.WriteFile(path, []byte("old=1\n"), 0600))

	doc := newDocument()
	doc.sections[0].appendEntry("new", "2", "")

	require.NoError(t, writeDocument(doc, path, staging))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new=2\n", string(content))

	// Staging file is gone after a successful rename.
	_, err = os.Stat(staging)
	require.True(t, os.IsNotExist(err))
}

func TestWriteDocument_FailureLeavesOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings")
	require.NoError(t, os.WriteFile(path, []byte("keep=me\n"), 0600))

	// Point the staging file at a directory that does not exist so its
	// creation fails before anything is written.
	staging := filepath.Join(dir, "missing", "settings.tmp")

	doc := newDocument()
	doc.sections[0].appendEntry("new", "2", "")

	require.Error(t, writeDocument(doc, path, staging))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "keep=me\n", string(content))
}
