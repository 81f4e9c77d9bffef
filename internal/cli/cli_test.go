package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/drivekit-tools/cli/internal/conffile"
	"github.com/drivekit-tools/cli/internal/domain"
)

// testConfig writes content to a fresh settings file and returns options
// pointing at it. History writes are steered into the temp dir too.
func testConfig(t *testing.T, content string) (*GlobalOptions, string) {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	path := filepath.Join(tmp, ".dkrc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return &GlobalOptions{ConfigPath: path}, path
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv("DKRC", "/env/path")
		opts := &GlobalOptions{ConfigPath: "/flag/path"}
		path, err := opts.ResolveConfigPath()
		require.NoError(t, err)
		require.Equal(t, "/flag/path", path)
	})

	t.Run("env second", func(t *testing.T) {
		t.Setenv("DKRC", "/env/path")
		path, err := (&GlobalOptions{}).ResolveConfigPath()
		require.NoError(t, err)
		require.Equal(t, "/env/path", path)
	})

	t.Run("default last", func(t *testing.T) {
		t.Setenv("DKRC", "")
		path, err := (&GlobalOptions{}).ResolveConfigPath()
		require.NoError(t, err)
		require.Equal(t, filepath.Join(os.Getenv("HOME"), ".dkrc"), path)
	})
}

func TestSplitTarget(t *testing.T) {
	section, entry := splitTarget([]string{"device"})
	require.Equal(t, "", section)
	require.Equal(t, "device", entry)

	section, entry = splitTarget([]string{"drives", "device"})
	require.Equal(t, "drives", section)
	require.Equal(t, "device", entry)
}

func TestDisplaySection(t *testing.T) {
	require.Equal(t, "(default)", displaySection(""))
	require.Equal(t, "daemon", displaySection("daemon"))
}

func TestRunGet(t *testing.T) {
	opts, _ := testConfig(t, "global=yes\n[drives]\ndevice=8\n")

	require.NoError(t, runGet(opts, []string{"global"}))
	require.NoError(t, runGet(opts, []string{"drives", "device"}))

	err := runGet(opts, []string{"drives", "missing"})
	require.Error(t, err)
	require.Contains(t, err.Error(), `no entry "missing"`)
}

func TestRunGet_MissingFile(t *testing.T) {
	opts := &GlobalOptions{ConfigPath: filepath.Join(t.TempDir(), "nope")}
	require.Error(t, runGet(opts, []string{"x"}))
}

func TestRunSet(t *testing.T) {
	opts, path := testConfig(t, "# keep me\nglobal=yes #note\n")

	require.NoError(t, runSet(opts, []string{"global", "no"}))
	require.NoError(t, runSet(opts, []string{"drives", "device", "8"}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "# keep me\nglobal=no #note\n[drives]\ndevice=8\n", string(content))
}

func TestRunSet_CreatesFile(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	path := filepath.Join(tmp, ".dkrc")
	opts := &GlobalOptions{ConfigPath: path}

	require.NoError(t, runSet(opts, []string{"daemon", "poll_interval_ms", "100"}))

	cf, err := conffile.Open(path)
	require.NoError(t, err)
	defer func() { _ = cf.Close() }()

	value, ok := cf.Get("daemon", "poll_interval_ms")
	require.True(t, ok)
	require.Equal(t, "100", value)
}

func TestHistoryEnabled(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{name: "absent", content: "", want: true},
		{name: "true", content: "history=true\n", want: true},
		{name: "false", content: "history=false\n", want: false},
		{name: "zero", content: "history=0\n", want: false},
		{name: "off", content: "history=off\n", want: false},
		{name: "no", content: "history=no\n", want: false},
		{name: "anything else", content: "history=maybe\n", want: true},
		{name: "in a section does not count", content: "[daemon]\nhistory=false\n", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, path := testConfig(t, tt.content)
			cf, err := conffile.Open(path)
			require.NoError(t, err)
			defer func() { _ = cf.Close() }()
			require.Equal(t, tt.want, historyEnabled(cf))
		})
	}
}

func TestRunInit(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ".dkrc")
	opts := &GlobalOptions{ConfigPath: path}

	require.NoError(t, runInit(opts, false))

	cf, err := conffile.Open(path)
	require.NoError(t, err)
	defer func() { _ = cf.Close() }()

	// Every known key is present with its default.
	for _, key := range domain.SettingKeys {
		value, ok := cf.Get(key.Section, key.Name)
		require.True(t, ok, "key %q/%q", key.Section, key.Name)
		require.Equal(t, key.Default, value)
	}
}

func TestRunInit_RefusesOverwrite(t *testing.T) {
	opts, path := testConfig(t, "precious=1\n")

	err := runInit(opts, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")

	content, rerr := os.ReadFile(path)
	require.NoError(t, rerr)
	require.Equal(t, "precious=1\n", string(content))

	require.NoError(t, runInit(opts, true))
	content, rerr = os.ReadFile(path)
	require.NoError(t, rerr)
	require.NotEqual(t, "precious=1\n", string(content))
}

func TestDefaultsTemplate_ParsesClean(t *testing.T) {
	content := defaultsTemplate()

	path := filepath.Join(t.TempDir(), ".dkrc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cf, err := conffile.Open(path)
	require.NoError(t, err)
	defer func() { _ = cf.Close() }()

	// The rendered template round-trips byte for byte.
	require.Equal(t, content, cf.Text())
	require.Equal(t, []string{"", "daemon"}, cf.SectionNames())
}

func TestFormatChange(t *testing.T) {
	ts := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)

	c := domain.Change{
		Section:   "daemon",
		Entry:     "poll_interval_ms",
		OldValue:  "250",
		HadOld:    true,
		NewValue:  "100",
		Source:    domain.SourceCLI,
		Timestamp: ts,
	}
	got := formatChange(c)
	require.Contains(t, got, "daemon/poll_interval_ms")
	require.Contains(t, got, `"250" -> "100"`)
	require.Contains(t, got, "(cli)")

	c.Section = ""
	c.Entry = "log_level"
	c.HadOld = false
	c.NewValue = "debug"
	c.Source = domain.SourceEditor
	got = formatChange(c)
	require.Contains(t, got, "log_level")
	require.NotContains(t, got, "/log_level")
	require.Contains(t, got, `created as "debug"`)
	require.Contains(t, got, "(editor)")
}

func TestRunList(t *testing.T) {
	opts, _ := testConfig(t, "# comment\nglobal=yes\n[drives]\ndevice=8\nweird line\n[empty]\n")

	require.NoError(t, runList(opts, &ListOptions{}))
	require.NoError(t, runList(opts, &ListOptions{Raw: true}))
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand("1.2.3")

	require.Equal(t, "dk", cmd.Use)
	require.Equal(t, "1.2.3", cmd.Version)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"get", "set", "list", "sections", "init", "history", "edit", "path"} {
		require.Contains(t, names, want)
	}
}
