package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("SECTIONPAD_CONFIG", "")
	for _, k := range []string{"SECTIONPAD_UI_THEME", "SECTIONPAD_UI_GLYPHS", "SECTIONPAD_UI_MOUSE", "SECTIONPAD_UI_TOAST_DURATION", "SECTIONPAD_DOCUMENT_SEED", "SECTIONPAD_DEBUG_LOG_PATH"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	c, err := Load(New())
	require.NoError(t, err)
	require.Equal(t, "auto", c.UI.Theme)
	require.Equal(t, "unicode", c.UI.Glyphs)
	require.True(t, c.UI.Mouse)
	require.Equal(t, 3*time.Second, c.UI.ToastDuration)
	require.Empty(t, c.Document.Seed)
	require.Empty(t, c.Debug.LogPath)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, "sectionpad")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(`
[ui]
theme = "Dark"
glyphs = "ascii"
mouse = false
toast_duration = "5s"

[document]
seed = "/tmp/page.yaml"
`), 0o644))

	c, err := Load(New())
	require.NoError(t, err)
	require.Equal(t, "dark", c.UI.Theme)
	require.Equal(t, "ascii", c.UI.Glyphs)
	require.False(t, c.UI.Mouse)
	require.Equal(t, 5*time.Second, c.UI.ToastDuration)
	require.Equal(t, "/tmp/page.yaml", c.Document.Seed)

	t.Setenv("SECTIONPAD_UI_THEME", "light")
	c, err = Load(New())
	require.NoError(t, err)
	require.Equal(t, "light", c.UI.Theme)
}

func TestLoad_ExplicitConfigPathMissingIsError(t *testing.T) {
	isolate(t)
	t.Setenv("SECTIONPAD_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))
	_, err := Load(New())
	require.ErrorContains(t, err, "read config")
}

func TestValidate(t *testing.T) {
	ok := Config{UI: UIConfig{Theme: "auto", Glyphs: "unicode", ToastDuration: time.Second}}
	require.NoError(t, ok.Validate())

	bad := ok
	bad.UI.Theme = "sepia"
	require.ErrorContains(t, bad.Validate(), "ui.theme")

	bad = ok
	bad.UI.Glyphs = "emoji"
	require.ErrorContains(t, bad.Validate(), "ui.glyphs")

	bad = ok
	bad.UI.ToastDuration = 0
	require.ErrorContains(t, bad.Validate(), "toast_duration")
}
