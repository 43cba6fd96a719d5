package console

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopak/sift/internal/assets"
	"github.com/gopak/sift/internal/config"
)

func TestRenderColors_ListsEveryColor(t *testing.T) {
	out := RenderColors()
	for _, name := range []string{"black", "red", "magenta", "bright_white"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "SAMPLE")
}

func TestRenderConfig(t *testing.T) {
	yes := true
	cfg := config.Config{IgnoreCase: &yes, Color: "red", RegexFlag: config.RegexFlagAdvisory}
	out := RenderConfig(cfg, []string{"/etc/sift/a.yaml"})
	assert.Contains(t, out, "ignore_case")
	assert.Contains(t, out, "true")
	assert.Contains(t, out, "advisory")
	assert.Contains(t, out, "/etc/sift/a.yaml")

	out = RenderConfig(config.Config{}, nil)
	assert.Contains(t, out, "embedded defaults only")
}

func TestWriteDefaultConfig_Fresh(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sift")
	p, err := WriteDefaultConfig(dir, false, func(string) (bool, error) {
		t.Fatalf("should not prompt for a new file")
		return false, nil
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, assets.ConfigFileName), p)
}

func TestWriteDefaultConfig_Existing(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, assets.ConfigFileName)
	require.NoError(t, os.WriteFile(p, []byte("color: red\n"), 0o644))

	var asked string
	got, err := WriteDefaultConfig(dir, false, func(msg string) (bool, error) {
		asked = msg
		return false, nil
	})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.True(t, strings.Contains(asked, p))
	b, _ := os.ReadFile(p)
	assert.Equal(t, "color: red\n", string(b))

	got, err = WriteDefaultConfig(dir, false, func(string) (bool, error) { return true, nil })
	require.NoError(t, err)
	assert.Equal(t, p, got)
	b, _ = os.ReadFile(p)
	assert.Equal(t, string(assets.DefaultConfig()), string(b))
}

func TestWriteDefaultConfig_YesSkipsPrompt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, assets.ConfigFileName), []byte("x"), 0o644))
	_, err := WriteDefaultConfig(dir, true, nil)
	require.NoError(t, err)
}

func TestWriteDefaultConfig_PromptError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, assets.ConfigFileName), []byte("x"), 0o644))
	boom := errors.New("interrupted")
	_, err := WriteDefaultConfig(dir, false, func(string) (bool, error) { return false, boom })
	assert.ErrorIs(t, err, boom)
}
