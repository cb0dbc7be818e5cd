package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipebook.yaml")
	logPath := filepath.Join(t.TempDir(), "recipebook.log")
	body = "app:\n  log_output: " + logPath + "\nconsole:\n  pause: false\n" + body
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRootCommandRunsSession(t *testing.T) {
	input := strings.NewReader(strings.Join([]string{
		"1", "Banana Bread", "1", "Banana", "3", "pieces", "105", "Fruit", "1", "Bake",
		"1", "Apple Pie", "1", "Apple", "2", "pieces", "95", "Fruit", "1", "Bake",
		"3", "Apple Pie",
		"5",
	}, "\n") + "\n")
	out := &bytes.Buffer{}

	cmd := NewRootCommand(input, out)
	cmd.SetArgs([]string{"--config", testConfig(t, ""), "--no-color"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Warning: Recipe 'Banana Bread' exceeds 300 calories!")
	assert.NotContains(t, text, "Warning: Recipe 'Apple Pie'")
	assert.Contains(t, text, "- Apple Pie\n- Banana Bread\n")
	assert.Contains(t, text, "Recipe: Apple Pie")
	assert.True(t, strings.HasSuffix(text, "Exiting...\n"))
}

func TestRootCommandCancelledContextIsClean(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := NewRootCommand(strings.NewReader(""), &bytes.Buffer{})
	cmd.SetArgs([]string{"--config", testConfig(t, "")})

	assert.NoError(t, cmd.ExecuteContext(ctx))
}

func TestRootCommandRejectsBadConfig(t *testing.T) {
	cmd := NewRootCommand(strings.NewReader(""), &bytes.Buffer{})
	cmd.SetArgs([]string{"--config", testConfig(t, "recipes:\n  calorie_threshold: 0\n")})

	err := cmd.ExecuteContext(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize")
}

func TestRootCommandRejectsArgs(t *testing.T) {
	cmd := NewRootCommand(strings.NewReader(""), &bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	assert.Error(t, cmd.ExecuteContext(context.Background()))
}
