package clipboard_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ctzreddy/llmjudge/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_Copy(t *testing.T) {
	t.Parallel()

	// Pipe through cat into a file to verify content delivery without a
	// real clipboard.
	out := filepath.Join(t.TempDir(), "out.txt")
	c := clipboard.NewCommand("sh", "-c", "cat > "+out)

	require.NoError(t, c.Copy("verdict feedback"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "verdict feedback", string(data))
}

func TestCommand_Copy_MissingCommand(t *testing.T) {
	t.Parallel()

	c := clipboard.NewCommand("definitely-not-a-real-command")
	assert.Error(t, c.Copy("content"))
}
