package clipboard_test

import (
	"os/exec"
	"testing"

	"github.com/fwojciec/themevars/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_Copy(t *testing.T) {
	t.Parallel()

	cb, err := clipboard.New()
	if err != nil {
		require.ErrorIs(t, err, clipboard.ErrUnavailable)
		t.Skip("no clipboard command available, skipping clipboard test")
	}

	// Only pbcopy/pbpaste can be verified without a display server.
	if _, err := exec.LookPath("pbpaste"); err != nil {
		t.Skip("pbpaste not available, cannot verify clipboard content")
	}

	testContent := ".theme-default {\n}\n"
	require.NoError(t, cb.Copy(testContent))

	out, err := exec.Command("pbpaste").Output()
	require.NoError(t, err)
	assert.Equal(t, testContent, string(out))
}
