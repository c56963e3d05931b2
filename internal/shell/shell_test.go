package shell

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRun_Output(t *testing.T) {
	requireSh(t)

	out, err := NewExec(t.TempDir(), nil).Run(context.Background(), "sh", "-c", "printf '  v1.2.3\\n'")
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", out)
}

func TestExecRun_Dir(t *testing.T) {
	requireSh(t)

	dir := t.TempDir()
	out, err := NewExec(dir, nil).Run(context.Background(), "sh", "-c", "pwd -P")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestExecRun_ErrorCarriesStderr(t *testing.T) {
	requireSh(t)

	_, err := NewExec("", nil).Run(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Contains(t, err.Error(), "sh -c")
}

func TestExecRun_MissingBinary(t *testing.T) {
	_, err := NewExec("", nil).Run(context.Background(), "bumptag-no-such-binary")
	assert.Error(t, err)
}

func TestExecRun_Canceled(t *testing.T) {
	requireSh(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewExec("", nil).Run(ctx, "sh", "-c", "sleep 5")
	assert.Error(t, err)
}
