//go:build linux || darwin || freebsd || netbsd || openbsd

package render

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTYKeysPoll(t *testing.T) {
	rd, wr, err := os.Pipe()
	require.NoError(t, err)
	defer rd.Close()
	defer wr.Close()

	keys := NewTTYKeys(int(rd.Fd()))

	_, ok := keys.Poll()
	assert.False(t, ok, "nothing written yet")

	_, err = wr.Write([]byte("mq"))
	require.NoError(t, err)

	k, ok := keys.Poll()
	require.True(t, ok)
	assert.Equal(t, "m", k)

	k, ok = keys.Poll()
	require.True(t, ok)
	assert.Equal(t, "q", k)

	_, ok = keys.Poll()
	assert.False(t, ok)
}
