package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetPassword_ReadsWithoutEcho(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }

	var buf bytes.Buffer
	pw, err := GetPassword(&buf)
	require.NoError(t, err)
	require.Equal(t, []byte("s3cret"), pw)
	require.Contains(t, buf.String(), "Enter password:")
}

func TestGetPassword_Error(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	boom := errors.New("no tty")
	readPassword = func(fd int) ([]byte, error) { return nil, boom }

	var buf bytes.Buffer
	_, err := GetPassword(&buf)
	require.ErrorIs(t, err, boom)
}
