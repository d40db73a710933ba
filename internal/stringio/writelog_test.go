package stringio

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLog_JoinPreservesOrder(t *testing.T) {
	w := NewWriteLog("out")

	_, err := w.Write([]byte("a\n"))
	require.NoError(t, err)
	_, err = w.Write([]byte("b\n"))
	require.NoError(t, err)

	assert.Equal(t, []byte("a\nb\n"), w.Join())
	assert.Equal(t, 2, w.Units())
	assert.Equal(t, 4, w.Len())
}

func TestWriteLog_UnitPerCall(t *testing.T) {
	w := NewWriteLog("out")

	fmt.Fprintf(w, "%d", 42)
	require.NoError(t, w.WriteByte('\n'))
	_, err := w.WriteString("done\n")
	require.NoError(t, err)

	assert.Equal(t, 3, w.Units())
	assert.Equal(t, "42\ndone\n", string(w.Join()))
}

func TestWriteLog_WriteCopiesInput(t *testing.T) {
	w := NewWriteLog("out")
	buf := []byte("abc")

	_, err := w.Write(buf)
	require.NoError(t, err)
	buf[0] = 'z'

	assert.Equal(t, "abc", string(w.Join()))
}

func TestWriteLog_JoinDoesNotConsume(t *testing.T) {
	w := NewWriteLog("out")
	w.WriteString("x")

	first := w.Join()
	second := w.Join()
	assert.Equal(t, first, second)
	assert.Equal(t, 1, w.Units())
}

func TestWriteLog_Rewind(t *testing.T) {
	w := NewWriteLog("out")
	w.WriteString("old")
	w.Rewind()
	w.WriteString("new")

	assert.Equal(t, "new", string(w.Join()))
}

func TestWriteLog_Close(t *testing.T) {
	t.Run("releases units by default", func(t *testing.T) {
		w := NewWriteLog("out")
		w.WriteString("gone")

		require.NoError(t, w.Close())
		assert.Empty(t, w.Join())
		assert.Zero(t, w.Units())
	})

	t.Run("keep output survives close", func(t *testing.T) {
		w := NewWriteLog("out")
		w.SetKeepOutput(true)
		w.WriteString("kept\n")

		require.NoError(t, w.Close())
		assert.Equal(t, "kept\n", string(w.Join()))
	})

	t.Run("second close", func(t *testing.T) {
		w := NewWriteLog("out")
		w.SetKeepOutput(true)
		w.WriteString("kept")
		require.NoError(t, w.Close())

		assert.ErrorIs(t, w.Close(), ErrClosed)
		assert.Equal(t, "kept", string(w.Join()))
	})

	t.Run("writes after close fail", func(t *testing.T) {
		w := NewWriteLog("out")
		require.NoError(t, w.Close())

		_, err := w.Write([]byte("x"))
		assert.ErrorIs(t, err, ErrClosed)
		assert.ErrorIs(t, w.WriteByte('x'), ErrClosed)
	})
}

func TestWriteLog_NotReadable(t *testing.T) {
	w := NewWriteLog("out")

	_, err := w.Read(make([]byte, 1))
	assert.ErrorIs(t, err, ErrWriteOnly)

	_, err = w.Seek(0, io.SeekStart)
	assert.ErrorIs(t, err, ErrNotSeekable)
}
