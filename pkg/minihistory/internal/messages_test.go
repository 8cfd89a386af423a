package internal

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizer(t *testing.T) {
	t.Run("it should default to English", func(t *testing.T) {
		l := NewLocalizer("")
		assert.Equal(t, "forward navigation is not implemented", l.Message(MsgForwardNotImplemented))
	})

	t.Run("it should match simplified Chinese regions", func(t *testing.T) {
		l := NewLocalizer("zh-CN")
		assert.Equal(t, "Forward 尚未实现", l.Message(MsgForwardNotImplemented))
	})

	t.Run("it should fall back to English for garbage tags", func(t *testing.T) {
		l := NewLocalizer("not a tag!")
		assert.Equal(t, "en", l.Tag().String())
		assert.Equal(t, "host router slot cannot be observed", l.Message(MsgHostNotPatchable))
	})

	t.Run("it should return the id for unknown messages", func(t *testing.T) {
		assert.Equal(t, "Nope", NewLocalizer("en").Message("Nope"))
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud"))
}
