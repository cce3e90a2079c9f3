package errors_test

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hubastard/groveray/engine/errors"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "audio subsystem has not yet been initialized", errors.SubsystemNotInitialized("audio").Error())
	assert.Equal(t, "window subsystem has already been initialized", errors.SubsystemAlreadyInitialized("window").Error())
	assert.Equal(t, "unable to load texture", errors.UnableToLoad("texture").Error())
	assert.Equal(t, "can't acquire drawing lock as it is already held", errors.ThreadAlreadyLocked("drawing").Error())
	assert.Equal(t, "gradient drawing operation not supported by rotated rectangles",
		errors.OperationNotSupported("gradient drawing", "rotated rectangles").Error())
	assert.Equal(t, "invalid_argument: empty path", errors.InvalidArgument("empty path").Error())
}

func TestIsMatchesKindAndName(t *testing.T) {
	err := fmt.Errorf("frame: %w", errors.ThreadAlreadyLocked("drawing"))

	assert.True(t, errors.Is(err, errors.ErrThreadAlreadyLocked))
	assert.True(t, errors.Is(err, errors.ThreadAlreadyLocked("drawing")))
	assert.False(t, errors.Is(err, errors.ThreadAlreadyLocked("window")))
	assert.False(t, errors.Is(err, errors.ErrUnableToLoad))
	assert.Equal(t, errors.KindThreadAlreadyLocked, errors.KindOf(err))
}

func TestOperationNotSupportedMatching(t *testing.T) {
	err := errors.OperationNotSupported("wireframe drawing", "planes")

	assert.True(t, errors.Is(err, errors.ErrOperationNotSupported))
	assert.True(t, errors.Is(err, errors.OperationNotSupported("wireframe drawing", "planes")))
	assert.False(t, errors.Is(err, errors.OperationNotSupported("wireframe drawing", "circles")))
}

func TestUnableToLoadCause(t *testing.T) {
	err := errors.UnableToLoadCause("image", fs.ErrNotExist)

	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.True(t, errors.Is(err, errors.UnableToLoad("image")))
	assert.Contains(t, err.Error(), "caused by")
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, errors.Kind(""), errors.KindOf(fs.ErrClosed))
	assert.Equal(t, errors.Kind(""), errors.KindOf(nil))
}

func TestIOError(t *testing.T) {
	err := errors.IO("export", "out.png")
	assert.Equal(t, "unable to export out.png", err.Error())
	assert.True(t, errors.Is(err, errors.ErrIO))
}
