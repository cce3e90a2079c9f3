package gfx

import (
	"github.com/hubastard/groveray/engine/handle"
	"github.com/hubastard/groveray/engine/native"
)

func fontKind(lib native.Library) handle.Kind[native.Font] {
	return handle.Kind[native.Font]{ID: handle.KindFont, Valid: lib.IsFontReady, Release: lib.UnloadFont}
}

type Font struct {
	*handle.Handle[native.Font]
	lib native.Library
}

// LoadFont rasterizes a TTF/OTF file at size pixels. A nil codepoints
// slice loads the printable ASCII range.
func LoadFont(lib native.Library, path string, size int32, codepoints []rune) (*Font, error) {
	h, err := fontKind(lib).Load(func() native.Font { return lib.LoadFontEx(path, size, codepoints) })
	if err != nil {
		return nil, err
	}
	return &Font{Handle: h, lib: lib}, nil
}

// DefaultFont returns the library's built-in font. It is never released.
func DefaultFont(lib native.Library) *Font {
	return &Font{Handle: fontKind(lib).Unowned(lib.GetFontDefault()), lib: lib}
}

func (f *Font) BaseSize() int32 { return f.Raw().BaseSize }

// Measure returns the size of text rendered at size with spacing.
func (f *Font) Measure(text string, size, spacing float32) native.Vector2 {
	return f.lib.MeasureTextEx(f.Raw(), text, size, spacing)
}

func fontOrDefault(lib native.Library, f *Font) native.Font {
	if f == nil {
		return lib.GetFontDefault()
	}
	return f.Raw()
}
