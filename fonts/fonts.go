package fonts

import (
	"bytes"
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD   FontName = "hud"
	Intro FontName = "intro"
	Title FontName = "title"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}

	uiSource *text.GoTextFaceSource
)

// LoadDefaults registers the built-in faces from the Go regular font.
func LoadDefaults() error {
	if err := LoadFontWithSize(HUD, goregular.TTF, 16); err != nil {
		return err
	}
	if err := LoadFontWithSize(Intro, goregular.TTF, 22); err != nil {
		return err
	}
	return LoadFontWithSize(Title, goregular.TTF, 32)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// UIFace returns a text/v2 face for ebitenui widgets.
func UIFace(size float64) text.Face {
	if uiSource == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic(err)
		}
		uiSource = src
	}
	return &text.GoTextFace{Source: uiSource, Size: size}
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
