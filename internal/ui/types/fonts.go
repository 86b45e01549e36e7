package types

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"snake/internal/log"
)

const (
	dpi = 72

	SizeNormal = 20
	SizeMedium = 25
	SizeLarge  = 30
)

// Fonts is the optional text capability. A nil *Fonts means no font could be
// loaded and renderers must skip every text element.
type Fonts struct {
	Normal font.Face
	Medium font.Face
	Large  font.Face
	// Source names where the faces came from, for logging.
	Source string
}

// LoadFonts tries each path in order, then the fonts compiled into the binary
// when builtin is set. It returns nil when nothing loads.
func LoadFonts(paths []string, builtin bool) *Fonts {
	for _, path := range paths {
		fonts, err := loadFontFile(path)
		if err != nil {
			log.Debug("Font %s not usable: %v", path, err)
			continue
		}
		log.Info("Loaded font %s", path)
		return fonts
	}

	if !builtin {
		log.Warn("No font available, running without text overlay")
		return nil
	}

	fonts, err := loadBuiltinFonts()
	if err != nil {
		log.Warn("Built-in TrueType font failed (%v), using bitmap font", err)
		return &Fonts{
			Normal: basicfont.Face7x13,
			Medium: basicfont.Face7x13,
			Large:  basicfont.Face7x13,
			Source: "basicfont",
		}
	}
	return fonts
}

func loadFontFile(path string) (*Fonts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".ttc") {
		collection, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font collection: %w", err)
		}
		f, err := collection.Font(0)
		if err != nil {
			return nil, fmt.Errorf("failed to read first font in collection: %w", err)
		}
		return openTypeFaces(f, path)
	}

	f, err := opentype.Parse(data)
	if err == nil {
		return openTypeFaces(f, path)
	}

	// Some older TrueType files trip the sfnt parser but are fine for freetype.
	tt, ttErr := truetype.Parse(data)
	if ttErr != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}
	return trueTypeFaces(tt, path), nil
}

func openTypeFaces(f *opentype.Font, source string) (*Fonts, error) {
	faces := make([]font.Face, 0, 3)
	for _, size := range []float64{SizeNormal, SizeMedium, SizeLarge} {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     dpi,
			Hinting: font.HintingVertical,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create font face: %w", err)
		}
		faces = append(faces, face)
	}
	return &Fonts{Normal: faces[0], Medium: faces[1], Large: faces[2], Source: source}, nil
}

func loadBuiltinFonts() (*Fonts, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return trueTypeFaces(tt, "goregular"), nil
}

func trueTypeFaces(tt *truetype.Font, source string) *Fonts {
	newFace := func(size float64) font.Face {
		return truetype.NewFace(tt, &truetype.Options{
			Size:    size,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
	}
	return &Fonts{
		Normal: newFace(SizeNormal),
		Medium: newFace(SizeMedium),
		Large:  newFace(SizeLarge),
		Source: source,
	}
}
