package artwork

import (
	"bytes"
	"image/png"
	"os"
	"strings"

	"github.com/mattn/go-sixel"
)

// EncodeSixel converts PNG data to a Sixel image. Returns "" on failure.
func EncodeSixel(pngData []byte) string {
	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return ""
	}
	var buf bytes.Buffer
	enc := sixel.NewEncoder(&buf)
	enc.Dither = true
	if err := enc.Encode(img); err != nil {
		return ""
	}
	return buf.String()
}

// SixelSupported reports whether the terminal likely draws Sixel images.
func SixelSupported() bool {
	return sixelSupported(os.Getenv)
}

func sixelSupported(getenv func(string) string) bool {
	term := getenv("TERM")
	switch getenv("TERM_PROGRAM") {
	case "vscode", "mintty", "iTerm.app", "contour":
		return true
	}
	if term == "foot" || term == "foot-extra" || getenv("CONTOUR_PROFILE") != "" {
		return true
	}
	return false
}

// Protocol is the image protocol used to draw artwork.
type Protocol int

const (
	ProtocolNone Protocol = iota
	ProtocolKitty
	ProtocolSixel
)

func (p Protocol) String() string {
	switch p {
	case ProtocolKitty:
		return "kitty"
	case ProtocolSixel:
		return "sixel"
	default:
		return "none"
	}
}

// Detect picks the protocol for the current terminal. STORESEARCH_IMAGE_PROTOCOL
// ("kitty", "sixel", "none") overrides detection.
func Detect() Protocol {
	return detect(os.Getenv)
}

func detect(getenv func(string) string) Protocol {
	switch strings.ToLower(getenv("STORESEARCH_IMAGE_PROTOCOL")) {
	case "kitty":
		return ProtocolKitty
	case "sixel":
		return ProtocolSixel
	case "none":
		return ProtocolNone
	}
	if kittySupported(getenv) {
		return ProtocolKitty
	}
	if sixelSupported(getenv) {
		return ProtocolSixel
	}
	return ProtocolNone
}

// Render returns the escape sequence drawing pngData with p.
func (p Protocol) Render(pngData []byte, cols, rows int) string {
	switch p {
	case ProtocolKitty:
		return Encode(pngData, cols, rows)
	case ProtocolSixel:
		return EncodeSixel(pngData)
	default:
		return ""
	}
}

// PixelSize is the thumbnail size for an area of cols x rows cells.
func (p Protocol) PixelSize(cols, rows int) (width, height int) {
	if p == ProtocolSixel {
		cw, ch := cellSize()
		// one row of margin so the terminal does not scroll
		return cols * cw, max(rows-1, 1) * ch
	}
	return cols * 8, rows * 16
}
