package artwork

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
)

const chunkSize = 4096

// Encode wraps PNG data in a Kitty graphics escape sequence that transmits
// and displays the image over cols x rows cells. Returns "" for empty data.
func Encode(pngData []byte, cols, rows int) string {
	if len(pngData) == 0 {
		return ""
	}
	b64 := base64.StdEncoding.EncodeToString(pngData)

	var sb strings.Builder
	for i := 0; i < len(b64); i += chunkSize {
		end := min(i+chunkSize, len(b64))
		more := 0
		if end < len(b64) {
			more = 1
		}
		if i == 0 {
			fmt.Fprintf(&sb, "\x1b_Ga=T,f=100,c=%d,r=%d,C=1,q=2,m=%d;%s\x1b\\", cols, rows, more, b64[i:end])
		} else {
			fmt.Fprintf(&sb, "\x1b_Gm=%d;%s\x1b\\", more, b64[i:end])
		}
	}
	return sb.String()
}

// Placeholder draws a framed box used while artwork is loading or missing.
func Placeholder(cols, rows int) string {
	if cols < 4 || rows < 2 {
		return ""
	}

	lines := make([]string, 0, rows)
	lines = append(lines, "┌"+strings.Repeat("─", cols-2)+"┐")
	for i := 1; i < rows-1; i++ {
		if i == rows/2 {
			pad := (cols - 3) / 2
			lines = append(lines, "│"+strings.Repeat(" ", pad)+"♫"+strings.Repeat(" ", cols-3-pad)+"│")
			continue
		}
		lines = append(lines, "│"+strings.Repeat(" ", cols-2)+"│")
	}
	lines = append(lines, "└"+strings.Repeat("─", cols-2)+"┘")
	return strings.Join(lines, "\n")
}

// KittySupported reports whether the terminal understands the Kitty graphics
// protocol, judging from the environment.
func KittySupported() bool {
	return kittySupported(os.Getenv)
}

func kittySupported(getenv func(string) string) bool {
	// Contour inherits Kitty-capable parents' variables but cannot draw.
	if getenv("CONTOUR_PROFILE") != "" {
		return false
	}
	if getenv("KITTY_WINDOW_ID") != "" || getenv("GHOSTTY_RESOURCES_DIR") != "" {
		return true
	}
	if getenv("TERM_PROGRAM") == "WezTerm" {
		return true
	}
	if v := getenv("KONSOLE_VERSION"); len(v) >= 4 && v[:4] >= "2204" {
		return true
	}
	return strings.Contains(getenv("TERM"), "kitty")
}
