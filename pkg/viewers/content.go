package viewers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/dumbcommander/dumbcommander/pkg/chroma2tcell"
	"github.com/dumbcommander/dumbcommander/pkg/fsutils"
	"github.com/rivo/tview"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const DefaultMaxBytes = 256 * 1024

type Options struct {
	Style    string
	MaxBytes int
}

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

// Render returns the tview-tagged text shown for the file at path.
// Images are described by format and dimensions; binary files by size.
func Render(path string, o Options) (string, error) {
	if imageExts[strings.ToLower(filepath.Ext(path))] {
		return imageInfo(path)
	}
	maxBytes := o.MaxBytes
	if maxBytes == 0 {
		maxBytes = DefaultMaxBytes
	}
	data, err := fsutils.ReadClipped(path, maxBytes)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return binaryInfo(path)
	}
	text := string(data)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		text = prettyJSON(text)
	}
	return chroma2tcell.ColorizeFile(filepath.Base(path), text, o.Style)
}

func prettyJSON(input string) string {
	var out bytes.Buffer
	if err := json.Indent(&out, []byte(input), "", "  "); err != nil {
		return input
	}
	return out.String()
}

func binaryInfo(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("[yellow]Binary file[-]\n\nSize: %s", fsutils.GetSizeLongText(info.Size())), nil
}

func imageInfo(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close()
	}()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return "", fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	var sb strings.Builder
	sb.WriteString("[yellow]Format:[-] " + tview.Escape(strings.ToUpper(format)) + "\n")
	fmt.Fprintf(&sb, "[yellow]Width:[-]  %d\n", cfg.Width)
	fmt.Fprintf(&sb, "[yellow]Height:[-] %d\n", cfg.Height)
	return sb.String(), nil
}
