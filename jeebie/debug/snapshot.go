package debug

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/valerio/jeebie-core/jeebie/video"
)

// shadeChars maps shades, white first, to text.
var shadeChars = [4]rune{'░', '▒', '▓', '█'}

// Gray converts the frame to a grayscale image.
func Gray(frame *video.Image) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, video.ScreenWidth, video.ScreenHeight))
	for y := 0; y < video.ScreenHeight; y++ {
		for x := 0; x < video.ScreenWidth; x++ {
			img.Pix[y*img.Stride+x] = video.ShadeColor(frame.Shade(x, y)).Gray()
		}
	}
	return img
}

// SavePNG writes the frame as a PNG file.
func SavePNG(frame *video.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(file, Gray(frame)); err != nil {
		file.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return err
	}

	slog.Info("snapshot saved", "path", path, "size", fmt.Sprintf("%dx%d", video.ScreenWidth, video.ScreenHeight))
	return nil
}

// WriteText writes the frame as one character per pixel, preceded by a
// commented header.
func WriteText(w io.Writer, frame *video.Image, cycles uint64) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# Game Boy Frame Snapshot\n")
	fmt.Fprintf(bw, "# Cycles: %d, Hash: %016x\n", cycles, frame.Hash())
	fmt.Fprintf(bw, "# Resolution: %dx%d pixels\n", video.ScreenWidth, video.ScreenHeight)
	fmt.Fprintf(bw, "# Legend: %c=white %c=light %c=dark %c=black\n", shadeChars[0], shadeChars[1], shadeChars[2], shadeChars[3])
	fmt.Fprintf(bw, "#\n")

	for y := 0; y < video.ScreenHeight; y++ {
		for x := 0; x < video.ScreenWidth; x++ {
			bw.WriteRune(shadeChars[frame.Shade(x, y)])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
