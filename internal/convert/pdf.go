package convert

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/image/draw"

	"github.com/knitworks/pattern-analyzer/constants"
	"github.com/knitworks/pattern-analyzer/internal/common"
)

// Page is one rendered page of a document, ready for the vision provider.
// A page with a non-nil Err carries no image data; the caller decides
// whether to skip it or fail the whole run.
type Page struct {
	Number    int
	Data      []byte
	MediaType string
	Err       error
}

// Converter rasterizes PDF documents into JPEG pages sized for the vision
// API, and recompresses standalone images that exceed the payload ceiling.
type Converter struct {
	cfg    common.ConverterConfig
	runner Runner
	logger *slog.Logger
}

func NewConverter(cfg common.ConverterConfig, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 150
	}
	if cfg.MaxEdge <= 0 {
		cfg.MaxEdge = 2048
	}
	return &Converter{cfg: cfg, runner: execRunner{log: logger}, logger: logger}
}

// RenderPDF rasterizes every page of the document at path. It errors only
// when the document itself cannot be rendered; a page that fails to decode
// or cannot be compressed under the size ceiling is returned with its Err
// set so the remaining pages still go through.
func (c *Converter) RenderPDF(ctx context.Context, path string) ([]Page, error) {
	tmpDir, err := os.MkdirTemp("", "pa-pg-*")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			c.logger.Warn("temp dir cleanup failed", "path", tmpDir, "error", err)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -jpeg <in.pdf> <tmp/page>
	_, errb, err := c.runner.Run(ctx, c.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", c.cfg.DPI), "-jpeg", path, prefix)
	if err != nil {
		return nil, common.NewAppError("PDF_RENDER", string(errb), common.ErrImageProcessingFailed)
	}

	// collect generated jpegs (prefix-1.jpg, prefix-2.jpg, ...); pdftoppm
	// zero-pads page numbers so a lexicographic sort keeps document order
	matches, _ := filepath.Glob(prefix + "-*.jpg")
	sort.Strings(matches)
	if len(matches) > constants.MaxDocumentPages {
		c.logger.Warn("document truncated",
			"pages", len(matches), "limit", constants.MaxDocumentPages)
		matches = matches[:constants.MaxDocumentPages]
	}
	if len(matches) == 0 {
		return nil, common.NewAppError("PDF_RENDER", "no pages rendered", common.ErrImageProcessingFailed)
	}

	pages := make([]Page, 0, len(matches))
	for i, file := range matches {
		pg := Page{Number: i + 1, MediaType: "image/jpeg"}
		raw, err := os.ReadFile(file)
		if err == nil {
			pg.Data, err = c.fitJPEG(raw)
		}
		if err != nil {
			c.logger.Warn("page preparation failed", "page", pg.Number, "error", err)
			pg.Data, pg.Err = nil, err
		}
		pages = append(pages, pg)
	}
	return pages, nil
}

// PrepareImage bounds a standalone upload to the per-payload size ceiling.
// Formats Go cannot decode (HEIC among them) pass through untouched; the
// provider accepts them directly.
func (c *Converter) PrepareImage(data []byte, mediaType string) ([]byte, string, error) {
	if len(data) <= constants.MaxPageImageBytes {
		return data, mediaType, nil
	}
	out, err := c.fitJPEG(data)
	if err != nil {
		if _, _, derr := image.Decode(bytes.NewReader(data)); derr != nil {
			c.logger.Warn("image not decodable, sending as-is",
				"media_type", mediaType, "bytes", len(data))
			return data, mediaType, nil
		}
		return nil, "", err
	}
	return out, "image/jpeg", nil
}

// fitJPEG re-encodes an image under the payload ceiling, first by stepping
// quality down and then by shrinking the longest edge.
func (c *Converter) fitJPEG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, common.NewAppError("IMAGE_DECODE", err.Error(), common.ErrImageProcessingFailed)
	}

	edge := c.cfg.MaxEdge
	for pass := 0; pass < 4; pass++ {
		scaled := downscale(img, edge)
		for quality := 85; quality >= 25; quality -= 10 {
			var buf bytes.Buffer
			if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: quality}); err != nil {
				return nil, common.NewAppError("IMAGE_ENCODE", err.Error(), common.ErrImageProcessingFailed)
			}
			if buf.Len() <= constants.MaxPageImageBytes {
				return buf.Bytes(), nil
			}
		}
		edge = edge * 3 / 4
	}
	return nil, common.NewAppError("IMAGE_TOO_DENSE",
		"image does not fit the payload ceiling", common.ErrImageProcessingFailed)
}

// downscale resizes so the longest edge is at most maxEdge, preserving
// aspect ratio. Images already within bounds are returned unchanged.
func downscale(img image.Image, maxEdge int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	long := w
	if h > long {
		long = h
	}
	if long <= maxEdge {
		return img
	}

	scale := float64(maxEdge) / float64(long)
	dw := int(float64(w)*scale + 0.5)
	dh := int(float64(h)*scale + 0.5)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
