package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/knitworks/pattern-analyzer/constants"
	"github.com/knitworks/pattern-analyzer/internal/common"
)

// fakeRunner pretends to be pdftoppm: it drops pre-encoded jpegs next to
// the output prefix instead of executing anything.
type fakeRunner struct {
	pages   [][]byte
	failErr error
}

func (f *fakeRunner) Run(_ context.Context, _ string, args ...string) ([]byte, []byte, error) {
	if f.failErr != nil {
		return nil, []byte("boom"), f.failErr
	}
	prefix := args[len(args)-1]
	for i, data := range f.pages {
		name := fmt.Sprintf("%s-%02d.jpg", prefix, i+1)
		if err := os.WriteFile(name, data, 0o644); err != nil {
			return nil, nil, err
		}
	}
	return nil, nil, nil
}

func encodeTestJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)), nil); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf.Bytes()
}

func newTestConverter(r Runner) *Converter {
	c := NewConverter(common.ConverterConfig{DPI: 72, MaxEdge: 256}, slog.Default())
	c.runner = r
	return c
}

func TestRenderPDF_AllPages(t *testing.T) {
	fixture := encodeTestJPEG(t, 100, 140)
	c := newTestConverter(&fakeRunner{pages: [][]byte{fixture, fixture, fixture}})

	pages, err := c.RenderPDF(context.Background(), "pattern.pdf")
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("pages = %d, want 3", len(pages))
	}
	for i, pg := range pages {
		if pg.Number != i+1 {
			t.Errorf("page %d numbered %d", i, pg.Number)
		}
		if pg.Err != nil {
			t.Errorf("page %d err = %v", pg.Number, pg.Err)
		}
		if len(pg.Data) == 0 || pg.MediaType != "image/jpeg" {
			t.Errorf("page %d missing payload", pg.Number)
		}
	}
}

func TestRenderPDF_BadPageDoesNotFailRun(t *testing.T) {
	good := encodeTestJPEG(t, 100, 100)
	c := newTestConverter(&fakeRunner{pages: [][]byte{good, []byte("not a jpeg"), good}})

	pages, err := c.RenderPDF(context.Background(), "pattern.pdf")
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("pages = %d, want 3", len(pages))
	}
	if pages[0].Err != nil || pages[2].Err != nil {
		t.Fatalf("good pages errored: %v, %v", pages[0].Err, pages[2].Err)
	}
	if pages[1].Err == nil {
		t.Fatal("corrupt page did not carry an error")
	}
	if pages[1].Data != nil {
		t.Fatal("corrupt page carries data")
	}
}

func TestRenderPDF_RendererFailure(t *testing.T) {
	c := newTestConverter(&fakeRunner{failErr: errors.New("exit status 1")})

	_, err := c.RenderPDF(context.Background(), "pattern.pdf")
	if !errors.Is(err, common.ErrImageProcessingFailed) {
		t.Fatalf("err = %v, want ErrImageProcessingFailed", err)
	}
}

func TestRenderPDF_NoPages(t *testing.T) {
	c := newTestConverter(&fakeRunner{})

	_, err := c.RenderPDF(context.Background(), "empty.pdf")
	if !errors.Is(err, common.ErrImageProcessingFailed) {
		t.Fatalf("err = %v, want ErrImageProcessingFailed", err)
	}
}

func TestRenderPDF_TruncatesAtPageLimit(t *testing.T) {
	fixture := encodeTestJPEG(t, 50, 50)
	many := make([][]byte, constants.MaxDocumentPages+5)
	for i := range many {
		many[i] = fixture
	}
	c := newTestConverter(&fakeRunner{pages: many})

	pages, err := c.RenderPDF(context.Background(), "long.pdf")
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if len(pages) != constants.MaxDocumentPages {
		t.Fatalf("pages = %d, want %d", len(pages), constants.MaxDocumentPages)
	}
}

func TestDownscale_BoundsLongestEdge(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4000, 1000))
	out := downscale(img, 2048)

	b := out.Bounds()
	if b.Dx() != 2048 {
		t.Fatalf("width = %d, want 2048", b.Dx())
	}
	if b.Dy() != 512 {
		t.Fatalf("height = %d, want 512 (aspect preserved)", b.Dy())
	}

	small := image.NewRGBA(image.Rect(0, 0, 300, 200))
	if got := downscale(small, 2048); got != small {
		t.Fatal("in-bounds image was rescaled")
	}
}

func TestPrepareImage_SmallPassThrough(t *testing.T) {
	c := newTestConverter(&fakeRunner{})
	data := encodeTestJPEG(t, 80, 80)

	out, mt, err := c.PrepareImage(data, "image/jpeg")
	if err != nil {
		t.Fatalf("PrepareImage: %v", err)
	}
	if !bytes.Equal(out, data) || mt != "image/jpeg" {
		t.Fatal("small payload was rewritten")
	}
}

func TestPrepareImage_UndecodableOversizePassThrough(t *testing.T) {
	c := newTestConverter(&fakeRunner{})
	// An opaque oversize blob, the shape of a HEIC upload.
	data := []byte(strings.Repeat("x", constants.MaxPageImageBytes+1))

	out, mt, err := c.PrepareImage(data, "image/heic")
	if err != nil {
		t.Fatalf("PrepareImage: %v", err)
	}
	if !bytes.Equal(out, data) || mt != "image/heic" {
		t.Fatal("opaque payload was rewritten")
	}
}
