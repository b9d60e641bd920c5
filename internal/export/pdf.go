// Package export prints the rendered board to PNG and PDF files.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/fogleman/gg"
	logging "github.com/ipfs/go-log/v2"
	"github.com/jung-kurt/gofpdf"
)

var log = logging.Logger("export")

const imageName = "board"

// newPDF lays img out on a single page of exactly its size, one point per
// pixel.
func newPDF(img image.Image) (*gofpdf.Fpdf, error) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	orientation := "P"
	if w > h {
		orientation = "L"
	}
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.SetTitle("Whiteboard", true)
	p.AddPage()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader(imageName, opts, &buf)
	p.ImageOptions(imageName, 0, 0, w, h, false, opts, 0, "")
	if err := p.Error(); err != nil {
		return nil, fmt.Errorf("build pdf: %w", err)
	}
	return p, nil
}

// WritePDF writes img as a one-page PDF to w.
func WritePDF(w io.Writer, img image.Image) error {
	p, err := newPDF(img)
	if err != nil {
		return err
	}
	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// PDF writes img as a one-page PDF file at path.
func PDF(path string, img image.Image) error {
	p, err := newPDF(img)
	if err != nil {
		return err
	}
	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Infof("printed board to %s", path)
	return nil
}

// WritePNG writes img as PNG to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// PNG writes img as a PNG file at path.
func PNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Infof("printed board to %s", path)
	return nil
}
