package ui

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"MyWhiteboard/internal/export"
)

// printer writes a snapshot of the board to w.
type printer func(w io.Writer, img image.Image) error

func (a *App) printTo(name string, ext string, write printer) func() {
	return func() {
		d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			if wc == nil {
				return
			}
			defer func() {
				if err := wc.Close(); err != nil {
					log.Errorf("closing %s: %v", wc.URI(), err)
				}
			}()
			if err := write(wc, a.board.Snapshot()); err != nil {
				log.Errorf("print to %s failed: %v", wc.URI(), err)
				dialog.ShowError(err, a.window)
				return
			}
			a.SetStatus(fmt.Sprintf("Printed to %s", wc.URI().Name()))
		}, a.window)
		d.SetFileName("whiteboard" + ext)
		d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
		d.SetConfirmText("Print " + name)
		d.Show()
	}
}

func (a *App) printPNG() func() { return a.printTo("PNG", ".png", export.WritePNG) }

func (a *App) printPDF() func() { return a.printTo("PDF", ".pdf", export.WritePDF) }

// chooseBackground lets the user pick an image to draw under the board.
func (a *App) chooseBackground() {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if rc == nil {
			return
		}
		defer rc.Close()
		img, err := decodeImage(rc)
		if err != nil {
			log.Errorf("background %s: %v", rc.URI(), err)
			dialog.ShowError(err, a.window)
			return
		}
		a.board.SetBackdrop(img)
		a.SetStatus("Background set to " + rc.URI().Name())
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".bmp", ".webp"}))
	d.Show()
}

func decodeImage(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	log.Debugf("decoded %s background %v", format, img.Bounds())
	return img, nil
}
