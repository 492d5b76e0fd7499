//go:build !ocr

// Package ocr recognizes text on rasterized pages via the Tesseract
// engine (gosseract).
//
// This is the stub implementation used when the "ocr" build tag is not
// set; all operations return ErrOCRNotEnabled and the engine degrades to
// skipping scanned pages. To enable OCR, rebuild with:
//
//	go build -tags ocr
package ocr

import "errors"

// ErrOCRNotEnabled is returned when OCR support was not compiled in.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Block is one recognized text line with the engine's confidence (0-100).
type Block struct {
	Text       string
	Confidence float64
	Height     int
}

// Client is a stub that fails all operations.
type Client struct{}

func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op; safe on a nil client.
func (c *Client) Close() error {
	return nil
}

func (c *Client) Sample(image []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

func (c *Client) Recognize(image []byte, lang string) ([]Block, error) {
	return nil, ErrOCRNotEnabled
}
