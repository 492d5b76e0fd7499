//go:build ocr

// Package ocr recognizes text on rasterized pages via the Tesseract
// engine (gosseract). It is only used for pages with no extractable
// character geometry.
//
// This implementation is compiled with the "ocr" build tag and requires
// Tesseract to be installed:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Block is one recognized text line with the engine's confidence (0-100).
type Block struct {
	Text       string
	Confidence float64
	Height     int
}

// Client wraps a Tesseract client. Not safe for concurrent use; create
// one per worker. Close releases the underlying engine.
type Client struct {
	client *gosseract.Client
}

func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Sample runs a quick default-language pass and returns a short excerpt
// for language detection.
func (c *Client) Sample(image []byte) (string, error) {
	if err := c.client.SetLanguage("eng"); err != nil {
		return "", fmt.Errorf("set language: %w", err)
	}
	if err := c.client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr sample: %w", err)
	}
	text = strings.TrimSpace(text)
	if len(text) > 200 {
		text = text[:200]
	}
	return text, nil
}

// Recognize performs full OCR in the given Tesseract language and
// returns per-line blocks with confidences.
func (c *Client) Recognize(image []byte, lang string) ([]Block, error) {
	if err := c.client.SetLanguage(lang); err != nil {
		return nil, fmt.Errorf("set language %q: %w", lang, err)
	}
	if err := c.client.SetImageFromBytes(image); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}
	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("ocr: %w", err)
	}

	blocks := make([]Block, 0, len(boxes))
	for _, b := range boxes {
		blocks = append(blocks, Block{
			Text:       strings.TrimSpace(b.Word),
			Confidence: b.Confidence,
			Height:     b.Box.Dy(),
		})
	}
	return blocks, nil
}
