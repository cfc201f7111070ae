//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestNewReturnsError(t *testing.T) {
	client, err := New("eng")
	if err == nil {
		t.Error("expected error from New() when OCR is disabled")
	}
	if !errors.Is(err, ErrNotEnabled) {
		t.Errorf("expected ErrNotEnabled, got: %v", err)
	}
	if client != nil {
		t.Error("expected nil client when OCR is disabled")
	}
}

func TestCloseOnNilClient(t *testing.T) {
	var client *Client
	if err := client.Close(); err != nil {
		t.Errorf("Close on nil client should not error: %v", err)
	}
}

func TestRecognizeReturnsError(t *testing.T) {
	client := &Client{}
	if _, err := client.Recognize([]byte("not an image")); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("expected ErrNotEnabled, got: %v", err)
	}
}
