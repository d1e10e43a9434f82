package services

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubDoer struct {
	status      int
	contentType string
	err         error
}

func (d stubDoer) Do(req *http.Request) (*http.Response, error) {
	if d.err != nil {
		return nil, d.err
	}
	resp := &http.Response{
		StatusCode: d.status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader("")),
	}
	resp.Header.Set("Content-Type", d.contentType)
	return resp, nil
}

// The service under test carries a nil collection on purpose: a rejected
// candidate must return before any database write is attempted, so a write
// would panic and fail the test.
func TestSetURLRejectsNonImage(t *testing.T) {
	s := &QRService{http: stubDoer{status: http.StatusOK, contentType: "text/html"}}

	err := s.SetURL(context.Background(), "https://example.com/page")
	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestSetURLRejectsNon200(t *testing.T) {
	s := &QRService{http: stubDoer{status: http.StatusNotFound, contentType: "image/png"}}

	err := s.SetURL(context.Background(), "https://example.com/gone.png")
	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestCheckImageURLAcceptsImage(t *testing.T) {
	s := &QRService{http: stubDoer{status: http.StatusOK, contentType: "image/png"}}

	err := s.checkImageURL(context.Background(), "https://example.com/qr.png")
	assert.NoError(t, err)
}

func TestUploadRejectsNonImageBytes(t *testing.T) {
	s := &QRService{}

	_, err := s.Upload(context.Background(), "notes.txt", []byte("plain text payload"))
	assert.ErrorIs(t, err, ErrNotAnImage)
}
