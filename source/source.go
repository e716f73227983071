// Package source resolves an image identifier to a decoded image, whether it
// names a local file or a remote URL.
package source

import (
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"
	"os"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrSourceUnavailable marks a source that could not be read at all: a
	// missing file, a failed fetch, or a non-2xx response.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrDecode marks bytes that were read but are not a recognizable image.
	ErrDecode = errors.New("image decode failed")
)

// IsURL reports whether the source names a remote image.
func IsURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// Fetch resolves src as a URL or local path and decodes it. ctx bounds the
// network round-trip in the URL case. A single failed attempt is terminal;
// there are no retries.
func Fetch(ctx context.Context, src string) (image.Image, error) {
	if IsURL(src) {
		return fetchURL(ctx, src)
	}
	return fetchFile(src)
}

func fetchURL(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s: %s", ErrSourceUnavailable, url, resp.Status)
	}

	// The body is treated as opaque image bytes; the declared content-type
	// is not consulted.
	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, url, err)
	}
	return img, nil
}

func fetchFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return img, nil
}
