// Package artwork downloads, resizes, caches and renders item artwork for
// terminals that support inline images.
package artwork

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // store artwork is JPEG
	"image/png"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/nfnt/resize"

	"github.com/llehouerou/storesearch/internal/log"
)

// ErrNoArtwork is returned for an item without an artwork URL.
var ErrNoArtwork = errors.New("no artwork")

// Fetcher performs an HTTP GET. *itunes.Client satisfies it.
type Fetcher interface {
	Get(ctx context.Context, url string) (body []byte, status int, err error)
}

// Loader turns artwork URLs into PNG thumbnails sized for the terminal.
type Loader struct {
	fetcher  Fetcher
	cache    *Cache
	protocol Protocol
	log      *log.Logger
}

// NewLoader creates a loader. cache may be nil.
func NewLoader(fetcher Fetcher, cache *Cache, protocol Protocol) *Loader {
	l := &Loader{
		fetcher:  fetcher,
		cache:    cache,
		protocol: protocol,
		log:      log.ForService("artwork"),
	}
	l.log.Debugf("%s, cache=%q", protocol, cache.Dir())
	return l
}

// Protocol returns the protocol the loader renders for.
func (l *Loader) Protocol() Protocol {
	return l.protocol
}

// Load returns PNG data for url fitted into cols x rows cells.
func (l *Loader) Load(ctx context.Context, url string, cols, rows int) ([]byte, error) {
	if url == "" {
		return nil, ErrNoArtwork
	}
	if data := l.cache.Get(url, cols, rows); data != nil {
		return data, nil
	}

	body, status, err := l.fetcher.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("artwork: unexpected status %d", status)
	}
	l.log.Debugf("downloaded %s (%s)", url, humanize.Bytes(uint64(len(body))))

	img, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decode artwork: %w", err)
	}

	w, h := l.protocol.PixelSize(cols, rows)
	thumb := resize.Thumbnail(uint(max(w, 16)), uint(max(h, 16)), img, resize.Lanczos3) //nolint:gosec // small cell counts

	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	data := buf.Bytes()

	if err := l.cache.Put(url, cols, rows, data); err != nil {
		l.log.Warnf("cache put: %v", err)
	}
	return data, nil
}

// Render draws data with the loader's protocol.
func (l *Loader) Render(data []byte, cols, rows int) string {
	return l.protocol.Render(data, cols, rows)
}
