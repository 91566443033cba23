package client

import (
	"fmt"
	"io"
	"net/http"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const acceptEncoding = "zstd, br, gzip"

// decompressTransport advertises zstd, br and gzip and unwraps compressed
// response bodies based on Content-Encoding.
type decompressTransport struct {
	next http.RoundTripper
}

func (t *decompressTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Accept-Encoding") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("Accept-Encoding", acceptEncoding)
	}
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	ce := resp.Header.Get("Content-Encoding")
	if ce == "" || req.Method == http.MethodHead {
		return resp, nil
	}

	var reader io.ReadCloser
	switch ce {
	case "zstd":
		dec, err := zstd.NewReader(resp.Body, zstd.WithDecoderMaxMemory(10<<20))
		if err != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("invalid zstd body: %w", err)
		}
		reader = &zstdBody{dec: dec, raw: resp.Body}
	case "br":
		reader = &wrappedBody{Reader: brotli.NewReader(resp.Body), raw: resp.Body}
	case "gzip":
		gr, err := gzip.NewReader(resp.Body)
		if err != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("invalid gzip body: %w", err)
		}
		reader = &wrappedBody{Reader: gr, raw: resp.Body}
	default:
		return resp, nil
	}

	resp.Body = reader
	resp.Header.Del("Content-Encoding")
	resp.Header.Del("Content-Length")
	resp.ContentLength = -1
	resp.Uncompressed = true
	return resp, nil
}

// wrappedBody closes the network body along with the decoder.
type wrappedBody struct {
	io.Reader
	raw io.Closer
}

func (b *wrappedBody) Close() error {
	if c, ok := b.Reader.(io.Closer); ok {
		_ = c.Close()
	}
	return b.raw.Close()
}

type zstdBody struct {
	dec *zstd.Decoder
	raw io.Closer
}

func (b *zstdBody) Read(p []byte) (int, error) { return b.dec.Read(p) }

func (b *zstdBody) Close() error {
	b.dec.Close()
	return b.raw.Close()
}
