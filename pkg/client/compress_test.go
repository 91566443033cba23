package client

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const compressPayload = `{"path":"f/db/main","resource_type":"postgresql","is_oauth":false}`

func encodeZstd(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatalf("zstd.NewWriter: %v", err)
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil)
}

func encodeBrotli(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("brotli write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("brotli close: %v", err)
	}
	return buf.Bytes()
}

func encodeGzip(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func TestDecompressTransport(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
		encode   func(*testing.T, []byte) []byte
	}{
		{"zstd", "zstd", encodeZstd},
		{"brotli", "br", encodeBrotli},
		{"gzip", "gzip", encodeGzip},
		{"identity", "", func(_ *testing.T, b []byte) []byte { return b }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.Header.Get("Accept-Encoding"); got != "zstd, br, gzip" {
					t.Errorf("Accept-Encoding = %q, want %q", got, "zstd, br, gzip")
				}
				if tc.encoding != "" {
					w.Header().Set("Content-Encoding", tc.encoding)
				}
				w.Write(tc.encode(t, []byte(compressPayload)))
			}))
			defer ts.Close()

			c := NewWithClient(ts.URL, ts.Client(), WithCompression())
			res, err := c.GetResource(context.Background(), "demo", "f/db/main")
			if err != nil {
				t.Fatalf("GetResource returned error: %v", err)
			}
			if res.Path != "f/db/main" {
				t.Errorf("Path = %q, want %q", res.Path, "f/db/main")
			}
			if res.ResourceType != "postgresql" {
				t.Errorf("ResourceType = %q, want %q", res.ResourceType, "postgresql")
			}
		})
	}
}

func TestDecompressTransport_UnknownEncoding(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "compress")
		w.Write([]byte("garbage"))
	}))
	defer ts.Close()

	c := NewWithClient(ts.URL, ts.Client(), WithCompression())
	got, err := c.GetVersion(context.Background())
	if err != nil {
		t.Fatalf("GetVersion returned error: %v", err)
	}
	if got != "garbage" {
		t.Errorf("GetVersion = %q, want body passed through", got)
	}
}
