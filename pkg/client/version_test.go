package client

import (
	"context"
	"net/http"
	"testing"
)

func TestParseServerVersion(t *testing.T) {
	tests := []struct {
		input   string
		edition string
		version string
		build   string
		wantErr bool
	}{
		{"CE v1.478.1", "CE", "1.478.1", "", false},
		{"EE v1.478.1-12-gabc", "EE", "1.478.1", "12-gabc", false},
		{"v1.480.0", "", "1.480.0", "", false},
		{`"CE v1.478.1"`, "CE", "1.478.1", "", false},
		{"CE", "", "", "", true},
		{"community edition v1", "", "", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseServerVersion(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseServerVersion(%q) should fail, got %+v", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseServerVersion(%q) returned error: %v", tc.input, err)
			}
			if got.Edition != tc.edition || got.Version != tc.version || got.Build != tc.build {
				t.Errorf("ParseServerVersion(%q) = %+v, want {%s %s %s}", tc.input, got, tc.edition, tc.version, tc.build)
			}
		})
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.478.1", "1.478.1", 0},
		{"1.478", "1.478.0", 0},
		{"1.477.9", "1.478.1", -1},
		{"1.480.0", "1.478.1", 1},
		{"v1.478.1", "1.478.1", 0},
		{"2", "1.999.999", 1},
		{"EE v1.478.1-12-gabc", "1.478.1", 0},
		{"CE v1.479.0", "1.478.1", 1},
		{"0.0", "", 0},
	}
	for _, tc := range tests {
		t.Run(tc.a+"_vs_"+tc.b, func(t *testing.T) {
			if got := CompareVersions(tc.a, tc.b); got != tc.want {
				t.Errorf("CompareVersions(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestVersionAtLeast(t *testing.T) {
	tests := []struct {
		version, min string
		want bool
	}{
		{"1.478.1", "1.478.0", true},
		{"1.478.1", "1.479", false},
		{"", "1.0", true},
		{"1.0", "", true},
	}
	for _, tc := range tests {
		if got := VersionAtLeast(tc.version, tc.min); got != tc.want {
			t.Errorf("VersionAtLeast(%q, %q) = %v, want %v", tc.version, tc.min, got, tc.want)
		}
	}
}

func TestCheckCompatibility(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/version" {
			t.Errorf("path = %q, want /version", r.URL.Path)
		}
		w.Write([]byte("EE v1.480.2-3-g1234"))
	})
	v, cmp, err := c.CheckCompatibility(context.Background())
	if err != nil {
		t.Fatalf("CheckCompatibility returned error: %v", err)
	}
	if v.Version != "1.480.2" {
		t.Errorf("Version = %q, want %q", v.Version, "1.480.2")
	}
	if cmp != 1 {
		t.Errorf("compare = %d, want 1", cmp)
	}
	if v.String() != "EE v1.480.2-3-g1234" {
		t.Errorf("String() = %q", v.String())
	}
}
