package client

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ServerVersion is the parsed answer of GET /version.
type ServerVersion struct {
	// Edition is "CE" or "EE".
	Edition string
	// Version is the dotted release number, without the leading "v".
	Version string
	// Build is the git describe suffix of development builds, if any.
	Build string
}

func (v ServerVersion) String() string {
	s := v.Edition + " v" + v.Version
	if v.Build != "" {
		s += "-" + v.Build
	}
	return strings.TrimSpace(s)
}

// ParseServerVersion parses strings such as "CE v1.478.1" or
// "EE v1.478.1-12-gabc".
func ParseServerVersion(s string) (ServerVersion, error) {
	s = strings.Trim(strings.TrimSpace(s), `"`)
	var out ServerVersion
	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
	case 2:
		out.Edition = fields[0]
	default:
		return out, fmt.Errorf("parsing version %q: unexpected format", s)
	}
	num := strings.TrimPrefix(fields[len(fields)-1], "v")
	if i := strings.IndexByte(num, '-'); i >= 0 {
		num, out.Build = num[:i], num[i+1:]
	}
	if _, err := strconv.Atoi(strings.Split(num, ".")[0]); err != nil {
		return out, fmt.Errorf("parsing version %q: no numeric release", s)
	}
	out.Version = num
	return out, nil
}

// ServerVersion fetches and parses the server version.
func (c *Client) ServerVersion(ctx context.Context) (ServerVersion, error) {
	raw, err := c.GetVersion(ctx)
	if err != nil {
		return ServerVersion{}, err
	}
	return ParseServerVersion(raw)
}

// CheckCompatibility compares the server release with APIVersion. It returns
// -1 when the server is older than this binding, 0 when equal and 1 when
// newer.
func (c *Client) CheckCompatibility(ctx context.Context) (ServerVersion, int, error) {
	v, err := c.ServerVersion(ctx)
	if err != nil {
		return v, 0, err
	}
	return v, CompareVersions(v.Version, APIVersion), nil
}

// CompareVersions orders two releases: -1 if a < b, 0 if equal, 1 if a > b.
// Either side may carry an edition, a "v" prefix or a build suffix, so
// "EE v1.478.1-12-gabc" equals "1.478.1". Missing trailing components count
// as zero.
func CompareVersions(a, b string) int {
	return slices.Compare(releaseParts(a), releaseParts(b))
}

// VersionAtLeast reports whether version >= min. An empty side is treated as
// satisfied.
func VersionAtLeast(version, min string) bool {
	if version == "" || min == "" {
		return true
	}
	return CompareVersions(version, min) >= 0
}

// releaseParts returns the numeric components of a release with trailing
// zeros dropped. Parsing stops at the first non-numeric component.
func releaseParts(v string) []int {
	if f := strings.Fields(v); len(f) > 0 {
		v = f[len(f)-1]
	}
	v, _, _ = strings.Cut(strings.TrimPrefix(v, "v"), "-")
	var parts []int
	for _, p := range strings.Split(v, ".") {
		n, err := strconv.Atoi(p)
		if err != nil {
			break
		}
		parts = append(parts, n)
	}
	for len(parts) > 0 && parts[len(parts)-1] == 0 {
		parts = parts[:len(parts)-1]
	}
	return parts
}
