package guard

import (
	"fmt"

	"github.com/containerd/platforms"
	ispec "github.com/opencontainers/image-spec/specs-go/v1"
)

// CurrentPlatform returns the platform of the running binary.
func CurrentPlatform() ispec.Platform {
	return platforms.DefaultSpec()
}

// ParsePlatforms parses "os[/arch[/variant]]" specifiers.
func ParsePlatforms(specifiers ...string) ([]ispec.Platform, error) {
	out := make([]ispec.Platform, 0, len(specifiers))
	for _, s := range specifiers {
		p, err := platforms.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("parse platform %q: %w", s, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// PlatformNotSupported fails with KindPlatformNotSupported when current
// matches none of the supported platforms. Matching normalizes architecture
// aliases, so "linux/x86_64" satisfies "linux/amd64". An empty supported set
// matches nothing.
//
// The failure is fatal: callers are expected to stop rather than retry.
func PlatformNotSupported(current ispec.Platform, supported []ispec.Platform, opts ...Option) error {
	for _, p := range supported {
		if platforms.NewMatcher(p).Match(current) {
			return nil
		}
	}
	return newFailure(KindPlatformNotSupported, opts)
}
