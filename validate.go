package ucf

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// illegalNameChars are characters UCF forbids in member names. Forward
// slash is not among them: it is the directory separator.
const illegalNameChars = "\"*:<>?\\"

// validateMemberName checks one archive member name against the UCF naming
// rules.
func validateMemberName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if strings.HasSuffix(name, ".") {
		return fmt.Errorf("%w: %q must not end with a period", ErrInvalidName, name)
	}
	if strings.ContainsAny(name, illegalNameChars) {
		return fmt.Errorf("%w: %q contains a forbidden character", ErrInvalidName, name)
	}
	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			return fmt.Errorf("%w: %q contains a control character", ErrInvalidName, name)
		}
	}
	return nil
}

// checkNameConflicts verifies that no two member names collide when
// compared case-insensitively after NFKD normalization, which is how
// case-insensitive filesystems will see them once extracted.
func checkNameConflicts(names []string) error {
	seen := make(map[string]string, len(names))
	for _, name := range names {
		folded := strings.ToLower(norm.NFKD.String(name))
		if prev, ok := seen[folded]; ok {
			return fmt.Errorf("%w: %q and %q", ErrDuplicateName, prev, name)
		}
		seen[folded] = name
	}
	return nil
}

// encodeASCII converts s to bytes, rejecting non-ASCII characters.
func encodeASCII(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return nil, fmt.Errorf("%w: non-ASCII character in %q", ErrEncoding, s)
		}
	}
	return []byte(s), nil
}

// isASCII reports whether data contains only ASCII bytes.
func isASCII(data []byte) bool {
	for _, b := range data {
		if b > 0x7f {
			return false
		}
	}
	return true
}
