package ucf

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/woozymasta/pathrules"
)

// zstdMethod is the zip compression method identifier for Zstandard.
const zstdMethod = uint16(CompressionZstd)

// Function variables for testing injection.
var (
	newFlateWriter = func(w io.Writer, level int) (io.WriteCloser, error) { return flate.NewWriter(w, level) }
	newZstdWriter  = func(w io.Writer) (io.WriteCloser, error) { return zstd.NewWriter(w) }
)

// registerCompressors wires the klauspost Deflate implementation into zw,
// plus the Zstandard method 93 encoder when that method is selected.
func registerCompressors(zw *zip.Writer, cfg writeConfig) {
	level := cfg.level
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return newFlateWriter(w, level)
	})
	if cfg.compression == CompressionZstd {
		zw.RegisterCompressor(zstdMethod, func(w io.Writer) (io.WriteCloser, error) {
			return newZstdWriter(w)
		})
	}
}

// registerDecompressors lets zr open Zstandard members regardless of how
// the archive will be re-saved.
func registerDecompressors(zr *zip.Reader) {
	zr.RegisterDecompressor(zstdMethod, func(r io.Reader) io.ReadCloser {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return errReadCloser{err: err}
		}
		return dec.IOReadCloser()
	})
}

type errReadCloser struct{ err error }

func (e errReadCloser) Read([]byte) (int, error) { return 0, e.err }
func (e errReadCloser) Close() error             { return nil }

// storedMatcher holds compiled rules selecting members that must be
// written without compression.
type storedMatcher struct {
	matcher *pathrules.Matcher
}

// newStoredMatcher compiles the stored-pattern rules. A nil matcher means
// no member is exempt from compression.
func newStoredMatcher(rules []pathrules.Rule, opts pathrules.MatcherOptions) (*storedMatcher, error) {
	if len(rules) == 0 {
		return nil, nil
	}
	if opts.DefaultAction == pathrules.ActionUnknown {
		opts.DefaultAction = pathrules.ActionExclude
	}
	matcher, err := pathrules.NewMatcher(rules, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return &storedMatcher{matcher: matcher}, nil
}

// Match reports whether the member at path must be stored raw.
func (m *storedMatcher) Match(path string) bool {
	if m == nil || m.matcher == nil {
		return false
	}
	return m.matcher.Included(path, false)
}

// compressionName returns a printable name for a compression method.
func compressionName(comp Compression) string {
	switch comp {
	case CompressionStore:
		return "store"
	case CompressionDeflate:
		return "deflate"
	case CompressionZstd:
		return "zstd"
	default:
		return "unknown"
	}
}
