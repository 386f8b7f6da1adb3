package ucf

import (
	"archive/zip"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/flate"
)

// Encode writes c to w as a UCF zip archive.
//
// The container is prepared and checked before writing:
//   - The staged rootfiles are rebuilt into META-INF/container.xml
//   - Member names are validated and checked for case-insensitive conflicts
//   - The mimetype member must exist and its payload must be ASCII
//
// The mimetype member is always written first, with the Store method and
// no extra header fields, so its payload begins at byte offset 38 of the
// archive. All other members follow in container order using the
// configured compression (Deflate by default), except members matched by
// WithStoredPatterns, which are stored raw.
//
// Member modification times default to the zip epoch, so saving an
// unchanged container twice produces byte-identical archives. Use
// WithModTime to stamp a real timestamp.
//
// Encode returns ErrMissingMimetype when no mimetype member exists (unless
// WithAllowMissingMimetype is set), ErrEncoding for a non-ASCII mimetype,
// ErrInvalidName or ErrDuplicateName for bad member names, and
// ErrInvalidPattern for stored-pattern rules that do not compile.
func Encode(w io.Writer, c *Container, opts ...WriteOption) error {
	cfg := writeConfig{
		compression: CompressionDeflate,
		level:       flate.DefaultCompression,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if c == nil {
		return ErrNilContainer
	}
	switch cfg.compression {
	case CompressionStore, CompressionDeflate, CompressionZstd:
	default:
		return fmt.Errorf("%w: %d", ErrUnknownCompression, cfg.compression)
	}

	if err := c.reconcileRootfiles(); err != nil {
		return err
	}

	for _, name := range c.names {
		if err := validateMemberName(name); err != nil {
			return err
		}
	}
	if err := checkNameConflicts(c.names); err != nil {
		return err
	}

	mimetype, ok := c.data[MimetypePath]
	if !ok && !cfg.allowNoMimetype {
		return ErrMissingMimetype
	}
	if ok && !isASCII(mimetype) {
		return fmt.Errorf("%w: mimetype must be ASCII", ErrEncoding)
	}

	matcher, err := newStoredMatcher(cfg.storedRules, cfg.storedOpts)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)
	registerCompressors(zw, cfg)

	if ok {
		// First member, stored, zero timestamp, no extra fields: a naive
		// reader finds the media type at byte offset 38.
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:   MimetypePath,
			Method: zip.Store,
		})
		if err != nil {
			_ = zw.Close()
			return err
		}
		if _, err := fw.Write(mimetype); err != nil {
			_ = zw.Close()
			return err
		}
	}

	for _, name := range c.names {
		if name == MimetypePath {
			continue
		}
		fh := &zip.FileHeader{
			Name:   name,
			Method: memberMethod(cfg, matcher, name),
		}
		if !cfg.modTime.IsZero() {
			fh.Modified = cfg.modTime
		}
		fw, err := zw.CreateHeader(fh)
		if err != nil {
			_ = zw.Close()
			return err
		}
		if _, err := fw.Write(c.data[name]); err != nil {
			_ = zw.Close()
			return err
		}
	}
	return zw.Close()
}

// memberMethod picks the zip method for one non-mimetype member.
func memberMethod(cfg writeConfig, matcher *storedMatcher, name string) uint16 {
	if cfg.compression == CompressionStore || matcher.Match(name) {
		return zip.Store
	}
	return uint16(cfg.compression)
}

// reconcileRootfiles rebuilds META-INF/container.xml from the staged
// rootfile records. The member is rewritten whenever records are staged or
// a descriptor already exists, so the two never diverge after a save; a
// bare container gains no META-INF member.
func (c *Container) reconcileRootfiles() error {
	if len(c.rootfiles) == 0 && !c.Has(ContainerPath) {
		return nil
	}
	body, err := buildContainerXML(c.rootfiles)
	if err != nil {
		return err
	}
	return c.Set(ContainerPath, body)
}

// SaveFile writes the container to the file at path and remembers path as
// the default Save destination.
func (c *Container) SaveFile(path string, opts ...WriteOption) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, c, opts...); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	c.path = path
	return nil
}

// Save writes the container back to the path it was opened from or last
// saved to. It fails with ErrNoDestination when the container has never
// been bound to a path.
func (c *Container) Save(opts ...WriteOption) error {
	if c.path == "" {
		return ErrNoDestination
	}
	return c.SaveFile(c.path, opts...)
}
