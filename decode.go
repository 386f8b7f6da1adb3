package ucf

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// Decode reads a UCF container from r.
//
// The decoding process:
//  1. Opens the byte source as a zip archive
//  2. Populates the container with each member in archive order
//  3. Parses META-INF/container.xml, when present, into the rootfiles view
//
// Directory members (names ending in "/") carry no payload and are
// skipped. A duplicate member name keeps its first position and its last
// payload. An archive missing the mimetype member or the container
// descriptor still decodes; structural requirements are enforced at encode
// time.
//
// Decode returns ErrNotArchive if the bytes are not a zip archive,
// ErrMalformedContainer if the container descriptor cannot be parsed, and
// ErrLimitExceeded if the archive exceeds the configured read limits.
func Decode(r io.ReaderAt, size int64, opts ...ReadOption) (*Container, error) {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotArchive, err)
	}
	registerDecompressors(zr)

	if len(zr.File) > cfg.limits.MaxEntries {
		return nil, fmt.Errorf("%w: %d members", ErrLimitExceeded, len(zr.File))
	}

	c := &Container{data: make(map[string][]byte, len(zr.File))}
	var total uint64
	for _, f := range zr.File {
		if strings.HasSuffix(f.Name, "/") {
			continue
		}
		if len(f.Name) > cfg.limits.MaxNameLen {
			return nil, fmt.Errorf("%w: member name of %d bytes", ErrLimitExceeded, len(f.Name))
		}
		if f.UncompressedSize64 > cfg.limits.MaxEntrySize {
			return nil, fmt.Errorf("%w: member %s declares %d bytes", ErrLimitExceeded, f.Name, f.UncompressedSize64)
		}
		total += f.UncompressedSize64
		if total > cfg.limits.MaxTotalSize {
			return nil, fmt.Errorf("%w: total uncompressed size", ErrLimitExceeded)
		}
		data, err := readMember(f, cfg.limits.MaxEntrySize)
		if err != nil {
			return nil, err
		}
		if _, ok := c.data[f.Name]; !ok {
			c.names = append(c.names, f.Name)
		}
		c.data[f.Name] = data
	}

	if raw, ok := c.data[ContainerPath]; ok {
		records, err := parseRootfiles(raw)
		if err != nil {
			return nil, err
		}
		c.rootfiles = records
	}
	return c, nil
}

// readMember extracts one member payload, bounded by max to defend against
// members whose declared size understates their content.
func readMember(f *zip.File, max uint64) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrNotArchive, f.Name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(io.LimitReader(rc, int64(max)+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrNotArchive, f.Name, err)
	}
	if uint64(len(data)) > max {
		return nil, fmt.Errorf("%w: member %s expanded beyond declared size", ErrLimitExceeded, f.Name)
	}
	return data, nil
}

// DecodeBytes reads a UCF container from an in-memory archive.
func DecodeBytes(data []byte, opts ...ReadOption) (*Container, error) {
	return Decode(bytes.NewReader(data), int64(len(data)), opts...)
}

// Open reads a UCF container from the file at path and remembers path as
// the default Save destination.
func Open(path string, opts ...ReadOption) (*Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	c, err := Decode(f, info.Size(), opts...)
	if err != nil {
		return nil, err
	}
	c.path = path
	return c, nil
}
