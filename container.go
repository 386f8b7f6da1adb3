package ucf

import (
	"fmt"
	"slices"
)

// Container is an ordered collection of archive members keyed by path,
// together with the derived mimetype, META-INF, and rootfiles views. Member
// order is insertion order; replacing a payload keeps the member's position.
//
// A Container holds no open resources between operations and is not safe
// for concurrent use; callers must serialize access themselves.
type Container struct {
	names     []string
	data      map[string][]byte
	rootfiles []Rootfile
	path      string // default save destination, set by Open and SaveFile
}

// New returns an empty container seeded with DefaultMimetype.
func New() *Container {
	c := &Container{data: make(map[string][]byte)}
	c.SetMimetypeBytes([]byte(DefaultMimetype))
	return c
}

// NewWithMimetype returns an empty container seeded with the given media
// type. It fails with ErrEncoding when mediaType is not ASCII.
func NewWithMimetype(mediaType string) (*Container, error) {
	c := &Container{data: make(map[string][]byte)}
	if err := c.SetMimetype(mediaType); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns the payload stored at path. It fails with ErrNotFound when
// no member exists there.
func (c *Container) Get(path string) ([]byte, error) {
	data, ok := c.data[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return data, nil
}

// Set inserts or replaces the payload at path. A replace keeps the
// member's position; an insert appends after all existing members. The
// name is checked against the UCF naming rules.
func (c *Container) Set(path string, data []byte) error {
	if err := validateMemberName(path); err != nil {
		return err
	}
	if _, ok := c.data[path]; !ok {
		c.names = append(c.names, path)
	}
	c.data[path] = data
	return nil
}

// Delete removes the member at path. It fails with ErrNotFound when no
// member exists there.
func (c *Container) Delete(path string) error {
	if _, ok := c.data[path]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	delete(c.data, path)
	c.names = slices.DeleteFunc(c.names, func(n string) bool { return n == path })
	return nil
}

// Has reports whether a member exists at path.
func (c *Container) Has(path string) bool {
	_, ok := c.data[path]
	return ok
}

// Names returns all member paths in insertion order.
func (c *Container) Names() []string {
	return slices.Clone(c.names)
}

// Len returns the number of members.
func (c *Container) Len() int {
	return len(c.names)
}

// Entries returns all members in insertion order. Payloads are not copied.
func (c *Container) Entries() []Entry {
	entries := make([]Entry, 0, len(c.names))
	for _, name := range c.names {
		entries = append(entries, Entry{Path: name, Data: c.data[name]})
	}
	return entries
}

// Mimetype returns the payload of the reserved mimetype member. It fails
// with ErrNotFound when the member is absent.
func (c *Container) Mimetype() ([]byte, error) {
	return c.Get(MimetypePath)
}

// SetMimetype stores mediaType as the mimetype member. Media types are
// ASCII by definition; other text fails with ErrEncoding. The member's
// position is normalized to the front only at encode time.
func (c *Container) SetMimetype(mediaType string) error {
	data, err := encodeASCII(mediaType)
	if err != nil {
		return err
	}
	return c.Set(MimetypePath, data)
}

// SetMimetypeBytes stores raw bytes as the mimetype member.
func (c *Container) SetMimetypeBytes(data []byte) {
	// MimetypePath is always a valid member name.
	_ = c.Set(MimetypePath, data)
}

// Meta returns the META-INF sub-view.
func (c *Container) Meta() MetaView {
	return MetaView{c: c}
}

// Rootfiles returns a copy of the staged rootfile records, in order.
func (c *Container) Rootfiles() []Rootfile {
	return slices.Clone(c.rootfiles)
}

// SetRootfiles replaces the staged rootfile records. The records are
// reconciled into META-INF/container.xml at encode time.
func (c *Container) SetRootfiles(records []Rootfile) {
	c.rootfiles = slices.Clone(records)
}

// AddRootfile appends one rootfile record.
func (c *Container) AddRootfile(fullPath, mediaType string) {
	c.rootfiles = append(c.rootfiles, Rootfile{FullPath: fullPath, MediaType: mediaType})
}

// RemoveRootfile removes the first staged record whose FullPath equals
// fullPath. It fails with ErrNotFound when no record matches.
func (c *Container) RemoveRootfile(fullPath string) error {
	for i, rf := range c.rootfiles {
		if rf.FullPath == fullPath {
			c.rootfiles = slices.Delete(c.rootfiles, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("%w: rootfile %s", ErrNotFound, fullPath)
}
