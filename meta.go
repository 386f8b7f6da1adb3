package ucf

import "strings"

const metaPrefix = MetaInfDir + "/"

// MetaView addresses members of the reserved META-INF directory by their
// name inside it: Get("container.xml") reads META-INF/container.xml. It is
// a view over the container's own storage, not a copy.
type MetaView struct {
	c *Container
}

// Get returns the payload at META-INF/name.
func (m MetaView) Get(name string) ([]byte, error) {
	return m.c.Get(metaPrefix + name)
}

// Set inserts or replaces the payload at META-INF/name.
func (m MetaView) Set(name string, data []byte) error {
	return m.c.Set(metaPrefix+name, data)
}

// Delete removes the member at META-INF/name.
func (m MetaView) Delete(name string) error {
	return m.c.Delete(metaPrefix + name)
}

// Has reports whether META-INF/name exists.
func (m MetaView) Has(name string) bool {
	return m.c.Has(metaPrefix + name)
}

// Names returns META-INF member names without the directory prefix, in
// container order.
func (m MetaView) Names() []string {
	var names []string
	for _, name := range m.c.names {
		if strings.HasPrefix(name, metaPrefix) {
			names = append(names, strings.TrimPrefix(name, metaPrefix))
		}
	}
	return names
}
