package ucf

// Reserved member paths defined by the UCF specification.
const (
	// MimetypePath is the name of the media-type member. When present it is
	// always written as the first archive member, stored without compression.
	MimetypePath = "mimetype"

	// MetaInfDir is the reserved metadata directory.
	MetaInfDir = "META-INF"

	// ContainerFile is the container descriptor file name inside META-INF.
	ContainerFile = "container.xml"

	// ContainerPath is the full path of the container descriptor.
	ContainerPath = MetaInfDir + "/" + ContainerFile
)

// DefaultMimetype is the media type New seeds a fresh container with.
const DefaultMimetype = "application/octet-stream"

// ContainerNS is the OASIS namespace of the container.xml root element.
const ContainerNS = "urn:oasis:names:tc:opendocument:xmlns:container"

// Compression selects the zip method used for non-mimetype members on
// encode. Values equal the zip compression method identifiers they map to;
// Zstandard is method 93 per APPNOTE 6.3.8.
type Compression uint16

const (
	CompressionStore   Compression = 0
	CompressionDeflate Compression = 8
	CompressionZstd    Compression = 93
)

// Rootfile is one (full-path, media-type) record from container.xml. It
// points a reader at a primary document of the package.
type Rootfile struct {
	FullPath  string
	MediaType string
}

// Entry is one archive member: a container-relative path and its payload.
type Entry struct {
	Path string
	Data []byte
}
