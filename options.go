package ucf

import (
	"time"

	"github.com/woozymasta/pathrules"
)

type readConfig struct {
	limits Limits
}

type ReadOption func(*readConfig)

func WithReadLimits(l Limits) ReadOption {
	return func(c *readConfig) { c.limits = l }
}

type writeConfig struct {
	compression     Compression
	level           int
	modTime         time.Time
	allowNoMimetype bool
	storedRules     []pathrules.Rule
	storedOpts      pathrules.MatcherOptions
}

type WriteOption func(*writeConfig)

// WithCompression selects the zip method used for non-mimetype members.
// The default is CompressionDeflate. The mimetype member is always stored
// raw regardless of this setting.
func WithCompression(comp Compression) WriteOption {
	return func(c *writeConfig) { c.compression = comp }
}

// WithCompressionLevel sets the Deflate level (flate.BestSpeed through
// flate.BestCompression). Ignored for other compression methods.
func WithCompressionLevel(level int) WriteOption {
	return func(c *writeConfig) { c.level = level }
}

// WithModTime stamps every written member with a fixed modification time.
// By default members carry no timestamp, so saving an unchanged container
// twice produces byte-identical archives.
func WithModTime(t time.Time) WriteOption {
	return func(c *writeConfig) { c.modTime = t }
}

// WithAllowMissingMimetype lets Encode write an archive without a mimetype
// member. Such archives are not valid UCF; this exists for packages still
// under construction.
func WithAllowMissingMimetype(v bool) WriteOption {
	return func(c *writeConfig) { c.allowNoMimetype = v }
}

// WithStoredPatterns marks members matching the rules as compression
// exempt: they are written with the Store method regardless of
// WithCompression. Useful for already-compressed media such as images.
func WithStoredPatterns(rules []pathrules.Rule) WriteOption {
	return func(c *writeConfig) { c.storedRules = rules }
}

// WithStoredMatcherOptions controls stored-pattern rule matching.
func WithStoredMatcherOptions(opts pathrules.MatcherOptions) WriteOption {
	return func(c *writeConfig) { c.storedOpts = opts }
}
