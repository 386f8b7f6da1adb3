package ucf

import "errors"

var (
	ErrNotArchive         = errors.New("ucf: not a valid zip archive")
	ErrMalformedContainer = errors.New("ucf: malformed container.xml")
	ErrNotFound           = errors.New("ucf: entry not found")
	ErrEncoding           = errors.New("ucf: invalid encoding")
	ErrInvalidName        = errors.New("ucf: invalid member name")
	ErrDuplicateName      = errors.New("ucf: conflicting member names")
	ErrMissingMimetype    = errors.New("ucf: missing mimetype member")
	ErrNoDestination      = errors.New("ucf: no save destination")
	ErrInvalidPattern     = errors.New("ucf: invalid stored patterns")
	ErrUnknownCompression = errors.New("ucf: unknown compression method")
	ErrNilContainer       = errors.New("ucf: container is nil")
	ErrLimitExceeded      = errors.New("ucf: limit exceeded")
)
