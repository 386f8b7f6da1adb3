package ucf

type Limits struct {
	MaxEntries   int
	MaxNameLen   int
	MaxEntrySize uint64 // uncompressed bytes per member
	MaxTotalSize uint64 // uncompressed bytes across all members
}

func defaultLimits() Limits {
	return Limits{
		MaxEntries:   65_536,
		MaxNameLen:   1024,
		MaxEntrySize: 1 << 30, // 1 GiB
		MaxTotalSize: 4 << 30, // 4 GiB
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxEntries == 0 {
		l.MaxEntries = d.MaxEntries
	}
	if l.MaxNameLen == 0 {
		l.MaxNameLen = d.MaxNameLen
	}
	if l.MaxEntrySize == 0 {
		l.MaxEntrySize = d.MaxEntrySize
	}
	if l.MaxTotalSize == 0 {
		l.MaxTotalSize = d.MaxTotalSize
	}
	return l
}
