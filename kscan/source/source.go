package source

import "errors"

// ErrNoData is reported by ReadByte when the source has nothing to deliver.
// A source may report it persistently once exhausted.
var ErrNoData = errors.New("no data available")

// Source delivers the command stream one byte at a time.
//
// ReadByte returns the next byte, or ErrNoData when the stream is idle or
// exhausted. Any other error is a transport fault. Some transports (a POSIX
// PTY among them) never report ErrNoData and instead deliver NUL bytes
// forever once the stream runs dry; callers must treat NUL as an idle marker.
type Source interface {
	Open() error
	ReadByte() (byte, error)
	Close() error
}
