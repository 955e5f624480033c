package ptty

import (
	"errors"
	"github.com/ecstatic-morse/zmk/kscan/source"
)

// MaxCmdLen bounds one command line, terminator included.
const MaxCmdLen = 128

// ErrOverflow is reported when a line exceeds MaxCmdLen-1 characters without
// a terminator. The truncated line is returned alongside it for diagnostics.
var ErrOverflow = errors.New("command line too long")

// readLine assembles one command line from src.
//
// Both '\n' and NUL end a line. A POSIX PTY keeps delivering NUL once stdin
// is exhausted instead of reporting end-of-stream, so a terminator seen with
// nothing accumulated classifies as source.ErrNoData, never as an empty line.
func readLine(src source.Source) (string, error) {
	buf := make([]byte, 0, MaxCmdLen)

	for {
		c, err := src.ReadByte()
		if err != nil {
			if errors.Is(err, source.ErrNoData) {
				if len(buf) == 0 {
					return "", source.ErrNoData
				}
				// Stream ran dry mid-line, deliver what is there.
				return string(buf), nil
			}
			return "", err
		}

		if c == '\n' || c == 0 {
			if len(buf) == 0 {
				return "", source.ErrNoData
			}
			return string(buf), nil
		}

		if len(buf) >= MaxCmdLen-1 {
			return string(buf), ErrOverflow
		}
		buf = append(buf, c)
	}
}
