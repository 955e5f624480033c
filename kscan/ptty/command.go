package ptty

import (
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidCommand = errors.New("invalid command")

type opKind byte

const (
	opPress   opKind = 'p'
	opRelease opKind = 'r'
	opWait    opKind = 'w'
)

// command is one decoded script line.
type command struct {
	op   opKind
	row  int
	col  int
	wait int // milliseconds, opWait only
}

// parseCommand decodes one line of the command script:
//
//	p <row> [<col>]   press the key at row/col, col defaults to 0
//	r <row> [<col>]   release the key at row/col
//	w <ms>            delay the next command by <ms> milliseconds
//
// Row and col are forwarded uninterpreted; matrix bounds are the sink's
// concern, not the parser's.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || len(fields[0]) != 1 {
		return command{}, ErrInvalidCommand
	}

	args := make([]int, 0, len(fields)-1)
	for _, field := range fields[1:] {
		n, err := strconv.Atoi(field)
		if err != nil {
			return command{}, ErrInvalidCommand
		}
		args = append(args, n)
	}

	cmd := command{op: opKind(fields[0][0])}
	switch cmd.op {
	case opPress, opRelease:
		switch len(args) {
		case 1:
			cmd.row = args[0]
		case 2:
			cmd.row, cmd.col = args[0], args[1]
		default:
			return command{}, ErrInvalidCommand
		}
	case opWait:
		if len(args) != 1 {
			return command{}, ErrInvalidCommand
		}
		cmd.wait = args[0]
	default:
		return command{}, ErrInvalidCommand
	}

	return cmd, nil
}
