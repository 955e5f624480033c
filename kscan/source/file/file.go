package file

import (
	"bufio"
	"errors"
	"github.com/allape/gogger"
	"github.com/ecstatic-morse/zmk/kscan/source"
	"io"
	"os"
	"sync"
)

var l = gogger.New("kscan.source.file")

// StdinSrc selects standard input instead of a file on disk.
const StdinSrc = "-"

type FileSource struct {
	source.Source

	openLocker sync.Locker

	Src string

	file   *os.File
	reader *bufio.Reader
}

func (s *FileSource) Open() error {
	s.openLocker.Lock()
	defer s.openLocker.Unlock()

	if s.reader != nil {
		return errors.New("source already open")
	}

	if s.Src == StdinSrc {
		s.reader = bufio.NewReader(os.Stdin)
		l.Info().Println("reading commands from stdin")
		return nil
	}

	file, err := os.Open(s.Src)
	if err != nil {
		return err
	}
	s.file = file
	s.reader = bufio.NewReader(file)

	l.Info().Println("opened", s.Src)

	return nil
}

func (s *FileSource) Close() error {
	s.openLocker.Lock()
	defer s.openLocker.Unlock()

	s.reader = nil
	if s.file == nil {
		return nil
	}

	err := s.file.Close()
	s.file = nil
	return err
}

func (s *FileSource) ReadByte() (byte, error) {
	if s.reader == nil {
		if err := s.Open(); err != nil {
			return 0, err
		}
	}

	b, err := s.reader.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, source.ErrNoData
		}
		l.Error().Println("read error:", err)
		return 0, err
	}

	return b, nil
}

func New(src string) source.Source {
	return &FileSource{
		openLocker: &sync.Mutex{},
		Src:        src,
	}
}
