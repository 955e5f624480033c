package serialport

import (
	"errors"
	"github.com/allape/gogger"
	"github.com/ecstatic-morse/zmk/kscan/source"
	"go.bug.st/serial"
	"sync"
)

var l = gogger.New("kscan.source.serialport")

type SerialPortSource struct {
	source.Source

	openLocker sync.Locker

	Port serial.Port

	Name string
	Baud int

	buf [1]byte
}

func (s *SerialPortSource) Open() error {
	s.openLocker.Lock()
	defer s.openLocker.Unlock()

	if s.Port != nil {
		return errors.New("port already open")
	}

	mode := &serial.Mode{
		BaudRate: s.Baud,
	}
	port, err := serial.Open(s.Name, mode)
	if err != nil {
		return err
	}
	s.Port = port

	l.Info().Println("opened", s.Name)

	return nil
}

func (s *SerialPortSource) Close() error {
	s.openLocker.Lock()
	defer s.openLocker.Unlock()

	if s.Port == nil {
		return nil
	}

	err := s.Port.Close()
	s.Port = nil
	return err
}

func (s *SerialPortSource) ReadByte() (byte, error) {
	if s.Port == nil {
		if err := s.Open(); err != nil {
			return 0, err
		}
	}

	n, err := s.Port.Read(s.buf[:])
	if err != nil {
		l.Error().Println("read error:", err)
		return 0, err
	}
	if n == 0 {
		l.Warn().Println("EOF")
		return 0, source.ErrNoData
	}

	return s.buf[0], nil
}

func New(name string, baud int) source.Source {
	return &SerialPortSource{
		openLocker: &sync.Mutex{},
		Name:       name,
		Baud:       baud,
	}
}
