package matrix

import (
	"github.com/allape/gogger"
	"sync"
	"time"
)

var l = gogger.New("kscan.matrix")

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Snapshot struct {
	Rows      int        `json:"rows"`
	Cols      int        `json:"cols"`
	Pressed   []Position `json:"pressed"`
	Events    uint64     `json:"events"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// State tracks which keys of a rows-by-cols matrix are currently down. It is
// an event sink: Apply matches the scanner callback signature.
type State struct {
	locker sync.Locker

	rows, cols int
	down       []bool
	events     uint64
	updatedAt  time.Time
}

func New(rows, cols int) *State {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &State{
		locker: &sync.Mutex{},
		rows:   rows,
		cols:   cols,
		down:   make([]bool, rows*cols),
	}
}

func (s *State) Rows() int { return s.rows }
func (s *State) Cols() int { return s.cols }

// Apply records one scanner event. Coordinates outside the matrix are
// dropped; bounds checking is this sink's job, not the scanner's.
func (s *State) Apply(row, col int, pressed bool) {
	s.locker.Lock()
	defer s.locker.Unlock()

	s.events++
	s.updatedAt = time.Now()

	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		l.Warn().Printf("event outside %dx%d matrix: row %d col %d", s.rows, s.cols, row, col)
		return
	}

	s.down[row*s.cols+col] = pressed
}

func (s *State) IsPressed(row, col int) bool {
	s.locker.Lock()
	defer s.locker.Unlock()

	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return false
	}
	return s.down[row*s.cols+col]
}

func (s *State) Snapshot() Snapshot {
	s.locker.Lock()
	defer s.locker.Unlock()

	snapshot := Snapshot{
		Rows:      s.rows,
		Cols:      s.cols,
		Pressed:   []Position{},
		Events:    s.events,
		UpdatedAt: s.updatedAt,
	}
	for i, down := range s.down {
		if down {
			snapshot.Pressed = append(snapshot.Pressed, Position{Row: i / s.cols, Col: i % s.cols})
		}
	}

	return snapshot
}
