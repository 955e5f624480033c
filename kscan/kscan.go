package kscan

// Callback receives one synthesized matrix event.
// Invocations never overlap; see the scheduling model of the ptty driver.
type Callback func(row, col int, pressed bool)

type Event struct {
	Row     int  `json:"row"`
	Col     int  `json:"col"`
	Pressed bool `json:"pressed"`
}

// Driver is a keyboard-matrix scanner.
//
// Configure must be called exactly once before events can fire; it registers
// the callback and arms the scanner. Enable and Disable start and stop
// scanning without touching the registered callback.
type Driver interface {
	Open() error
	Close() error

	Configure(callback Callback) error
	Enable() error
	Disable() error
}
