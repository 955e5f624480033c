package config

import (
	"github.com/ecstatic-morse/zmk/logger"
	"github.com/pelletier/go-toml/v2"
	"os"
)

var log = logger.New("[config]")

const DefaultConfigPath = "kscan.toml"

type SourceDriverType string

const (
	SourceNone       SourceDriverType = "none"
	SourceSerialPort SourceDriverType = "serialport"
	SourceFile       SourceDriverType = "file"
)

type Server struct {
	Addr string `toml:"addr"`
	Cors bool   `toml:"cors"`
}

type Source struct {
	Type SourceDriverType `toml:"type"`
	Src  string           `toml:"src"`
	Ext  TagString        `toml:"ext"`
}

type Kscan struct {
	// EventPeriod
	// Delay in milliseconds between two synthesized key events.
	EventPeriod int `toml:"event_period"`
	// ExitAfter
	// Exit with code 0 once the command stream is exhausted.
	ExitAfter bool `toml:"exit_after"`
	Rows      int  `toml:"rows"`
	Cols      int  `toml:"cols"`
}

type UI struct {
	// Font
	// Optional path to a TTF file used for matrix snapshot labels.
	Font string `toml:"font"`
	// Cell
	// Edge length in pixels of one matrix cell in the snapshot.
	Cell int `toml:"cell"`
}

type Config struct {
	Server Server `toml:"server"`
	Source Source `toml:"source"`
	Kscan  Kscan  `toml:"kscan"`
	UI     UI     `toml:"ui"`
}

func GetConfig() (Config, error) {
	configFile := DefaultConfigPath
	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}

	log.Println("reading config file:", configFile)

	config := Config{
		Server: Server{
			Addr: ":8080",
		},
		Source: Source{
			Type: SourceNone,
		},
		Kscan: Kscan{
			EventPeriod: 30,
			ExitAfter:   false,
			Rows:        8,
			Cols:        16,
		},
		UI: UI{
			Cell: 40,
		},
	}

	_, err := os.Stat(configFile)
	if err != nil {
		return config, err
	}

	configData, err := os.ReadFile(configFile)
	if err != nil {
		return config, err
	}

	err = toml.Unmarshal(configData, &config)
	if err != nil {
		return config, err
	}

	log.Println("use config:", config)

	return config, nil
}
