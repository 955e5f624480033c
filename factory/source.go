package factory

import (
	"fmt"
	"github.com/ecstatic-morse/zmk/config"
	"github.com/ecstatic-morse/zmk/kscan/source"
	"github.com/ecstatic-morse/zmk/kscan/source/file"
	"github.com/ecstatic-morse/zmk/kscan/source/serialport"
)

const DefaultBaud = 115200

func SourceFromConfig(conf config.Config) (src source.Source, err error) {
	switch conf.Source.Type {
	case config.SourceNone:
		l.Warn().Println("command source is none, no events will be synthesized")
	case config.SourceSerialPort:
		l.Info().Println("command source is serial port:", conf.Source.Src)
		baud, err := config.SerialPortExt(conf.Source.Ext).GetBaud(DefaultBaud)
		if err != nil {
			return nil, err
		}
		src = serialport.New(conf.Source.Src, baud)
	case config.SourceFile:
		l.Info().Println("command source is file:", conf.Source.Src)
		src = file.New(conf.Source.Src)
	default:
		return nil, fmt.Errorf("unknown command source: %s", conf.Source.Type)
	}

	if src != nil {
		err = src.Open()
		if err != nil {
			l.Error().Println("open command source:", err)
			return nil, err
		}
	}

	return src, nil
}
