package factory

import (
	"errors"
	"github.com/ecstatic-morse/zmk/config"
	"github.com/ecstatic-morse/zmk/kscan"
	"github.com/ecstatic-morse/zmk/kscan/ptty"
	"github.com/ecstatic-morse/zmk/kscan/source"
	"time"
)

func KscanFromConfig(conf config.Config, src source.Source) (kscan.Driver, error) {
	if src == nil {
		return nil, errors.New("kscan driver requires a command source")
	}

	l.Info().Printf("kscan event period is %dms, exit_after is %t", conf.Kscan.EventPeriod, conf.Kscan.ExitAfter)

	return ptty.New(src, ptty.Config{
		EventPeriod: time.Duration(conf.Kscan.EventPeriod) * time.Millisecond,
		ExitAfter:   conf.Kscan.ExitAfter,
	}), nil
}
