package factory

import (
	"github.com/ecstatic-morse/zmk/config"
	"github.com/ecstatic-morse/zmk/kscan/matrix"
)

func MatrixFromConfig(conf config.Config) (*matrix.State, *matrix.Renderer) {
	state := matrix.New(conf.Kscan.Rows, conf.Kscan.Cols)
	renderer := matrix.NewRenderer(state, conf.UI.Cell)

	if conf.UI.Font != "" {
		err := renderer.LoadFont(conf.UI.Font)
		if err != nil {
			l.Warn().Println("load snapshot font:", err)
		}
	}

	return state, renderer
}
