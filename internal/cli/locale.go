package cli

import (
	"github.com/alexanderramin/rickshaw/internal/cli/formatter"
	"github.com/alexanderramin/rickshaw/internal/estimator"
	"github.com/alexanderramin/rickshaw/internal/i18n"
)

func (a *App) locale(lang i18n.Language) formatter.Locale {
	return formatter.Locale{Lang: lang, Numbers: a.Config.Formatter()}
}

// snapshot captures the controller for rendering.
func snapshot(c *estimator.Controller, trackWidth int) formatter.EstimateView {
	return formatter.EstimateView{
		Distance:     c.Distance(),
		Repayment:    c.Repayment(),
		MaxDistance:  c.MaxDistance(),
		Position:     c.SliderPosition(),
		Band:         c.Band(),
		Tariff:       c.Tariff(),
		SliderActive: c.SliderActive(),
		TrackWidth:   trackWidth,
	}
}
