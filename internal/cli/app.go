package cli

import (
	"context"

	"github.com/alexanderramin/rickshaw/internal/config"
	"github.com/alexanderramin/rickshaw/internal/service"
)

// App holds configuration and services shared by every command.
type App struct {
	Config config.Config
	Quotes service.QuoteService

	// Observer receives screen and service events. Nil disables logging.
	Observer service.UseCaseObserver

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) observe(name string, fields map[string]any) {
	if a.Observer == nil {
		return
	}
	a.Observer.ObserveUseCase(context.Background(), service.UseCaseEvent{
		Name:    name,
		Success: true,
		Fields:  fields,
	})
}
