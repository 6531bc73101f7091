package app

import (
	"github.com/aspk74/auto-apply/internal/applog"
	"github.com/aspk74/auto-apply/internal/config"
	"github.com/aspk74/auto-apply/internal/usecase"
)

type Container struct {
	Config    config.Config
	Analytics *usecase.Analytics
}

func NewContainer(cfg config.Config) *Container {
	ledger := fileLedger{path: cfg.Paths.LogPath}
	return &Container{
		Config:    cfg,
		Analytics: usecase.NewAnalytics(ledger),
	}
}

// fileLedger re-reads the application log on every load so the dashboard
// always reflects what the apply workflow has committed.
type fileLedger struct {
	path string
}

func (l fileLedger) Load() ([]applog.Entry, error) {
	log, err := applog.Open(l.path)
	if err != nil {
		return nil, err
	}
	return log.Entries(), nil
}
