package minihistory

import (
	"log/slog"
	"sync"

	"github.com/BrandonKowalski/minihistory/pkg/minihistory/config"
	"github.com/BrandonKowalski/minihistory/pkg/minihistory/host"
	"github.com/BrandonKowalski/minihistory/pkg/minihistory/router"
)

// tabBar resolves the tab page index on first use and keeps it for the life
// of the history. Sources, in order: Options.AppConfig, Options.AppConfigPath,
// then the host itself if it implements host.AppConfigSource.
type tabBar struct {
	once   sync.Once
	index  *router.TabIndex
	opts   Options
	host   host.Host
	logger *slog.Logger
}

func newTabBar(h host.Host, opts Options, logger *slog.Logger) *tabBar {
	return &tabBar{opts: opts, host: h, logger: logger}
}

func (t *tabBar) get() *router.TabIndex {
	t.once.Do(func() {
		cfg := t.resolveConfig()
		t.index = router.NewTabIndex(cfg.TabPagePaths())
		t.logger.Debug("Resolved tab bar", "tabs", t.index.Len())
	})
	return t.index
}

func (t *tabBar) resolveConfig() *config.AppConfig {
	if t.opts.AppConfig != nil {
		return t.opts.AppConfig
	}

	if t.opts.AppConfigPath != "" {
		cfg, err := config.LoadFile(t.opts.AppConfigPath)
		if err == nil {
			return cfg
		}
		t.logger.Error("Failed to load app config, assuming no tab bar", "path", t.opts.AppConfigPath, "error", err)
		return nil
	}

	if src, ok := t.host.(host.AppConfigSource); ok {
		return src.AppConfig()
	}
	return nil
}

func (t *tabBar) IsTabPage(route string) bool {
	return t.get().IsTabPage(route)
}

func (t *tabBar) MatchURL(url string) bool {
	return t.get().MatchURL(url)
}
