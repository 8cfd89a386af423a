// Package config holds the subset of the mini-program app configuration that
// history needs: the page list and the tab bar.
//
// The same structure is accepted as TOML, YAML or the host's native app.json.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrEmptyPagePath is returned by Validate for a tab item without a page.
var ErrEmptyPagePath = errors.New("config: tab bar item has empty pagePath")

// AppConfig mirrors the fields of app.json that affect navigation.
type AppConfig struct {
	Pages  []string `json:"pages" toml:"pages" yaml:"pages"`
	TabBar *TabBar  `json:"tabBar,omitempty" toml:"tabBar" yaml:"tabBar"`
}

// TabBar is the fixed set of top-level destinations.
type TabBar struct {
	Color           string       `json:"color,omitempty" toml:"color" yaml:"color"`
	SelectedColor   string       `json:"selectedColor,omitempty" toml:"selectedColor" yaml:"selectedColor"`
	BackgroundColor string       `json:"backgroundColor,omitempty" toml:"backgroundColor" yaml:"backgroundColor"`
	List            []TabBarItem `json:"list" toml:"list" yaml:"list" validate:"min=2,max=5,dive"`
}

// TabBarItem is a single tab. PagePath has no leading slash, same as page routes.
type TabBarItem struct {
	PagePath         string `json:"pagePath" toml:"pagePath" yaml:"pagePath" validate:"required,excludes=?"`
	Text             string `json:"text,omitempty" toml:"text" yaml:"text"`
	IconPath         string `json:"iconPath,omitempty" toml:"iconPath" yaml:"iconPath"`
	SelectedIconPath string `json:"selectedIconPath,omitempty" toml:"selectedIconPath" yaml:"selectedIconPath"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// TabPagePaths returns the tab page paths in declaration order.
// A nil config or one without a tab bar has none.
func (c *AppConfig) TabPagePaths() []string {
	if c == nil || c.TabBar == nil {
		return nil
	}
	paths := make([]string, 0, len(c.TabBar.List))
	for _, item := range c.TabBar.List {
		paths = append(paths, item.PagePath)
	}
	return paths
}

// Validate checks the tab bar against the host's rules. Leading slashes are
// rejected because routes reported by the host never carry one.
func (c *AppConfig) Validate() error {
	if c == nil {
		return nil
	}
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Field() == "PagePath" && fe.Tag() == "required" {
					return ErrEmptyPagePath
				}
			}
		}
		return fmt.Errorf("config: %w", err)
	}
	for _, p := range c.TabPagePaths() {
		if strings.HasPrefix(p, "/") {
			return fmt.Errorf("config: tab pagePath %q must not start with /", p)
		}
	}
	return nil
}
