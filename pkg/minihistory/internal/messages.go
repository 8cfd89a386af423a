package internal

import (
	"embed"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs, matching the keys in locales/*.toml.
const (
	MsgForwardNotImplemented = "ForwardNotImplemented"
	MsgHostNotPatchable      = "HostNotPatchable"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
)

func getBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			GetLogger().Error("Failed to read embedded locales", "error", err)
			return
		}
		for _, e := range entries {
			if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+e.Name()); err != nil {
				GetLogger().Error("Failed to load locale", "file", e.Name(), "error", err)
			}
		}
	})
	return bundle
}

// Localizer renders messages for one language.
type Localizer struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// NewLocalizer builds a localizer for a BCP 47 tag such as "zh-CN". Empty or
// unparsable tags fall back to English.
func NewLocalizer(locale string) *Localizer {
	tag, err := language.Parse(locale)
	if err != nil || locale == "" {
		tag = language.English
	}
	return &Localizer{
		tag:       tag,
		localizer: i18n.NewLocalizer(getBundle(), tag.String()),
	}
}

// Tag returns the requested language.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Message renders id, falling back to the id itself when no translation exists.
func (l *Localizer) Message(id string) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil || msg == "" {
		return id
	}
	return msg
}
