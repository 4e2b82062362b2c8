// Package i18n localizes launchkit's user-facing CLI messages.
package i18n

import (
	"encoding/json"
	"errors"
	"io/fs"

	"github.com/egoavara/launchkit/internal/debuglog"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
)

// Init loads every message file under locales/ in the given filesystem and
// builds a localizer for lang. Files that fail to load are logged and
// reported in the returned error, but do not abort startup; T falls back
// to message IDs for anything missing.
func Init(localeFS fs.FS, lang string) error {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	paths, err := fs.Glob(localeFS, "locales/*.json")
	if err != nil {
		return err
	}

	var loadErrs []error
	for _, path := range paths {
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			debuglog.Printf("i18n: load %s: %v", path, err)
			loadErrs = append(loadErrs, err)
		}
	}

	localizer = i18n.NewLocalizer(bundle, lang)
	return errors.Join(loadErrs...)
}

// T translates a message by its ID with optional template data and plural
// count. Untranslatable IDs are returned as-is.
func T(messageID string, templateData map[string]interface{}, pluralCount ...int) string {
	config := &i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: templateData,
	}
	if len(pluralCount) > 0 {
		config.PluralCount = pluralCount[0]
	}

	msg, err := localizer.Localize(config)
	if err != nil {
		return messageID
	}
	return msg
}
