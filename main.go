package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/egoavara/launchkit/cmd"
	"github.com/egoavara/launchkit/internal/config"
	"github.com/egoavara/launchkit/internal/i18n"
	"github.com/jeandeaual/go-locale"
)

//go:embed locales/*.json
var localeFS embed.FS

func main() {
	if err := i18n.Init(localeFS, detectLocale()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: locale files failed to load: %v\n", err)
	}
	cmd.Execute()
}

// detectLocale resolves the effective language tag. A fixed locale from the
// config file wins; "auto" asks the operating system, with en-US as the
// fallback when detection fails.
func detectLocale() string {
	configured := config.GetLocale()
	if configured != "" && configured != "auto" {
		return configured
	}

	userLocale, err := locale.GetLocale()
	if err != nil || userLocale == "" {
		return "en-US"
	}
	return userLocale
}
