// Package translate localizes the diagnostics printed by the assembler.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// DefaultLocale is used when no user locale is known.
const DefaultLocale = "en-US"

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("carbonasm: locale: %v", err)
	}

	Use(locales...)
}

// Use selects the message language from locale names, most preferred first.
func Use(locales ...string) {
	if len(locales) == 0 {
		locales = []string{DefaultLocale}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From formats an en-US Sprintf() style key in the selected language.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
