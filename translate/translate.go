// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats the user visible messages of the emulator
// in the language of the host.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// DEFAULT_LOCALE is used when the host reports no locale.
const DEFAULT_LOCALE = "en-US"

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("zvm: locale: %v", err)
	}

	Select(locales...)
}

// Select the message printer for the first supported locale of the list.
// An empty list selects DEFAULT_LOCALE.
func Select(locales ...string) {
	if len(locales) == 0 {
		locales = []string{DEFAULT_LOCALE}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
