package model

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers keep state, so a new one is created for each call.

func lowerKey(s string) string {
	return cases.Lower(language.Und).String(s)
}

func foldKey(s string) string {
	return cases.Fold().String(s)
}
