package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rickshaw/internal/i18n"
	"github.com/spf13/pflag"
)

// languageFlag is a strict --lang flag. Unlike the dictionary lookup it
// rejects unknown values instead of falling back.
type languageFlag struct {
	lang i18n.Language
}

var _ pflag.Value = (*languageFlag)(nil)

func newLanguageFlag(def i18n.Language) *languageFlag {
	return &languageFlag{lang: i18n.ParseLanguage(string(def))}
}

func (f *languageFlag) String() string { return string(f.lang) }

func (f *languageFlag) Set(s string) error {
	l := i18n.Language(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return fmt.Errorf("unsupported language %q (want %s or %s)", s, i18n.English, i18n.Urdu)
	}
	f.lang = l
	return nil
}

func (f *languageFlag) Type() string { return "language" }

func (f *languageFlag) Language() i18n.Language { return f.lang }
