package i18n

import (
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	arabicThousandsSeparator = "٬"
	rightToLeftIsolate       = "\u2067"
	popDirectionalIsolate    = "\u2069"
)

// urduDigits follows the app's glyph choices: 4 and 6 use the Arabic-Indic
// forms, which render consistently in Nastaliq fonts.
var urduDigits = [10]rune{'۰', '۱', '۲', '۳', '٤', '۵', '٦', '۷', '۸', '۹'}

// NumberFormatter renders integers for display. Internal computation never
// uses its output.
type NumberFormatter struct {
	// NativeDigits transliterates Urdu output to Urdu-script digits. When
	// false, Urdu output keeps ASCII digits and the Latin comma.
	NativeDigits bool
}

// Format groups thousands and, for Urdu with NativeDigits, transliterates
// digits and isolates the result as right-to-left text.
func (f NumberFormatter) Format(n int, lang Language) string {
	base := humanize.Comma(int64(n))
	if ParseLanguage(string(lang)) != Urdu || !f.NativeDigits {
		return base
	}
	return rightToLeftIsolate + strings.ReplaceAll(ToUrduDigits(base), ",", arabicThousandsSeparator) + popDirectionalIsolate
}

// ToUrduDigits transliterates ASCII digits one by one, leaving every other
// rune untouched.
func ToUrduDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return urduDigits[r-'0']
		}
		return r
	}, s)
}
