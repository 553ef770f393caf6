package i18n

import "strings"

// Translations is the fixed set of display strings for one language.
type Translations struct {
	Title                 string
	KmSuffix              string
	EstimatedRepayment    string
	RepaymentHint         string
	MonthlyKilometersA11y string
	CurrencySuffix        string
	ToggleLanguageA11y    string
	PerMonthSuffix        string
	InfoSlideText         string
	SeeExamples           string
	IntroSlideText        string
	ToggleLabel           string
	PinnedLabel           string
	HistoryTitle          string
	HistoryEmpty          string
	EnterDistance         string

	TariffTitle       string
	SettingHeader     string
	ValueHeader       string
	FixedFeeLabel     string
	RatePerKmLabel    string
	MinRepaymentLabel string
	MaxRepaymentLabel string
	FloorUntilLabel   string
	CappedFromLabel   string
	SliderMaxLabel    string
	SliderMidLabel    string
	StepLabel         string
	MonthsHeader      string
	TimeHeader        string
	LoadingLabel      string
}

var translations = map[Language]Translations{
	English: {
		Title:                 "Rickshaw App - Repayment Estimator",
		KmSuffix:              "km",
		EstimatedRepayment:    "Estimated Repayment",
		RepaymentHint:         "Repayment caps at XX Rs (YY km). Additional slider range is a visual buffer.",
		MonthlyKilometersA11y: "Monthly kilometers",
		CurrencySuffix:        "Rs",
		ToggleLanguageA11y:    "Toggle language",
		PerMonthSuffix:        "per month",
		InfoSlideText:         "If you pay Rs. XX per month, your contract will end in YY months.",
		SeeExamples:           "See Examples",
		IntroSlideText:        "Swipe through these examples to see how your monthly payment changes the length of your contract.",
		ToggleLabel:           "اردو",
		PinnedLabel:           "Estimate saved",
		HistoryTitle:          "Saved Estimates",
		HistoryEmpty:          "No saved estimates yet.",
		EnterDistance:         "Monthly kilometers",

		TariffTitle:       "Tariff",
		SettingHeader:     "Setting",
		ValueHeader:       "Value",
		FixedFeeLabel:     "Fixed fee",
		RatePerKmLabel:    "Rate per km",
		MinRepaymentLabel: "Minimum repayment",
		MaxRepaymentLabel: "Maximum repayment",
		FloorUntilLabel:   "Floor until",
		CappedFromLabel:   "Capped from",
		SliderMaxLabel:    "Slider maximum",
		SliderMidLabel:    "Slider midpoint",
		StepLabel:         "Step",
		MonthsHeader:      "Months",
		TimeHeader:        "Time",
		LoadingLabel:      "Loading...",
	},
	Urdu: {
		Title:                 "رکشہ ایپ - ادائیگی تخمینہ",
		KmSuffix:              "کلومیٹر",
		EstimatedRepayment:    "متوقع ادائیگی",
		RepaymentHint:         "ادائیگی کی حد XX روپے (YY کلومیٹر) ہے۔ سلائیڈر کی اضافی حد صرف بصری آسانی کے لیے ہے۔",
		MonthlyKilometersA11y: "ماہانہ کلومیٹر",
		CurrencySuffix:        "روپے",
		ToggleLanguageA11y:    "زبان تبدیل کریں",
		PerMonthSuffix:        "ماہانہ",
		InfoSlideText:         "اگر آپ ماہانہ XX روپے ادا کرتے ہیں، تو آپ کا معاہدہ YY ماہ میں ختم ہو جائے گا۔",
		SeeExamples:           "مثالیں دیکھیں",
		IntroSlideText:        "ان مثالوں سے دیکھیں کہ آپ کی ماہانہ ادائیگی آپ کے معاہدے کی مدت کو کیسے بدلتی ہے۔",
		ToggleLabel:           "EN",
		PinnedLabel:           "تخمینہ محفوظ ہو گیا",
		HistoryTitle:          "محفوظ شدہ تخمینے",
		HistoryEmpty:          "ابھی کوئی تخمینہ محفوظ نہیں ہوا۔",
		EnterDistance:         "ماہانہ کلومیٹر",

		TariffTitle:       "نرخ نامہ",
		SettingHeader:     "ترتیب",
		ValueHeader:       "قدر",
		FixedFeeLabel:     "مقررہ فیس",
		RatePerKmLabel:    "فی کلومیٹر شرح",
		MinRepaymentLabel: "کم از کم ادائیگی",
		MaxRepaymentLabel: "زیادہ سے زیادہ ادائیگی",
		FloorUntilLabel:   "کم از کم حد تک",
		CappedFromLabel:   "حد شروع",
		SliderMaxLabel:    "سلائیڈر کی انتہا",
		SliderMidLabel:    "سلائیڈر کا وسط",
		StepLabel:         "قدم",
		MonthsHeader:      "مہینے",
		TimeHeader:        "وقت",
		LoadingLabel:      "لوڈ ہو رہا ہے...",
	},
}

// Get returns the dictionary for lang. Unknown languages get the Urdu dictionary.
func Get(lang Language) Translations {
	if t, ok := translations[lang]; ok {
		return t
	}
	return translations[DefaultLanguage]
}

const (
	PaymentPlaceholder  = "XX"
	DurationPlaceholder = "YY"
)

// FillHint substitutes the repayment cap and the distance it is reached at
// into the repayment hint.
func FillHint(tmpl, maxRepayment, ceiling string) string {
	return FillSlide(tmpl, maxRepayment, ceiling)
}

// FillSlide substitutes the first payment and duration placeholders in tmpl.
func FillSlide(tmpl, payment, duration string) string {
	out := strings.Replace(tmpl, PaymentPlaceholder, payment, 1)
	return strings.Replace(out, DurationPlaceholder, duration, 1)
}
