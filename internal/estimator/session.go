package estimator

import (
	"math"

	"github.com/alexanderramin/rickshaw/internal/i18n"
)

// Session is the screen-level UI state: language and the examples overlay.
// Transitions are pure functions returning the next Session.
type Session struct {
	Language     i18n.Language
	ExamplesOpen bool
	ActiveSlide  int
	SlideCount   int
}

// NewSession starts closed on the first slide. slideCount includes the
// introductory slide.
func NewSession(lang i18n.Language, slideCount int) Session {
	return Session{
		Language:   i18n.ParseLanguage(string(lang)),
		SlideCount: max(slideCount, 1),
	}
}

func (s Session) ToggleLanguage() Session {
	s.Language = s.Language.Toggle()
	return s
}

// OpenExamples shows the overlay from the introductory slide.
func (s Session) OpenExamples() Session {
	s.ExamplesOpen = true
	s.ActiveSlide = 0
	return s
}

func (s Session) CloseExamples() Session {
	s.ExamplesOpen = false
	return s
}

func (s Session) NextSlide() Session {
	return s.GoToSlide(s.ActiveSlide + 1)
}

func (s Session) PrevSlide() Session {
	return s.GoToSlide(s.ActiveSlide - 1)
}

// GoToSlide clamps page into the valid slide range.
func (s Session) GoToSlide(page int) Session {
	s.ActiveSlide = min(max(page, 0), s.SlideCount-1)
	return s
}

// ScrollTo derives the visible slide from a horizontal scroll offset. A
// non-positive page width carries no information and leaves s unchanged.
func (s Session) ScrollTo(offset, pageWidth float64) Session {
	if pageWidth <= 0 || math.IsNaN(offset) || math.IsInf(offset, 0) {
		return s
	}
	return s.GoToSlide(int(math.Round(offset / pageWidth)))
}
