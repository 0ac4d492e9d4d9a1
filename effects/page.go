package effects

import "fmt"

const (
	// ParallaxStrength is the maximum offset in pixels at either side.
	ParallaxStrength = 20.0
	// RevealThreshold is the viewport fraction a section has to cross.
	RevealThreshold = 0.75
	// SectionOffset is the scroll lead before a section counts as active.
	SectionOffset = 200.0
	// NavScrolled is the scroll offset past which the navbar turns opaque.
	NavScrolled = 100.0
)

// Parallax returns the hero image offset for a pointer at {x, y}
// in a {w, h} viewport.
func Parallax(x, y, w, h float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	return (x/w - 0.5) * ParallaxStrength, (y/h - 0.5) * ParallaxStrength
}

// Translate formats an offset as a CSS transform.
func Translate(dx, dy float64) string {
	return fmt.Sprintf("translate(%gpx, %gpx)", dx, dy)
}

// Filter reports whether an item of category is shown under filter.
func Filter(filter, category string) bool {
	return filter == "all" || filter == category
}

// Reveal reports whether a section whose top edge is at top is visible enough.
func Reveal(top, viewportH float64) bool {
	return top < viewportH*RevealThreshold
}

// Section is a page anchor with its offset from the document top.
type Section struct {
	ID  string
	Top float64
}

// ActiveSection returns the id of the last section scrolled into.
func ActiveSection(scrollY float64, sections []Section) string {
	var current string
	for _, s := range sections {
		if scrollY >= s.Top-SectionOffset {
			current = s.ID
		}
	}
	return current
}

// NavStyle is the navbar look for a scroll position.
type NavStyle struct {
	Background string
	Shadow     string
}

// NavBackground returns the navbar style at scrollY.
func NavBackground(scrollY float64) NavStyle {
	if scrollY > NavScrolled {
		return NavStyle{
			Background: "rgba(10, 14, 39, 0.95)",
			Shadow:     "0 5px 20px rgba(0, 217, 255, 0.1)",
		}
	}
	return NavStyle{
		Background: "rgba(10, 14, 39, 0.8)",
		Shadow:     "none",
	}
}

// Glow returns the card glow gradient centred on {x, y}.
func Glow(x, y float64) string {
	return fmt.Sprintf("radial-gradient(circle at %gpx %gpx, rgba(0, 217, 255, 0.2), transparent 50%%)", x, y)
}
