package app

import "github.com/Veraticus/acefi/internal/model"

// Slide is one onboarding page.
type Slide struct {
	Title string
	Text  string
}

// Slides are shown in order on first launch.
var Slides = []Slide{
	{Title: "Welcome to AceFi", Text: "Your AI-powered crypto exchange assistant"},
	{Title: "Easy Trading", Text: "Trade cryptocurrencies with simple voice commands"},
	{Title: "Smart Insights", Text: "Get AI-powered market insights and recommendations"},
}

// Onboarding walks through Slides and then replaces itself with sign-up.
type Onboarding struct {
	nav   *Navigator
	index int
	done  bool
}

// NewOnboarding starts on the first slide.
func NewOnboarding(nav *Navigator) *Onboarding {
	return &Onboarding{nav: nav}
}

// Slide returns the current slide.
func (o *Onboarding) Slide() Slide {
	return Slides[o.index]
}

// Index returns the zero-based position of the current slide.
func (o *Onboarding) Index() int {
	return o.index
}

// IsLast reports whether the current slide is the final one.
func (o *Onboarding) IsLast() bool {
	return o.index == len(Slides)-1
}

// ButtonLabel is the caption of the advance button.
func (o *Onboarding) ButtonLabel() string {
	if o.IsLast() {
		return "Get Started"
	}
	return "Next"
}

// Next advances to the next slide, completing onboarding after the last.
func (o *Onboarding) Next() {
	if o.done {
		return
	}
	if !o.IsLast() {
		o.index++
		return
	}
	o.complete()
}

// Skip completes onboarding from any slide.
func (o *Onboarding) Skip() {
	if !o.done {
		o.complete()
	}
}

// Done reports whether onboarding has completed.
func (o *Onboarding) Done() bool {
	return o.done
}

func (o *Onboarding) complete() {
	o.done = true
	o.nav.Replace(model.Route{Name: model.RouteSignUp})
}
