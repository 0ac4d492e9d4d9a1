//go:build js && wasm

package canvas

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"syscall/js"

	"github.com/esimov/pagefx/effects"
)

const rainbowKeyframes = `
@keyframes rainbow {
	0% { filter: hue-rotate(0deg); }
	100% { filter: hue-rotate(360deg); }
}`

// Page wires the decorative effects of the portfolio page.
type Page struct {
	window js.Value
	doc    js.Value
	trail  effects.Trail
}

// NewPage binds to the current document.
func NewPage() *Page {
	w := js.Global()
	return &Page{window: w, doc: w.Get("document")}
}

// Trail exposes the cursor trail so other pointer sources can move it.
func (p *Page) Trail() *effects.Trail {
	return &p.trail
}

// Init attaches every page effect. Missing elements are skipped.
func (p *Page) Init(ctx context.Context) {
	p.navigation()
	p.scrolling()
	p.filters()
	p.parallax()
	p.glow()
	p.cursorTrail(ctx)
	p.easterEgg()
	p.typing()

	listen(p.window, "load", func(js.Value) {
		p.reveal()
		p.highlight()
		log.Println("page effects loaded")
	})
}

func (p *Page) innerHeight() float64 {
	return p.window.Get("innerHeight").Float()
}

func (p *Page) navigation() {
	toggle := p.doc.Call("getElementById", "navToggle")
	menu := p.doc.Call("getElementById", "navMenu")
	if toggle.IsNull() || menu.IsNull() {
		return
	}
	listen(toggle, "click", func(js.Value) {
		menu.Get("classList").Call("toggle", "active")
	})
	each(p.doc, ".nav-link", func(link js.Value) {
		listen(link, "click", func(js.Value) {
			menu.Get("classList").Call("remove", "active")
		})
	})
	each(p.doc, `a[href^="#"]`, func(a js.Value) {
		listen(a, "click", func(ev js.Value) {
			ev.Call("preventDefault")
			href := a.Call("getAttribute", "href").String()
			if href == "#" {
				return
			}
			target := p.doc.Call("querySelector", href)
			if target.IsNull() {
				return
			}
			opts := map[string]interface{}{"behavior": "smooth", "block": "start"}
			target.Call("scrollIntoView", opts)
		})
	})
}

func (p *Page) scrolling() {
	navbar := p.doc.Call("querySelector", ".navbar")
	var counted effects.Once

	listen(p.window, "scroll", func(js.Value) {
		scrollY := p.window.Get("scrollY").Float()
		if !navbar.IsNull() {
			st := effects.NavBackground(scrollY)
			navbar.Get("style").Set("background", st.Background)
			navbar.Get("style").Set("boxShadow", st.Shadow)
		}
		p.reveal()
		p.highlight()

		about := p.doc.Call("getElementById", "about")
		if about.IsNull() {
			return
		}
		if counted.Fire(effects.Reveal(boundsOf(about).Top, p.innerHeight())) {
			p.counters()
		}
	})
	p.reveal()
}

func (p *Page) reveal() {
	h := p.innerHeight()
	each(p.doc, ".section-reveal", func(s js.Value) {
		if effects.Reveal(boundsOf(s).Top, h) {
			s.Get("classList").Call("add", "visible")
		}
	})
}

func (p *Page) highlight() {
	var sections []effects.Section
	each(p.doc, "section[id]", func(s js.Value) {
		sections = append(sections, effects.Section{
			ID:  s.Call("getAttribute", "id").String(),
			Top: s.Get("offsetTop").Float(),
		})
	})
	current := effects.ActiveSection(p.window.Get("scrollY").Float(), sections)
	each(p.doc, ".nav-link", func(link js.Value) {
		link.Get("classList").Call("remove", "active")
		if link.Call("getAttribute", "href").String() == "#"+current {
			link.Get("classList").Call("add", "active")
		}
	})
}

func (p *Page) counters() {
	each(p.doc, ".stat-number", func(stat js.Value) {
		target, err := strconv.Atoi(stat.Call("getAttribute", "data-target").String())
		if err != nil {
			log.Printf("bad counter target: %v", err)
			return
		}
		c := effects.NewCounter(target)
		ctx, cancel := context.WithCancel(context.Background())
		Every(ctx, func() {
			v, more := c.Step()
			stat.Set("textContent", v)
			if !more {
				cancel()
			}
		})
	})
}

func (p *Page) filters() {
	buttons := p.doc.Call("querySelectorAll", ".filter-btn")
	each(p.doc, ".filter-btn", func(btn js.Value) {
		listen(btn, "click", func(js.Value) {
			for i := 0; i < buttons.Length(); i++ {
				buttons.Index(i).Get("classList").Call("remove", "active")
			}
			btn.Get("classList").Call("add", "active")

			filter := btn.Call("getAttribute", "data-filter").String()
			each(p.doc, ".publication-item", func(item js.Value) {
				style := item.Get("style")
				if effects.Filter(filter, item.Call("getAttribute", "data-category").String()) {
					style.Set("display", "grid")
					style.Set("animation", "fadeInUp 0.5s ease")
				} else {
					style.Set("display", "none")
				}
			})
		})
	})
}

func (p *Page) parallax() {
	hero := p.doc.Call("querySelector", ".hero")
	img := p.doc.Call("querySelector", ".hero-image")
	if hero.IsNull() || img.IsNull() {
		return
	}
	listen(hero, "mousemove", func(ev js.Value) {
		pt := newPointer(ev)
		dx, dy := effects.Parallax(pt.X, pt.Y, p.window.Get("innerWidth").Float(), p.innerHeight())
		img.Get("style").Set("transform", effects.Translate(dx, dy))
	})
}

func (p *Page) glow() {
	each(p.doc, ".card-hover", func(card js.Value) {
		listen(card, "mousemove", func(ev js.Value) {
			glow := card.Call("querySelector", ".card-glow")
			if glow.IsNull() {
				return
			}
			pt, r := newPointer(ev), boundsOf(card)
			glow.Get("style").Set("background", effects.Glow(pt.X-r.Left, pt.Y-r.Top))
		})
	})
}

func (p *Page) cursorTrail(ctx context.Context) {
	dot := p.doc.Call("createElement", "div")
	dot.Get("style").Set("cssText", fmt.Sprintf(`
		position: fixed;
		width: %[1]gpx;
		height: %[1]gpx;
		border-radius: 50%%;
		background: radial-gradient(circle, rgba(0, 217, 255, 0.3), transparent);
		pointer-events: none;
		z-index: 9999;
		transition: transform 0.1s ease;`, effects.TrailSize))
	p.doc.Get("body").Call("appendChild", dot)

	listen(p.doc, "mousemove", func(ev js.Value) {
		pt := newPointer(ev)
		p.trail.Point(pt.X, pt.Y)
	})
	Every(ctx, func() {
		p.trail.Step()
		x, y := p.trail.Corner()
		dot.Get("style").Set("left", fmt.Sprintf("%gpx", x))
		dot.Get("style").Set("top", fmt.Sprintf("%gpx", y))
	})
}

func (p *Page) easterEgg() {
	seq := effects.NewSequence(effects.Konami)
	body := p.doc.Get("body")

	listen(p.doc, "keydown", func(ev js.Value) {
		if !seq.Push(ev.Get("key").String()) {
			return
		}
		body.Get("style").Set("animation", "rainbow 2s infinite")
		style := p.doc.Call("createElement", "style")
		style.Set("textContent", rainbowKeyframes)
		p.doc.Get("head").Call("appendChild", style)

		setTimeout(func() {
			body.Get("style").Set("animation", "")
			style.Call("remove")
		}, int(effects.RainbowDuration.Milliseconds()))
		log.Println("easter egg found")
	})
}

func (p *Page) typing() {
	el := p.doc.Call("querySelector", ".typing-text")
	if el.IsNull() {
		return
	}
	text := []rune(el.Get("textContent").String())
	el.Set("textContent", "")

	var i int
	var next func()
	next = func() {
		if i >= len(text) {
			return
		}
		i++
		el.Set("textContent", string(text[:i]))
		setTimeout(next, 100)
	}
	setTimeout(next, 500)
}
