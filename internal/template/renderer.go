package template

import (
	"math/rand"
	"regexp"
	"strings"
	"sync"
)

// maxFollowUpQuestions bounds the number of questions appended to a
// partial reply so the user is not overwhelmed.
const defaultMaxFollowUps = 2

var placeholderRe = regexp.MustCompile(`\{([a-z_]+)\}`)

// Renderer picks response variants and fills slot placeholders.
// The random source is injected so tests and replays are deterministic.
type Renderer struct {
	mu           sync.Mutex
	rng          *rand.Rand
	maxFollowUps int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSeed makes variant selection deterministic.
func WithSeed(seed int64) Option {
	return func(r *Renderer) {
		r.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxFollowUps overrides the follow-up question cap.
func WithMaxFollowUps(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.maxFollowUps = n
		}
	}
}

// NewRenderer creates a renderer with a time-seeded random source.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		rng:          rand.New(rand.NewSource(rand.Int63())),
		maxFollowUps: defaultMaxFollowUps,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render produces the reply for an analyzed turn. Missing slots yield a
// partial variant with follow-up questions; otherwise a complete variant
// is filled from params.
func (r *Renderer) Render(intent string, params map[string][]string, missing []string) string {
	if len(missing) > 0 {
		return r.renderFollowUp(intent, missing)
	}
	return r.renderComplete(intent, params)
}

// Clarification returns a low-confidence fallback reply.
func (r *Renderer) Clarification() string {
	return r.pick(clarificationResponses)
}

// Greeting returns a greeting reply.
func (r *Renderer) Greeting() string {
	return r.pick(greetingResponses)
}

// Goodbye returns a goodbye reply.
func (r *Renderer) Goodbye() string {
	return r.pick(goodbyeResponses)
}

// Error returns an apology used when turn processing fails.
func (r *Renderer) Error() string {
	return r.pick(errorResponses)
}

func (r *Renderer) renderFollowUp(intent string, missing []string) string {
	base := fallbackPartial
	if c, ok := intentCatalogs[intent]; ok && len(c.partial) > 0 {
		base = r.pick(c.partial)
	}

	var questions []string
	for _, slot := range missing {
		if len(questions) >= r.maxFollowUps {
			break
		}
		variants, ok := followUpQuestions[slot]
		if !ok {
			continue
		}
		questions = append(questions, r.pick(variants))
	}
	if len(questions) == 0 {
		return base
	}

	var b strings.Builder
	b.WriteString(base)
	b.WriteString("\n\n")
	for i, q := range questions {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("• ")
		b.WriteString(q)
	}
	return b.String()
}

func (r *Renderer) renderComplete(intent string, params map[string][]string) string {
	c, ok := intentCatalogs[intent]
	if !ok || len(c.complete) == 0 {
		return fallbackComplete
	}
	return fill(r.pick(c.complete), params)
}

// fill substitutes {slot} placeholders with comma-joined values.
// A template referencing a slot with no value is returned verbatim, so
// the user never sees a half-filled reply.
func fill(template string, params map[string][]string) string {
	for _, m := range placeholderRe.FindAllStringSubmatch(template, -1) {
		if len(params[m[1]]) == 0 {
			return template
		}
	}
	return placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		slot := strings.Trim(match, "{}")
		return strings.Join(params[slot], ", ")
	})
}

func (r *Renderer) pick(variants []string) string {
	if len(variants) == 0 {
		return ""
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return variants[r.rng.Intn(len(variants))]
}
