package i18n

import (
	"context"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Translator resolves message keys against the built-in catalogue.
// Unknown keys are returned as-is so plain English messages pass through.
type Translator struct {
	fallback  language.Tag
	supported []language.Tag
	matcher   language.Matcher
	cat       *catalog.Builder

	mu       sync.RWMutex
	printers map[language.Tag]*message.Printer
}

// New builds a translator with fallback as the default language ("en" if empty)
func New(fallback string) *Translator {
	fb, err := language.Parse(fallback)
	if err != nil || fallback == "" {
		fb = language.English
	}

	b := catalog.NewBuilder(catalog.Fallback(fb))
	for tag, msgs := range messages {
		for key, text := range msgs {
			_ = b.SetString(tag, key, text)
		}
	}

	supported := []language.Tag{fb}
	for _, tag := range b.Languages() {
		if tag != fb {
			supported = append(supported, tag)
		}
	}

	return &Translator{
		fallback:  fb,
		supported: supported,
		matcher:   language.NewMatcher(supported),
		cat:       b,
		printers:  make(map[language.Tag]*message.Printer),
	}
}

// Resolve maps a requested language ("en", "en-US", "") onto a supported tag
func (t *Translator) Resolve(lang string) language.Tag {
	if lang == "" {
		return t.fallback
	}
	_, idx, conf := t.matcher.Match(language.Make(lang))
	if conf == language.No {
		return t.fallback
	}
	return t.supported[idx]
}

// T translates key for lang
func (t *Translator) T(lang, key string) string {
	return t.printer(t.Resolve(lang)).Sprintf(key)
}

// TCtx translates key using the language stored on ctx
func (t *Translator) TCtx(ctx context.Context, key string) string {
	return t.T(LangFrom(ctx), key)
}

func (t *Translator) printer(tag language.Tag) *message.Printer {
	t.mu.RLock()
	p, ok := t.printers[tag]
	t.mu.RUnlock()
	if ok {
		return p
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if p, ok = t.printers[tag]; ok {
		return p
	}
	p = message.NewPrinter(tag, message.Catalog(t.cat))
	t.printers[tag] = p
	return p
}

// ==================== context ====================

type langKey struct{}

// WithLang stores the request language on ctx
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, langKey{}, lang)
}

// LangFrom returns the request language or ""
func LangFrom(ctx context.Context) string {
	if lang, ok := ctx.Value(langKey{}).(string); ok {
		return lang
	}
	return ""
}
