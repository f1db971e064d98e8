package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestTranslator_KnownKey(t *testing.T) {
	tr := New("en")
	assert.Equal(t, "Brand fetched successfully.", tr.T("en", "brand._brand_fetched_successfully"))
}

func TestTranslator_UnknownLanguageFallsBack(t *testing.T) {
	tr := New("en")
	assert.Equal(t, language.English, tr.Resolve("xx"))
	assert.Equal(t, language.English, tr.Resolve(""))
	assert.Equal(t, "Cart updated successfully.", tr.T("de", "cart._cart_updated_successfully"))
}

func TestTranslator_PlainMessagePassesThrough(t *testing.T) {
	tr := New("")
	assert.Equal(t, "Country fetched successfully.", tr.T("en", "Country fetched successfully."))
}

func TestTranslator_Context(t *testing.T) {
	tr := New("en")
	ctx := WithLang(context.Background(), "en-GB")

	assert.Equal(t, "en-GB", LangFrom(ctx))
	assert.Equal(t, "Record already exists.", tr.TCtx(ctx, "brand._record_already_exists"))
	assert.Equal(t, "", LangFrom(context.Background()))
}
