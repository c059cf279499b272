package i18n

import "testing"

func TestGetCatalogFallback(t *testing.T) {
	base := GetCatalog("en-US")
	if base == nil {
		t.Fatal("expected base catalog")
	}
	if got := GetCatalog(""); got != base {
		t.Fatal("expected empty locale to resolve to en-US")
	}
	if got := GetCatalog("missing-locale"); got != base {
		t.Fatal("expected fallback to en-US catalog")
	}
	if got := GetCatalog("ja-JP"); got != base {
		t.Fatalf("expected unsupported locale to fall back to en-US, got %q", got.Locale())
	}
}

func TestGetCatalogMatchesRegionalVariant(t *testing.T) {
	if got := GetCatalog("pt").Locale(); got != "pt-BR" {
		t.Fatalf("locale = %q, want pt-BR", got)
	}
	if got := GetCatalog("en-GB").Locale(); got != "en-US" {
		t.Fatalf("locale = %q, want en-US", got)
	}
}

func TestFormatFallbacks(t *testing.T) {
	cat := &Catalog{locale: "test", messages: map[Code]string{
		"code": "hello {{.Name}}",
	}}

	if cat.Format("unknown", nil) != "unknown" {
		t.Fatal("expected code fallback when template missing")
	}
	if cat.Format("code", nil) != "hello <no value>" {
		t.Fatal("expected template to render missing metadata")
	}
}

func TestFormatTemplateErrorFallback(t *testing.T) {
	cat := &Catalog{locale: "test", messages: map[Code]string{
		"code": "{{ if .Name }}",
	}}
	if cat.Format("code", map[string]string{"Name": "X"}) != "{{ if .Name }}" {
		t.Fatal("expected template fallback on parse error")
	}
}

func TestFormatRendersMetadata(t *testing.T) {
	got := GetCatalog("en-US").Format(CodeRandomInvalidWordCount, map[string]string{"Max": "4096"})
	if got != "Word count must be between 1 and 4096" {
		t.Fatalf("format = %q", got)
	}
}

func TestGetCatalogIgnoresCase(t *testing.T) {
	if got := GetCatalog(" PT-br ").Locale(); got != "pt-BR" {
		t.Fatalf("locale = %q, want pt-BR", got)
	}
}
