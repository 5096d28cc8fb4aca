package parser

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParagraphs(t *testing.T) {
	html := []byte(`<html><body>
<p>Outside the container</p>
<div id="mw-content-text">
  <p>First paragraph.</p>
  <p>

  </p>
  <div><p>  Nested second paragraph.  </p></div>
  <p>Third <b>with</b> <a href="#">markup</a>.</p>
</div>
</body></html>`)

	p := &Parser{ContentID: "mw-content-text"}
	got, err := p.Paragraphs(html, "https://pt.wikipedia.org/wiki/Teste")
	if err != nil {
		t.Fatalf("Paragraphs() failed: %v", err)
	}

	want := []string{"First paragraph.", "Nested second paragraph.", "Third with markup."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Paragraphs() = %q, want %q", got, want)
	}
}

func TestParagraphs_MissingContainer(t *testing.T) {
	p := &Parser{ContentID: "mw-content-text"}
	_, err := p.Paragraphs([]byte(`<html><body><p>Hello</p></body></html>`), "https://pt.wikipedia.org/wiki/X")
	if !errors.Is(err, ErrContainerNotFound) {
		t.Errorf("Paragraphs() error = %v, want ErrContainerNotFound", err)
	}
}

func TestParagraphs_EmptyContainer(t *testing.T) {
	p := &Parser{ContentID: "mw-content-text"}
	got, err := p.Paragraphs([]byte(`<div id="mw-content-text"><p> </p></div>`), "https://pt.wikipedia.org/wiki/X")
	if err != nil {
		t.Fatalf("Paragraphs() failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Paragraphs() = %q, want none", got)
	}
}

func TestParagraphs_ReadabilityFallback(t *testing.T) {
	html := []byte(`<!DOCTYPE html><html><head><title>Artigo</title></head><body>
<nav><a href="/">Home</a></nav>
<article>
<h1>Artigo</h1>
<p>O Brasil é o maior país da América do Sul e o quinto maior do mundo em área territorial, com mais de oito milhões de quilômetros quadrados.</p>
<p>Sua capital é Brasília, e a cidade mais populosa é São Paulo, um dos maiores centros financeiros e culturais de todo o hemisfério sul.</p>
<p>O país é banhado pelo Oceano Atlântico e faz fronteira com quase todos os países sul-americanos, exceto o Chile e o Equador.</p>
<p>A economia brasileira é a maior da América Latina, com uma indústria diversificada, agricultura de exportação e um setor de serviços em expansão constante.</p>
<p>A cultura do país é marcada pela mistura de influências indígenas, africanas e europeias, visível na música, na culinária e nas festas populares.</p>
</article>
</body></html>`)

	p := &Parser{ContentID: "mw-content-text", Readability: true}
	got, err := p.Paragraphs(html, "https://example.org/artigo")
	if err != nil {
		t.Fatalf("Paragraphs() failed: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("Paragraphs() returned no paragraphs")
	}
	if !strings.HasPrefix(got[0], "O Brasil ") {
		t.Errorf("first paragraph = %q, want the article opening", got[0])
	}
}

func TestSelect(t *testing.T) {
	paragraphs := []string{"a", "b", "c"}

	tests := []struct {
		n    int
		want []string
	}{
		{0, []string{"a", "b", "c"}},
		{1, []string{"a"}},
		{2, []string{"a", "b"}},
		{3, []string{"a", "b", "c"}},
		{10, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		if got := Select(paragraphs, tt.n); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Select(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestJoin(t *testing.T) {
	if got := Join([]string{"a", "b"}); got != "a\n\nb" {
		t.Errorf("Join() = %q, want %q", got, "a\n\nb")
	}
	if got := Join(nil); got != "" {
		t.Errorf("Join(nil) = %q, want empty", got)
	}
}
