package parse

import (
	"fmt"
	"strings"
	"testing"
)

func TestExtract_TitleAndLinks(t *testing.T) {
	summary, err := Extract(`<html><head><title> Hi </title></head><body><a href="/a">A</a><a href="/b">B</a></body></html>`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if summary.Title != "Hi" {
		t.Errorf("Expected title 'Hi', got '%s'", summary.Title)
	}

	if len(summary.Links) != 2 {
		t.Fatalf("Expected 2 links, got %d", len(summary.Links))
	}

	if summary.Links[0].Href != "/a" || summary.Links[0].Text != "A" {
		t.Errorf("Expected first link {/a A}, got {%s %s}", summary.Links[0].Href, summary.Links[0].Text)
	}

	if summary.Links[1].Href != "/b" || summary.Links[1].Text != "B" {
		t.Errorf("Expected second link {/b B}, got {%s %s}", summary.Links[1].Href, summary.Links[1].Text)
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t "} {
		summary, err := Extract(input)
		if err != nil {
			t.Fatalf("Expected no error for empty input, got %v", err)
		}
		if summary.Title != "" {
			t.Errorf("Expected empty title, got '%s'", summary.Title)
		}
		if len(summary.Links) != 0 {
			t.Errorf("Expected no links, got %d", len(summary.Links))
		}
	}
}

func TestExtract_MissingTitle(t *testing.T) {
	summary, err := Extract(`<html><body><p>no title here</p></body></html>`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if summary.Title != "" {
		t.Errorf("Expected empty title, got '%s'", summary.Title)
	}
}

func TestExtract_FirstTitleWins(t *testing.T) {
	summary, err := Extract(`<title>First</title><title>Second</title>`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if summary.Title != "First" {
		t.Errorf("Expected title 'First', got '%s'", summary.Title)
	}
}

func TestExtract_LinkTextFallsBackToHref(t *testing.T) {
	summary, err := Extract(`<a href="/x"></a>`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(summary.Links) != 1 {
		t.Fatalf("Expected 1 link, got %d", len(summary.Links))
	}

	if summary.Links[0].Text != "/x" {
		t.Errorf("Expected text fallback '/x', got '%s'", summary.Links[0].Text)
	}
}

func TestExtract_SkipsEmptyHref(t *testing.T) {
	summary, err := Extract(`<a href="">empty</a><a href="   ">blank</a><a>none</a><a href="/real">real</a>`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(summary.Links) != 1 {
		t.Fatalf("Expected 1 link, got %d", len(summary.Links))
	}

	if summary.Links[0].Href != "/real" {
		t.Errorf("Expected href '/real', got '%s'", summary.Links[0].Href)
	}
}

func TestExtract_LinkCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < MaxLinks+50; i++ {
		fmt.Fprintf(&b, `<a href="/page/%d">link %d</a>`, i, i)
	}
	b.WriteString("</body></html>")

	summary, err := Extract(b.String())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(summary.Links) != MaxLinks {
		t.Fatalf("Expected exactly %d links, got %d", MaxLinks, len(summary.Links))
	}

	// Document order preserved, excess silently dropped
	if summary.Links[0].Href != "/page/0" {
		t.Errorf("Expected first link '/page/0', got '%s'", summary.Links[0].Href)
	}
	if last := summary.Links[MaxLinks-1].Href; last != fmt.Sprintf("/page/%d", MaxLinks-1) {
		t.Errorf("Expected last link '/page/%d', got '%s'", MaxLinks-1, last)
	}
}

func TestExtract_EntityDecoding(t *testing.T) {
	summary, err := Extract(`<title>Tom &amp; Jerry</title><a href="/q?a=1&amp;b=2">Q &amp; A</a>`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if summary.Title != "Tom & Jerry" {
		t.Errorf("Expected entity-decoded title 'Tom & Jerry', got '%s'", summary.Title)
	}

	if summary.Links[0].Text != "Q & A" {
		t.Errorf("Expected entity-decoded link text 'Q & A', got '%s'", summary.Links[0].Text)
	}
}

func TestExtract_NestedAnchorText(t *testing.T) {
	summary, err := Extract(`<a href="/n"><span>Nested</span> <b>text</b></a>`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if summary.Links[0].Text != "Nested text" {
		t.Errorf("Expected collapsed nested text 'Nested text', got '%s'", summary.Links[0].Text)
	}
}

func TestExtract_MalformedMarkupRecovers(t *testing.T) {
	// x/net/html recovers from unclosed tags; no error expected
	summary, err := Extract(`<p><b>Broken<div><a href="/a">A`)
	if err != nil {
		t.Fatalf("Expected recovery without error, got %v", err)
	}

	if len(summary.Links) != 1 {
		t.Errorf("Expected 1 link from malformed markup, got %d", len(summary.Links))
	}
}
