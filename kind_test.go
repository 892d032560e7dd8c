package kir

import "testing"

func TestKindNameRoundTrip(t *testing.T) {
	for k := KindContainer; k < kindCount; k++ {
		if got := ParseKind(k.String()); got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
}

func TestParseKindAliases(t *testing.T) {
	if got := ParseKind("Body"); got != KindContainer {
		t.Errorf("ParseKind(Body) = %v", got)
	}
	if got := ParseKind("NoSuchThing"); got != KindContainer {
		t.Errorf("unknown kinds should decode as Container, got %v", got)
	}
}

func TestEventTypeNameRoundTrip(t *testing.T) {
	for e := EventClick; e <= EventCustom; e++ {
		if got := ParseEventType(e.String()); got != e {
			t.Errorf("ParseEventType(%q) = %v, want %v", e.String(), got, e)
		}
	}
	if got := ParseEventType("warp"); got != EventClick {
		t.Errorf("unknown event names should decode as click, got %v", got)
	}
}

func TestKindClassification(t *testing.T) {
	if !KindText.IsTextual() || !KindButton.IsTextual() {
		t.Error("Text and Button are textual")
	}
	if KindContainer.IsTextual() {
		t.Error("Container is not textual")
	}
	if !KindSpan.IsInline() || KindParagraph.IsInline() {
		t.Error("Span is inline, Paragraph is not")
	}
}
