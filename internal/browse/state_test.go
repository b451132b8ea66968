package browse

import (
	"testing"

	"github.com/pagepeek/pagepeek/internal/model"
)

func TestState_NotifyOnChange(t *testing.T) {
	st := NewState("https://example.com/")

	var fired []Field
	st.Subscribe(func(f Field) {
		fired = append(fired, f)
	})

	st.SetStatus("hello")
	st.SetBusy(true)

	if len(fired) != 2 {
		t.Fatalf("Expected 2 notifications, got %d", len(fired))
	}

	if fired[0] != FieldStatus || fired[1] != FieldBusy {
		t.Errorf("Expected [status busy] notifications, got %v", fired)
	}
}

func TestState_CompareBeforeNotify(t *testing.T) {
	st := NewState("https://example.com/")

	count := 0
	st.Subscribe(func(f Field) {
		count++
	})

	st.SetStatus("same")
	st.SetStatus("same")
	st.SetBusy(false) // already false
	st.SetAddress("https://example.com/") // unchanged

	if count != 1 {
		t.Errorf("Expected exactly 1 notification for repeated values, got %d", count)
	}
}

func TestState_SetLinksNotifiesCount(t *testing.T) {
	st := NewState("https://example.com/")

	var fired []Field
	st.Subscribe(func(f Field) {
		fired = append(fired, f)
	})

	links := []model.ParsedLink{{Href: "/a", Text: "A"}, {Href: "/b", Text: "B"}}
	st.SetLinks(links)

	if len(fired) != 2 || fired[0] != FieldLinks || fired[1] != FieldLinkCount {
		t.Fatalf("Expected [links link_count] notifications, got %v", fired)
	}

	if st.LinkCount() != 2 {
		t.Errorf("Expected link count 2, got %d", st.LinkCount())
	}

	// Equal replacement list must not notify again
	fired = nil
	st.SetLinks([]model.ParsedLink{{Href: "/a", Text: "A"}, {Href: "/b", Text: "B"}})
	if len(fired) != 0 {
		t.Errorf("Expected no notifications for equal link list, got %v", fired)
	}
}

func TestState_SetLinksNilClears(t *testing.T) {
	st := NewState("https://example.com/")
	st.SetLinks([]model.ParsedLink{{Href: "/a", Text: "A"}})

	st.SetLinks(nil)

	if st.LinkCount() != 0 {
		t.Errorf("Expected cleared links, got %d", st.LinkCount())
	}
	if st.Links() == nil {
		t.Error("Expected empty slice, got nil")
	}
}

func TestState_Defaults(t *testing.T) {
	st := NewState("https://go.dev/")

	if st.Address() != "https://go.dev/" {
		t.Errorf("Expected seeded address, got '%s'", st.Address())
	}
	if st.Busy() {
		t.Error("Expected busy false initially")
	}
	if st.LoadState() != model.LoadStateIdle {
		t.Errorf("Expected idle load state, got %s", st.LoadState())
	}
	if st.LastError() != ErrorNone {
		t.Errorf("Expected ErrorNone, got %s", st.LastError())
	}
}

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected string
	}{
		{ErrorNone, "None"},
		{ErrorEmptyAddress, "EmptyAddress"},
		{ErrorInvalidURL, "InvalidURL"},
		{ErrorTimeout, "Timeout"},
		{ErrorNetwork, "Network"},
		{ErrorUnexpected, "Unexpected"},
		{ErrorParse, "Parse"},
	}

	for _, test := range tests {
		if test.kind.String() != test.expected {
			t.Errorf("ErrorKind.String() = %s, expected %s", test.kind.String(), test.expected)
		}
	}
}
