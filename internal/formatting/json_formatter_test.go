package formatting

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONFormatExtensionPointDetailIsValidJSON(t *testing.T) {
	f := NewJSONFormatter(Options{Quiet: true})
	out := f.FormatExtensionPointDetail(ExtensionPointInfo{
		InterfaceName: "Greeter",
		DefaultName:   "friendly",
		Extensions: []ExtensionInfo{
			{Name: "friendly", ImplID: "greeter.FriendlyGreeter", Kind: "named"},
		},
	})

	var decoded ExtensionPointInfo
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v (%s)", err, out)
	}
	if decoded.InterfaceName != "Greeter" || len(decoded.Extensions) != 1 {
		t.Fatalf("unexpected decoded value: %+v", decoded)
	}
}

func TestJSONFormatActivationsListIsValidJSON(t *testing.T) {
	f := NewJSONFormatter(Options{Quiet: true})
	out := f.FormatActivationsList([]ActivationInfo{{Name: "friendly", Order: 1}})

	var decoded []ActivationInfo
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Name != "friendly" {
		t.Fatalf("unexpected decoded value: %+v", decoded)
	}
}

func TestJSONFormatterNonQuietIsIndented(t *testing.T) {
	f := NewJSONFormatter(Options{})
	out := f.FormatExtensionDetail(ExtensionInfo{Name: "friendly"})
	if !strings.Contains(out, "\n") {
		t.Fatalf("expected indented output, got %q", out)
	}
}
