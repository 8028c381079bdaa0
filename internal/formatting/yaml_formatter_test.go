package formatting

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestYAMLFormatExtensionPointDetailIsValidYAML(t *testing.T) {
	f := NewYAMLFormatter(Options{})
	out := f.FormatExtensionPointDetail(ExtensionPointInfo{
		InterfaceName: "Greeter",
		Extensions:    []ExtensionInfo{{Name: "friendly", Kind: "named"}},
	})

	var decoded ExtensionPointInfo
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.InterfaceName != "Greeter" {
		t.Fatalf("unexpected decoded value: %+v", decoded)
	}
}

func TestYAMLFormatActivationsListContainsNames(t *testing.T) {
	f := NewYAMLFormatter(Options{})
	out := f.FormatActivationsList([]ActivationInfo{{Name: "formal", Order: 2}})
	if !strings.Contains(out, "formal") {
		t.Fatalf("unexpected output: %q", out)
	}
}
