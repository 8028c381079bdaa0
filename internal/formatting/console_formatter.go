package formatting

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ConsoleFormatter provides simple console output formatting
type ConsoleFormatter struct {
	options Options
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(options Options) Formatter {
	return &ConsoleFormatter{
		options: options,
	}
}

// FormatExtensionPointDetail formats an ExtensionPoint's full listing
func (f *ConsoleFormatter) FormatExtensionPointDetail(info ExtensionPointInfo) string {
	if len(info.Extensions) == 0 {
		return fmt.Sprintf("%s has no registered extensions.", info.InterfaceName)
	}

	var output []string
	output = append(output, fmt.Sprintf("%s (%d extension(s), default %q):", info.InterfaceName, len(info.Extensions), info.DefaultName))
	for i, ext := range info.Extensions {
		loaded := "not loaded"
		if ext.Loaded {
			loaded = "loaded"
		}
		output = append(output, fmt.Sprintf("  %d. %-20s %-10s -> %-30s (%s)", i+1, ext.Name, ext.Kind, ext.ImplID, loaded))
	}
	return strings.Join(output, "\n")
}

// FormatExtensionDetail formats one resolved extension
func (f *ConsoleFormatter) FormatExtensionDetail(info ExtensionInfo) string {
	var output []string
	output = append(output, fmt.Sprintf("Name: %s", info.Name))
	output = append(output, fmt.Sprintf("Implementation: %s", info.ImplID))
	output = append(output, fmt.Sprintf("Kind: %s", info.Kind))
	output = append(output, fmt.Sprintf("Loaded: %t", info.Loaded))
	return strings.Join(output, "\n")
}

// FormatActivationsList formats the ordered Activate Selector result
func (f *ConsoleFormatter) FormatActivationsList(activations []ActivationInfo) string {
	if len(activations) == 0 {
		return "No activated extensions."
	}

	var output []string
	output = append(output, fmt.Sprintf("Activated extensions (%d):", len(activations)))
	for i, a := range activations {
		output = append(output, fmt.Sprintf("  %d. %-20s order=%-4d group=%s", i+1, a.Name, a.Order, a.Group))
	}
	return strings.Join(output, "\n")
}

// FormatData formats generic data (fallback to simple text representation)
func (f *ConsoleFormatter) FormatData(data interface{}) error {
	switch d := data.(type) {
	case map[string]interface{}:
		fmt.Println(f.prettyJSON(d))
	case []interface{}:
		fmt.Println(f.prettyJSON(d))
	case string:
		fmt.Println(d)
	default:
		fmt.Printf("%v\n", d)
	}
	return nil
}

// SetOptions updates the formatter options
func (f *ConsoleFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *ConsoleFormatter) GetOptions() Options {
	return f.options
}

// prettyJSON formats JSON data with indentation
func (f *ConsoleFormatter) prettyJSON(v interface{}) string {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error formatting JSON: %v", err)
	}
	return string(jsonBytes)
}
