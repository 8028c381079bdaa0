package formatting

import (
	"encoding/json"
	"fmt"
)

// JSONFormatter provides structured JSON output formatting
type JSONFormatter struct {
	options Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(options Options) Formatter {
	return &JSONFormatter{
		options: options,
	}
}

// FormatExtensionPointDetail formats an ExtensionPoint's full listing as JSON
func (f *JSONFormatter) FormatExtensionPointDetail(info ExtensionPointInfo) string {
	return f.marshal(info)
}

// FormatExtensionDetail formats one resolved extension as JSON
func (f *JSONFormatter) FormatExtensionDetail(info ExtensionInfo) string {
	return f.marshal(info)
}

// FormatActivationsList formats the ordered Activate Selector result as JSON
func (f *JSONFormatter) FormatActivationsList(activations []ActivationInfo) string {
	return f.marshal(activations)
}

// FormatData formats generic data as JSON
func (f *JSONFormatter) FormatData(data interface{}) error {
	fmt.Println(f.marshal(data))
	return nil
}

// SetOptions updates the formatter options
func (f *JSONFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *JSONFormatter) GetOptions() Options {
	return f.options
}

// marshal converts data to JSON string with appropriate formatting
func (f *JSONFormatter) marshal(data interface{}) string {
	var jsonBytes []byte
	var err error

	if f.options.Quiet {
		jsonBytes, err = json.Marshal(data)
	} else {
		return PrettyJSON(data)
	}

	if err != nil {
		return fmt.Sprintf(`{"error": "Failed to format JSON: %v"}`, err)
	}

	return string(jsonBytes)
}
