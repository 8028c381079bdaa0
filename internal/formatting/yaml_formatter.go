package formatting

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter provides YAML output formatting
type YAMLFormatter struct {
	options Options
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(options Options) Formatter {
	return &YAMLFormatter{
		options: options,
	}
}

// FormatExtensionPointDetail formats an ExtensionPoint's full listing as YAML
func (f *YAMLFormatter) FormatExtensionPointDetail(info ExtensionPointInfo) string {
	return f.marshal(info)
}

// FormatExtensionDetail formats one resolved extension as YAML
func (f *YAMLFormatter) FormatExtensionDetail(info ExtensionInfo) string {
	return f.marshal(info)
}

// FormatActivationsList formats the ordered Activate Selector result as YAML
func (f *YAMLFormatter) FormatActivationsList(activations []ActivationInfo) string {
	return f.marshal(activations)
}

// FormatData formats generic data as YAML
func (f *YAMLFormatter) FormatData(data interface{}) error {
	fmt.Print(f.marshal(data))
	return nil
}

// SetOptions updates the formatter options
func (f *YAMLFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *YAMLFormatter) GetOptions() Options {
	return f.options
}

// marshal converts data to YAML string
func (f *YAMLFormatter) marshal(data interface{}) string {
	yamlBytes, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Sprintf("error: \"Failed to format YAML: %v\"\n", err)
	}

	return string(yamlBytes)
}
