// Package formatting renders ExtensionPoint introspection data for the CLI,
// with support for multiple output formats (console, JSON, YAML, table).
package formatting

// OutputFormat represents the desired output format
type OutputFormat string

const (
	FormatConsole OutputFormat = "console" // Simple console output
	FormatJSON    OutputFormat = "json"    // JSON output
	FormatYAML    OutputFormat = "yaml"    // YAML output
	FormatTable   OutputFormat = "table"   // Rich table output
)

// Options configures the formatter behavior
type Options struct {
	Format OutputFormat
	Quiet  bool // Suppress decorative elements
	Color  bool // Enable colored output
}

// ExtensionInfo describes one registered name on an ExtensionPoint, for the
// `extframe list`/`extframe get` commands.
type ExtensionInfo struct {
	Name   string // registered name, or "" for the raw/adaptive entry
	ImplID string // implementation identifier it resolves to
	Kind   string // "named", "wrapper", or "adaptive"
	Loaded bool   // whether it has already been built (cached instance exists)
}

// ExtensionPointInfo describes one interface's whole ExtensionPoint.
type ExtensionPointInfo struct {
	InterfaceName string
	DefaultName   string
	Extensions    []ExtensionInfo
}

// ActivationInfo describes one candidate as ranked by the Activate Selector.
type ActivationInfo struct {
	Name  string
	Order int
	Group string
}

// Formatter renders ExtensionPoint introspection data and generic CLI
// results in one of the supported OutputFormats.
type Formatter interface {
	// FormatExtensionPointDetail renders the full listing for one interface
	// (extframe list <interface>).
	FormatExtensionPointDetail(info ExtensionPointInfo) string

	// FormatExtensionDetail renders one resolved extension in detail
	// (extframe get <interface> <name>).
	FormatExtensionDetail(info ExtensionInfo) string

	// FormatActivationsList renders the ordered result of GetActivate
	// (extframe activate <interface> ...).
	FormatActivationsList(activations []ActivationInfo) string

	// FormatData formats arbitrary data as a last resort (e.g. the adaptive
	// proxy's dispatch result).
	FormatData(data interface{}) error

	// Configuration
	SetOptions(options Options)
	GetOptions() Options
}

// Factory creates formatters for different output formats
type Factory interface {
	CreateFormatter(options Options) Formatter
}

// NewFactory creates a new formatter factory
func NewFactory() Factory {
	return &factory{}
}

// factory implements the Factory interface
type factory struct{}

// CreateFormatter creates the appropriate formatter based on options
func (f *factory) CreateFormatter(options Options) Formatter {
	switch options.Format {
	case FormatJSON:
		return NewJSONFormatter(options)
	case FormatYAML:
		return NewYAMLFormatter(options)
	case FormatTable:
		return NewTableFormatter(options)
	case FormatConsole:
		fallthrough
	default:
		return NewConsoleFormatter(options)
	}
}
