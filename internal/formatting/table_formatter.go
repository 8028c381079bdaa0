package formatting

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	extstrings "extframe/pkg/strings"
)

// TableFormatter provides rich table output formatting
type TableFormatter struct {
	options Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(options Options) Formatter {
	return &TableFormatter{
		options: options,
	}
}

// FormatExtensionPointDetail formats an ExtensionPoint's full listing as a table
func (f *TableFormatter) FormatExtensionPointDetail(info ExtensionPointInfo) string {
	if len(info.Extensions) == 0 {
		return f.formatEmptyMessage("📋", fmt.Sprintf("%s has no registered extensions", info.InterfaceName))
	}

	t := f.createTable()
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("NAME"),
		text.FgHiCyan.Sprint("KIND"),
		text.FgHiCyan.Sprint("IMPLEMENTATION"),
		text.FgHiCyan.Sprint("LOADED"),
	})

	for _, ext := range info.Extensions {
		name := ext.Name
		if name == info.DefaultName {
			name = text.FgHiGreen.Sprint(name + " (default)")
		}
		t.AppendRow(table.Row{
			name,
			ext.Kind,
			ext.ImplID,
			f.formatLoaded(ext.Loaded),
		})
	}

	var result strings.Builder
	t.SetOutputMirror(&result)
	t.Render()

	result.WriteString(fmt.Sprintf("\n🔌 %s %s %s\n",
		text.FgHiBlue.Sprint("Total:"),
		text.FgHiWhite.Sprint(len(info.Extensions)),
		text.FgHiBlue.Sprint("extensions")))

	return result.String()
}

// FormatExtensionDetail formats one resolved extension as a table
func (f *TableFormatter) FormatExtensionDetail(info ExtensionInfo) string {
	t := f.createTable()
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("FIELD"),
		text.FgHiCyan.Sprint("VALUE"),
	})
	t.AppendRow(table.Row{"Name", text.FgHiCyan.Sprint(info.Name)})
	t.AppendRow(table.Row{"Kind", info.Kind})
	t.AppendRow(table.Row{"Implementation", info.ImplID})
	t.AppendRow(table.Row{"Loaded", f.formatLoaded(info.Loaded)})

	var result strings.Builder
	t.SetOutputMirror(&result)
	t.Render()
	return result.String()
}

// FormatActivationsList formats the ordered Activate Selector result as a table
func (f *TableFormatter) FormatActivationsList(activations []ActivationInfo) string {
	if len(activations) == 0 {
		return f.formatEmptyMessage("📋", "no extensions activated")
	}

	t := f.createTable()
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("NAME"),
		text.FgHiCyan.Sprint("ORDER"),
		text.FgHiCyan.Sprint("GROUP"),
	})
	for _, a := range activations {
		group := a.Group
		if group == "" {
			group = text.FgHiBlack.Sprint("-")
		}
		t.AppendRow(table.Row{text.FgHiCyan.Sprint(a.Name), a.Order, group})
	}

	var result strings.Builder
	t.SetOutputMirror(&result)
	t.Render()

	result.WriteString(fmt.Sprintf("\n✅ %s %s %s\n",
		text.FgHiBlue.Sprint("Total:"),
		text.FgHiWhite.Sprint(len(activations)),
		text.FgHiBlue.Sprint("activated")))

	return result.String()
}

// FormatData formats generic data using table logic from CLI
func (f *TableFormatter) FormatData(data interface{}) error {
	switch d := data.(type) {
	case map[string]interface{}:
		return f.formatObjectData(d)
	case []interface{}:
		return f.formatArrayData(d)
	case string:
		fmt.Println(d)
	default:
		fmt.Printf("%v\n", d)
	}
	return nil
}

// SetOptions updates the formatter options
func (f *TableFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *TableFormatter) GetOptions() Options {
	return f.options
}

// createTable creates a new table with standard styling
func (f *TableFormatter) createTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	return t
}

// formatLoaded formats the loaded/not-loaded state with styling
func (f *TableFormatter) formatLoaded(loaded bool) string {
	if loaded {
		return text.FgGreen.Sprint("✅ yes")
	}
	return text.FgHiBlack.Sprint("not yet")
}

// formatEmptyMessage formats empty result messages
func (f *TableFormatter) formatEmptyMessage(icon, message string) string {
	return fmt.Sprintf("%s %s\n", text.FgYellow.Sprint(icon), text.FgYellow.Sprint(message))
}

// formatObjectData formats object data as key-value pairs
func (f *TableFormatter) formatObjectData(data map[string]interface{}) error {
	t := f.createTable()
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("KEY"),
		text.FgHiCyan.Sprint("VALUE"),
	})

	for key, value := range data {
		valueStr := extstrings.TruncateDescription(fmt.Sprintf("%v", value), 100)
		t.AppendRow(table.Row{text.FgHiCyan.Sprint(key), valueStr})
	}

	t.SetOutputMirror(os.Stdout)
	t.Render()
	return nil
}

// formatArrayData formats array data as a simple enumerated list
func (f *TableFormatter) formatArrayData(data []interface{}) error {
	if len(data) == 0 {
		fmt.Printf("%s %s\n", text.FgYellow.Sprint("📋"), text.FgYellow.Sprint("No items found"))
		return nil
	}

	for i, item := range data {
		fmt.Printf("  %d. %v\n", i+1, item)
	}

	fmt.Printf("\n%s %s %s\n",
		text.FgHiBlue.Sprint("Total:"),
		text.FgHiWhite.Sprint(len(data)),
		text.FgHiBlue.Sprint("items"))

	return nil
}
