package config

import (
	"io/fs"
	"os"
	"strings"

	"extframe/internal/template"
	"extframe/pkg/logging"
	"extframe/pkg/spi"
)

// LoadAndApply runs the Resource Reader's full sweep (§4.1) for one
// ExtensionPoint: read resourceName from every source DefaultSources
// returns, parse every match, resolve any {{ .Env.X }} placeholder in each
// record's implementation id, and register the resolvable ones. Records
// whose implementation id has no entry in constructors are recorded as
// non-fatal load errors on ep; a genuine DuplicateName conflict is returned
// to the caller.
func LoadAndApply[T any](ep *spi.ExtensionPoint[T], embedded fs.ReadFileFS, embeddedPrefix, resourceName string, constructors map[string]func() T, deriveName func(implID string) string) error {
	sources := DefaultSources(embedded, embeddedPrefix)
	records, parseErrs := spi.LoadExtensionRecords(sources, resourceName, deriveName)
	collected := NewConfigurationErrorCollection()
	for _, err := range parseErrs {
		ep.RecordLoadError(resourceName, err.Error())
		collected.AddError(resourceName, resourceName, "parse", resourceName, "parse", err.Error())
	}

	engine := template.New()
	ctx := map[string]interface{}{"Env": environMap()}
	valid := records[:0]
	for _, rec := range records {
		if err := validateRecord(rec, resourceName); err != nil {
			ep.RecordLoadError(rec.SourceFile, err.Error())
			collected.AddError(rec.SourceFile, resourceName, "validate", resourceName, "validate", err.Error())
			continue
		}

		resolved, err := engine.Replace(rec.ImplID, ctx)
		if err != nil {
			cerr := NewConfigurationError(rec.SourceFile, resourceName, "template", resourceName, "template", err.Error())
			ep.RecordLoadError(rec.SourceFile, cerr.Error())
			collected.Add(cerr)
			continue
		}
		rec.ImplID = resolved.(string)
		valid = append(valid, rec)
	}

	if collected.HasErrors() {
		logging.Warn("ResourceReader", "%s", collected.GetSummary())
	}

	return spi.ApplyRecords(ep, valid, constructors)
}

// validateRecord rejects a parsed record whose names fail the same
// entity-name conventions every other configured entity is held to
// (ValidateEntityName), or whose implementation id is empty
// (ValidateRequired), wrapped with the record's entity type for a
// consistent diagnostic (FormatValidationError).
func validateRecord(rec spi.ExtensionRecord, resourceName string) error {
	for _, name := range rec.Names {
		if err := ValidateEntityName(name, resourceName); err != nil {
			return FormatValidationError(resourceName, name, err)
		}
	}
	if err := ValidateRequired("implID", rec.ImplID, resourceName); err != nil {
		return FormatValidationError(resourceName, strings.Join(rec.Names, ","), err)
	}
	return nil
}

// environMap exposes the process environment as the "Env" root for a
// record's templated implementation id, e.g. "{{ .Env.GREETER_IMPL }}".
func environMap() map[string]interface{} {
	out := make(map[string]interface{})
	for _, kv := range os.Environ() {
		if name, value, ok := strings.Cut(kv, "="); ok {
			out[name] = value
		}
	}
	return out
}
