package spi

import (
	"fmt"
	"strings"
	"unicode"
)

// ExtensionRecord is the parsed form of one resource-file line (§4.1
// expansion): one or more names bound to a single implementation identifier,
// with its provenance kept for duplicate-detection and diagnostic messages.
type ExtensionRecord struct {
	Names      []string
	ImplID     string
	SourceFile string
	LineNumber int
}

// Source is one of the three fixed search locations probed by the Resource
// Reader (§4.1): an embedded built-in source, a shared deployment-wide
// directory, and a user-level directory. Concrete adapters live in
// internal/config, which backs onto embed.FS and the OS filesystem; pkg/spi
// only depends on this narrow interface.
type Source interface {
	// Name identifies the source for diagnostics, e.g. "embedded",
	// "shared:/etc/extframe", "user:~/.config/extframe".
	Name() string
	// Read returns the resource's raw bytes for resourceName (typically an
	// interface's short name) and whether it was found at all.
	Read(resourceName string) (content []byte, found bool, err error)
}

// ParseResourceFile implements §4.1 and §6's record grammar: "# comment" to
// end of line, blank lines skipped, a record is "name[,name...]=implID" or a
// bare "implID" (name derived via deriveName). Parse errors are returned
// per-offending-line rather than aborting the whole file.
func ParseResourceFile(sourceFile, content string, deriveName func(implID string) string) ([]ExtensionRecord, []error) {
	var records []ExtensionRecord
	var errs []error

	for i, rawLine := range strings.Split(content, "\n") {
		lineNo := i + 1
		line := rawLine
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var namesPart, implID string
		if eq := strings.IndexByte(line, '='); eq >= 0 {
			namesPart = strings.TrimSpace(line[:eq])
			implID = strings.TrimSpace(line[eq+1:])
		} else {
			implID = line
		}
		if implID == "" {
			errs = append(errs, fmt.Errorf("%s:%d: missing implementation id", sourceFile, lineNo))
			continue
		}

		var names []string
		if namesPart == "" {
			if deriveName == nil {
				errs = append(errs, fmt.Errorf("%s:%d: %q has no explicit name and no deriveName was supplied", sourceFile, lineNo, implID))
				continue
			}
			names = []string{deriveName(implID)}
		} else {
			names = splitNames(namesPart)
		}

		records = append(records, ExtensionRecord{
			Names:      names,
			ImplID:     implID,
			SourceFile: sourceFile,
			LineNumber: lineNo,
		})
	}

	return records, errs
}

func splitNames(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// LoadExtensionRecords reads resourceName from every source in order
// (§4.1's three fixed directories, probed in this slice's order), combining
// all matches — later sources supplement, they never shadow (§9 open
// question resolution). Per-source read errors and per-line parse errors
// are collected, not fatal; the caller decides how to surface them (see
// ExtensionPoint.RecordLoadError).
func LoadExtensionRecords(sources []Source, resourceName string, deriveName func(string) string) ([]ExtensionRecord, []error) {
	var records []ExtensionRecord
	var errs []error

	for _, src := range sources {
		data, found, err := src.Read(resourceName)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
			continue
		}
		if !found {
			continue
		}
		recs, perrs := ParseResourceFile(src.Name()+"/"+resourceName, string(data), deriveName)
		records = append(records, recs...)
		errs = append(errs, perrs...)
	}

	return records, errs
}

// ApplyRecords registers every record against ep, resolving each record's
// ImplID through constructors (Go has no reflective "instantiate by class
// name", so the caller supplies the mapping of implementation identifiers to
// actual constructors). A record whose ImplID has no known constructor is
// recorded as a load error and skipped, not fatal (§4.1 "does not abort the
// sweep"); a DuplicateName conflict across records IS fatal and returned
// immediately (§4.1, §6).
func ApplyRecords[T any](ep *ExtensionPoint[T], records []ExtensionRecord, constructors map[string]func() T) error {
	for _, rec := range records {
		ctor, ok := constructors[rec.ImplID]
		if !ok {
			ep.RecordLoadError(fmt.Sprintf("%s:%d", rec.SourceFile, rec.LineNumber),
				fmt.Sprintf("no constructor registered for implementation %q", rec.ImplID))
			continue
		}
		if err := ep.RegisterNames(rec.Names, rec.ImplID, ctor); err != nil {
			return err
		}
	}
	return nil
}

// DeriveNameFromImplID implements §4.1's name-derivation rule: if implID's
// last path segment ends with ifaceShortName, strip that suffix and
// lowercase the remainder; otherwise lowercase the whole last segment.
func DeriveNameFromImplID(implID, ifaceShortName string) string {
	segment := implID
	if idx := strings.LastIndexAny(segment, "./"); idx >= 0 {
		segment = segment[idx+1:]
	}
	if ifaceShortName != "" && strings.HasSuffix(segment, ifaceShortName) && len(segment) > len(ifaceShortName) {
		segment = segment[:len(segment)-len(ifaceShortName)]
	}
	return strings.ToLower(segment)
}
