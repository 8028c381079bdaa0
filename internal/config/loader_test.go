package config

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"extframe/pkg/spi"
)

type widget interface {
	Name() string
}

type redWidget struct{}

func (redWidget) Name() string { return "red" }

type blueWidget struct{}

func (blueWidget) Name() string { return "blue" }

func widgetConstructors() map[string]func() widget {
	return map[string]func() widget{
		"config.redWidget":  func() widget { return redWidget{} },
		"config.blueWidget": func() widget { return blueWidget{} },
	}
}

func TestLoadAndApplyRegistersFromEmbeddedAndSupplementsFromDirectory(t *testing.T) {
	fsys := fstest.MapFS{
		"extensions/Widget": &fstest.MapFile{Data: []byte("red = config.redWidget\n")},
	}

	reg := spi.NewRegistry()
	ep, err := spi.ForType[widget](reg, spi.Descriptor{DefaultName: "red"})
	if err != nil {
		t.Fatal(err)
	}

	if err := LoadAndApply(ep, fsys, "extensions", "Widget", widgetConstructors(), nil); err != nil {
		t.Fatal(err)
	}

	got, err := ep.Get("red")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name() != "red" {
		t.Fatalf("Get(%q).Name() = %q", "red", got.Name())
	}
}

func TestLoadAndApplyRecordsLoadErrorForUnknownImplID(t *testing.T) {
	fsys := fstest.MapFS{
		"extensions/Widget": &fstest.MapFile{Data: []byte("green = config.greenWidget\n")},
	}

	reg := spi.NewRegistry()
	ep, err := spi.ForType[widget](reg, spi.Descriptor{})
	if err != nil {
		t.Fatal(err)
	}

	if err := LoadAndApply(ep, fsys, "extensions", "Widget", widgetConstructors(), nil); err != nil {
		t.Fatal(err)
	}

	if ep.HasExtension("green") {
		t.Fatal("an unresolvable implementation id should not register a name")
	}

	_, err = ep.Get("green")
	if err == nil {
		t.Fatal("expected Get of an unregistered name to fail")
	}
	var notFound *spi.NoSuchExtensionError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected a NoSuchExtensionError, got %T: %v", err, err)
	}
	if len(notFound.LoadErrors) != 1 {
		t.Fatalf("expected exactly one recorded load error, got %v", notFound.LoadErrors)
	}
}

func TestLoadAndApplyResolvesEnvTemplateInImplID(t *testing.T) {
	t.Setenv("WIDGET_IMPL", "config.blueWidget")
	fsys := fstest.MapFS{
		"extensions/Widget": &fstest.MapFile{Data: []byte("picked = {{ .Env.WIDGET_IMPL }}\n")},
	}

	reg := spi.NewRegistry()
	ep, err := spi.ForType[widget](reg, spi.Descriptor{})
	if err != nil {
		t.Fatal(err)
	}

	if err := LoadAndApply(ep, fsys, "extensions", "Widget", widgetConstructors(), nil); err != nil {
		t.Fatal(err)
	}

	got, err := ep.Get("picked")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name() != "blue" {
		t.Fatalf("Get(%q).Name() = %q, want %q", "picked", got.Name(), "blue")
	}
}

func TestLoadAndApplyRejectsOverlongName(t *testing.T) {
	overlong := strings.Repeat("x", 101)
	fsys := fstest.MapFS{
		"extensions/Widget": &fstest.MapFile{Data: []byte(overlong + " = config.redWidget\n")},
	}

	reg := spi.NewRegistry()
	ep, err := spi.ForType[widget](reg, spi.Descriptor{})
	if err != nil {
		t.Fatal(err)
	}

	if err := LoadAndApply(ep, fsys, "extensions", "Widget", widgetConstructors(), nil); err != nil {
		t.Fatal(err)
	}

	if ep.HasExtension(overlong) {
		t.Fatal("a name over the length limit should fail validation and never register")
	}
	_, err = ep.Get(overlong)
	var notFound *spi.NoSuchExtensionError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected a NoSuchExtensionError, got %T: %v", err, err)
	}
	if len(notFound.LoadErrors) != 1 {
		t.Fatalf("expected exactly one recorded load error, got %v", notFound.LoadErrors)
	}
}

func TestLoadAndApplyNoSourceHasResourceLeavesEmptyExtensionPoint(t *testing.T) {
	fsys := fstest.MapFS{}

	reg := spi.NewRegistry()
	ep, err := spi.ForType[widget](reg, spi.Descriptor{})
	if err != nil {
		t.Fatal(err)
	}

	if err := LoadAndApply(ep, fsys, "extensions", "Widget", widgetConstructors(), nil); err != nil {
		t.Fatal(err)
	}
	if len(ep.SupportedExtensions()) != 0 {
		t.Fatalf("expected no extensions registered, got %v", ep.SupportedExtensions())
	}
}
