package factory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ecstatic-morse/zmk/config"
)

func TestSourceFromConfigNone(t *testing.T) {
	src, err := SourceFromConfig(config.Config{
		Source: config.Source{Type: config.SourceNone},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src != nil {
		t.Fatal("expected no source for type none")
	}
}

func TestSourceFromConfigUnknown(t *testing.T) {
	_, err := SourceFromConfig(config.Config{
		Source: config.Source{Type: "teleprinter"},
	})
	if err == nil {
		t.Fatal("expected an error for an unknown source type")
	}
}

func TestSourceFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.txt")
	if err := os.WriteFile(path, []byte("p 0 0\n"), 0644); err != nil {
		t.Fatalf("write script: %v", err)
	}

	src, err := SourceFromConfig(config.Config{
		Source: config.Source{Type: config.SourceFile, Src: path},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src == nil {
		t.Fatal("expected a source")
	}
	defer func() {
		_ = src.Close()
	}()

	b, err := src.ReadByte()
	if err != nil || b != 'p' {
		t.Fatalf("expected first script byte, got %q, %v", b, err)
	}
}

func TestKscanFromConfigRequiresSource(t *testing.T) {
	if _, err := KscanFromConfig(config.Config{}, nil); err == nil {
		t.Fatal("expected an error without a command source")
	}
}
