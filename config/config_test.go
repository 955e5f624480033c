package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kscan.toml")
	content := `
[source]
type = "file"
src = "./script.txt"

[kscan]
exit_after = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	oldArgs := os.Args
	os.Args = []string{oldArgs[0], path}
	defer func() {
		os.Args = oldArgs
	}()

	conf, err := GetConfig()
	if err != nil {
		t.Fatalf("get config: %v", err)
	}

	if conf.Source.Type != SourceFile || conf.Source.Src != "./script.txt" {
		t.Fatalf("unexpected source config: %+v", conf.Source)
	}
	if !conf.Kscan.ExitAfter {
		t.Fatal("exit_after not picked up")
	}

	// Untouched sections keep their defaults.
	if conf.Server.Addr != ":8080" {
		t.Fatalf("unexpected server addr: %q", conf.Server.Addr)
	}
	if conf.Kscan.EventPeriod != 30 || conf.Kscan.Rows != 8 || conf.Kscan.Cols != 16 {
		t.Fatalf("unexpected kscan defaults: %+v", conf.Kscan)
	}
	if conf.UI.Cell != 40 {
		t.Fatalf("unexpected ui defaults: %+v", conf.UI)
	}
}

func TestSerialPortExtBaud(t *testing.T) {
	baud, err := SerialPortExt(`baud:"9600"`).GetBaud(115200)
	if err != nil {
		t.Fatalf("get baud: %v", err)
	}
	if baud != 9600 {
		t.Fatalf("expected 9600, got %d", baud)
	}

	baud, err = SerialPortExt("").GetBaud(115200)
	if err != nil {
		t.Fatalf("get default baud: %v", err)
	}
	if baud != 115200 {
		t.Fatalf("expected default 115200, got %d", baud)
	}

	if _, err = SerialPortExt(`baud:"fast"`).GetBaud(115200); err == nil {
		t.Fatal("expected an error for a non-numeric baud")
	}
}
