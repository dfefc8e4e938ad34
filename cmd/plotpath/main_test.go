package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"plotpath/pkg/gcode"
	"plotpath/pkg/geometry"
)

func TestWriteGcode(t *testing.T) {
	d := geometry.Drawing{Layers: []geometry.Layer{
		{Name: "0", Paths: geometry.Collection{{{X: 0, Y: 0}, {X: 1, Y: 1}}}},
	}}
	path := filepath.Join(t.TempDir(), "out.gcode")
	if err := writeGcode(path, d, gcode.DefaultConfig()); err != nil {
		t.Fatalf("writeGcode: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(data), "(go home)\n") {
		t.Errorf("output file is incomplete:\n%s", data)
	}
}

func TestWriteGcodeCreateError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.gcode")
	if err := writeGcode(path, geometry.Drawing{}, gcode.DefaultConfig()); err == nil {
		t.Error("expected an error for an unwritable path")
	}
}
