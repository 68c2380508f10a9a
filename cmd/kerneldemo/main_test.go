package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/convolve"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { convolve.SetLogger(nil) })

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kerneldemo.toml")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCommandsOutput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "convolve",
			args: []string{"convolve", "--sample", "sharpen", "--kernel", "sharpen", "--mode", "gray", "--label", "gray"},
			want: []string{"sharpen: sharpen", "mode gray", "edge passthrough", "before", "after", "150"},
		},
		{
			name: "convolve custom weights",
			args: []string{"convolve", "--sample", "flat", "--weights", "1,1,1;1,1,1;1,1,1", "--edge", "mirror", "--label", "gray"},
			want: []string{"custom", "/ 9", "edge mirror", "128"},
		},
		{
			name: "trace",
			args: []string{"trace", "--sample", "sharpen", "--row", "1", "--col", "1", "--mode", "gray"},
			want: []string{"output (1, 1)", "sum     150", "gray=150"},
		},
		{
			name: "trace passthrough",
			args: []string{"trace", "--sample", "sharpen", "--mode", "gray"},
			want: []string{"input copied"},
		},
		{
			name: "color hex",
			args: []string{"color", "#3498DB"},
			want: []string{"52 152 219", "130", "light", "black"},
		},
		{
			name: "color channels",
			args: []string{"color", "255", "255", "0"},
			want: []string{"#FFFF00", "black"},
		},
		{
			name: "presets",
			args: []string{"presets"},
			want: []string{"identity", "sharpen", "gaussian-blur", "sobel-x", "emboss"},
		},
		{
			name: "samples",
			args: []string{"samples"},
			want: []string{"smiley", "8x8", "sharpen", "3x3"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute(%v) error = %v", tt.args, err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"even kernel", []string{"convolve", "--weights", "1,1;1,1"}, "kernel size must be odd and square"},
		{"zero divisor", []string{"convolve", "--weights", "0,0,0;0,1,0;0,0,0", "--divisor", "0"}, "divisor must not be zero"},
		{"trace outside", []string{"trace", "--sample", "sharpen", "--row", "5"}, "position is outside the grid"},
		{"edge", []string{"convolve", "--edge", "wrap"}, "edge policy must be passthrough, pad-zero, mirror or clamp"},
		{"mode", []string{"convolve", "--mode", "cmyk"}, "channel mode must be color or gray"},
		{"label", []string{"convolve", "--label", "rgb"}, "label must be none, gray or hex"},
		{"log level", []string{"--log-level", "loud", "presets"}, "log level must be debug, info, warn or error"},
		{"bad hex", []string{"color", "#12345"}, "color must be a hex value like #1A2B3C"},
		{"channel range", []string{"color", "300", "0", "0"}, "pixel values must be between 0 and 255"},
		{"unknown kernel", []string{"convolve", "--kernel", "blurry"}, `unknown kernel "blurry"`},
		{"unknown sample", []string{"convolve", "--sample", "moon"}, `sample: unknown sample "moon"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatalf("execute(%v) error = nil", tt.args)
			}
			if got := userMessage(err); got != tt.want {
				t.Errorf("userMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColorArgCount(t *testing.T) {
	if _, err := execute(t, "color", "1", "2"); err == nil {
		t.Error("color with two args: error = nil")
	}
}

func TestConfigFile(t *testing.T) {
	path := writeConfig(t, `
edge = "mirror"
mode = "gray"

[[kernel]]
name = "outline"
description = "8-neighbour outline"
divisor = 1
weights = [[-1,-1,-1],[-1,8,-1],[-1,-1,-1]]
`)

	out, err := execute(t, "--config", path, "presets")
	if err != nil {
		t.Fatalf("presets error = %v", err)
	}
	if !strings.Contains(out, "outline") {
		t.Errorf("presets missing file kernel:\n%s", out)
	}

	out, err = execute(t, "--config", path, "convolve", "--kernel", "outline", "--sample", "flat")
	if err != nil {
		t.Fatalf("convolve error = %v", err)
	}
	if !strings.Contains(out, "mode gray  edge mirror") {
		t.Errorf("config defaults not applied:\n%s", out)
	}

	// Flags win over the file.
	out, err = execute(t, "--config", path, "convolve", "--kernel", "outline", "--edge", "clamp")
	if err != nil {
		t.Fatalf("convolve error = %v", err)
	}
	if !strings.Contains(out, "edge clamp") {
		t.Errorf("--edge did not override config:\n%s", out)
	}
}

func TestConfigFileInvalid(t *testing.T) {
	path := writeConfig(t, "[[kernel]]\nname = \"bad\"\nweights = [[1,2],[3,4]]\n")
	_, err := execute(t, "--config", path, "presets")
	if got := userMessage(err); got != "kernel size must be odd and square" {
		t.Errorf("userMessage() = %q", got)
	}
}
