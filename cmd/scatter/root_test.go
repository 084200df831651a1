package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"ionic-scatter/internal/app"
	"ionic-scatter/internal/config"
	"ionic-scatter/internal/defs"
	"ionic-scatter/pkg/colorscale"
)

func resolveArgs(t *testing.T, args ...string) (config.RenderConfig, error) {
	t.Helper()
	f := &renderFlags{}
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd.Flags())
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatalf("Parse err=%v", err)
	}
	return f.resolve(cmd.Flags())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := resolveArgs(t)
	if err != nil {
		t.Fatalf("resolve err=%v", err)
	}
	want := config.DefaultRender()
	if cfg.Backend != want.Backend || cfg.Colorscale != want.Colorscale || cfg.AxisLabels != want.AxisLabels {
		t.Fatalf("cfg=%+v, want %+v", cfg, want)
	}
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "render.toml", `
backend = "interactive"
colorscale = "viridis"
title = "from file"

[axis_labels]
x = "a"
y = "b"
z = "c"
`)
	cfg, err := resolveArgs(t, "--config", path, "--colorscale", "jet", "--zlabel", "height")
	if err != nil {
		t.Fatalf("resolve err=%v", err)
	}
	if cfg.Backend != config.BackendInteractive {
		t.Fatalf("backend=%q, want interactive from file", cfg.Backend)
	}
	if cfg.Colorscale != "jet" {
		t.Fatalf("colorscale=%q, want jet from flag", cfg.Colorscale)
	}
	if cfg.Title != "from file" {
		t.Fatalf("title=%q, want %q", cfg.Title, "from file")
	}
	want := config.AxisLabels{X: "a", Y: "b", Z: "height"}
	if cfg.AxisLabels != want {
		t.Fatalf("labels=%+v, want %+v", cfg.AxisLabels, want)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"backend", []string{"--backend", "svg"}, config.ErrUnknownBackend},
		{"colorscale", []string{"--colorscale", "rainbowish"}, colorscale.ErrUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveArgs(t, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err=%v, want %v", err, tt.want)
			}
		})
	}
}

func TestRootRejectsBadBackendBeforeReading(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--backend", "svg", "missing.json"})
	if err := cmd.Execute(); !errors.Is(err, config.ErrUnknownBackend) {
		t.Fatalf("err=%v, want ErrUnknownBackend", err)
	}
}

func TestRootMissingChargesFromStdin(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(`{"positions": [[0, 0, 0]]}`))
	cmd.SetArgs([]string{"-"})
	if err := cmd.Execute(); !errors.Is(err, defs.ErrMissingField) {
		t.Fatalf("err=%v, want ErrMissingField", err)
	}
}

func TestLatticeCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"lattice", "--size", "2", "--spacing", "1"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("lattice err=%v", err)
	}

	c, err := defs.DecodeCluster(&out)
	if err != nil {
		t.Fatalf("decode err=%v", err)
	}
	if len(c.Positions) != 8 || len(c.Charges) != 8 {
		t.Fatalf("got %d positions, %d charges, want 8 each", len(c.Positions), len(c.Charges))
	}
	sum := 0.0
	for _, q := range c.Charges {
		sum += q
	}
	if sum != 0 {
		t.Fatalf("net charge=%v, want 0", sum)
	}
}

func TestLatticeCommandBadSpacing(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"lattice", "--spacing", "0"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for zero spacing")
	}
}

func TestScalesCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"scales"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("scales err=%v", err)
	}
	got := strings.Fields(out.String())
	if len(got) != len(colorscale.Names()) {
		t.Fatalf("listed %v, want %v", got, colorscale.Names())
	}
	if !strings.Contains(out.String(), "coolwarm") {
		t.Fatalf("output %q lacks coolwarm", out.String())
	}
}

func TestViewCommandHiddenAndRejectsBadInput(t *testing.T) {
	cmd := newRootCmd()
	view, _, err := cmd.Find([]string{app.ViewCommand})
	if err != nil || view.Name() != app.ViewCommand {
		t.Fatalf("Find(view)=%v, %v", view, err)
	}
	if !view.Hidden {
		t.Fatal("view command should be hidden")
	}

	cmd.SetIn(strings.NewReader("not json"))
	cmd.SetArgs([]string{app.ViewCommand})
	if err := cmd.Execute(); !errors.Is(err, app.ErrBadPayload) {
		t.Fatalf("err=%v, want ErrBadPayload", err)
	}
}
