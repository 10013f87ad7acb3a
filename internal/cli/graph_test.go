package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/featgate/featgate/pkg/depgraph"
)

func TestResolveDepsDir(t *testing.T) {
	tests := []struct {
		name         string
		manifestPath string
		depsDir      string
		want         string
	}{
		{
			name:         "relative to manifest",
			manifestPath: filepath.Join("proj", "featgate.toml"),
			depsDir:      "deps",
			want:         filepath.Join("proj", "deps"),
		},
		{
			name:         "absolute stays",
			manifestPath: filepath.Join("proj", "featgate.toml"),
			depsDir:      string(filepath.Separator) + "vendored",
			want:         string(filepath.Separator) + "vendored",
		},
		{
			name:         "no manifest path",
			manifestPath: "",
			depsDir:      "deps",
			want:         "deps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveDepsDir(tt.manifestPath, tt.depsDir); got != tt.want {
				t.Errorf("resolveDepsDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderGraphText(t *testing.T) {
	g := depgraph.New(nil)
	_ = g.AddNode(depgraph.Node{ID: "myapp", Version: "0.1.0", Enabled: []string{"json"}})
	_ = g.AddNode(depgraph.Node{ID: "libjson", Version: "1.2", Enabled: []string{"simd"}})
	_ = g.AddEdge(depgraph.Edge{From: "myapp", To: "libjson"})
	g.SetRoot("myapp")

	out := renderGraphText(g)

	if !strings.Contains(out, "Dependencies of myapp") {
		t.Errorf("missing title:\n%s", out)
	}
	for _, want := range []string{"myapp 0.1.0", "libjson 1.2", "simd"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// The dependency is indented one level deeper than the root.
	rootIdx := strings.Index(out, "myapp 0.1.0")
	depIdx := strings.Index(out, "libjson 1.2")
	if rootIdx < 0 || depIdx < rootIdx {
		t.Errorf("dependency listed before root:\n%s", out)
	}
}

func TestGraphCommandJSON(t *testing.T) {
	path := writeManifest(t, testManifest)

	cmd := newGraphCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path, "--format", "json"})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("graph command failed: %v", err)
	}

	var snap struct {
		Root  string `json:"root"`
		Nodes []struct {
			ID string `json:"id"`
		} `json:"nodes"`
	}
	if err := json.Unmarshal(out.Bytes(), &snap); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}
	if snap.Root != "myapp" {
		t.Errorf("root = %q, want %q", snap.Root, "myapp")
	}

	// libmetrics is gated on the disabled metrics feature.
	for _, n := range snap.Nodes {
		if n.ID == "libmetrics" {
			t.Error("libmetrics present in graph, want excluded")
		}
	}
}

func TestGraphCommandUnknownFormat(t *testing.T) {
	path := writeManifest(t, testManifest)

	cmd := newGraphCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path, "--format", "yaml"})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatal("graph command expected error for unknown format")
	}
}

func TestCheckCommand(t *testing.T) {
	path := writeManifest(t, testManifest)

	cmd := newCheckCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("check command failed: %v", err)
	}
	if !strings.Contains(out.String(), "configuration valid") {
		t.Errorf("output = %q, want validity notice", out.String())
	}
}

func TestCheckCommandInvalid(t *testing.T) {
	path := writeManifest(t, `
[package]
name = "myapp"

[dependencies.libbad]
only_features = []
`)

	cmd := newCheckCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatal("check command expected error for empty only_features")
	}
}
