package version

import (
	"bytes"
	"encoding/json"
	"runtime"
	"testing"

	"github.com/flarebyte/greet/internal/buildinfo"
)

func resetBuildinfo(t *testing.T, version, commit, date string) {
	t.Helper()
	oldVersion, oldCommit, oldDate := buildinfo.Version, buildinfo.Commit, buildinfo.Date
	t.Cleanup(func() {
		buildinfo.Version, buildinfo.Commit, buildinfo.Date = oldVersion, oldCommit, oldDate
	})
	buildinfo.Version = version
	buildinfo.Commit = commit
	buildinfo.Date = date
}

func runVersion(t *testing.T, args ...string) (string, string) {
	t.Helper()
	cmd := NewCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("run: %v", err)
	}
	return stdout.String(), stderr.String()
}

func TestVersionDefaultOutputStable(t *testing.T) {
	resetBuildinfo(t, "", "", "")

	got, _ := runVersion(t)
	if got != "greet dev\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestVersionShortWinsOverJSON(t *testing.T) {
	resetBuildinfo(t, "1.2.3", "", "")

	got, stderr := runVersion(t, "--short", "--json")
	if got != "greet 1.2.3\n" {
		t.Fatalf("unexpected output: %q", got)
	}
	if stderr != "" {
		t.Fatalf("unexpected stderr: %q", stderr)
	}
}

func TestVersionJSON(t *testing.T) {
	resetBuildinfo(t, "1.2.3", "0123456789abcdef", "2026-10-15")

	stdout, stderr := runVersion(t, "--json")
	var info Info
	if err := json.Unmarshal([]byte(stdout), &info); err != nil {
		t.Fatalf("decode: %v\n%s", err, stdout)
	}
	if info.Version != "1.2.3" || info.Commit != "0123456789abcdef" || info.Date != "2026-10-15" {
		t.Fatalf("unexpected info: %+v", info)
	}
	if info.Go != runtime.Version() || info.GoOS != runtime.GOOS || info.GoArch != runtime.GOARCH {
		t.Fatalf("unexpected runtime info: %+v", info)
	}
	if stderr != "greet version: 1.2.3 (commit=0123456, date=2026-10-15)\n" {
		t.Fatalf("unexpected stderr: %q", stderr)
	}
}
