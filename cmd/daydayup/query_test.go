package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/daydayup/internal/config"
	"github.com/gorewood/daydayup/internal/output"
)

// fixedArgs pins the clock and zone for deterministic output.
var fixedArgs = []string{"--at", "2024-03-01T00:00:00Z", "--tz", "UTC", "--color", "never"}

func withFixed(args ...string) []string {
	return append(append([]string{}, fixedArgs...), args...)
}

func TestQuery_DurationHuman(t *testing.T) {
	isolateConfig(t)

	stdout, stderr, err := execute(t, withFixed("1D")...)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := strings.Join([]string{
		"1. 86400000 milliseconds",
		"   86400000",
		"   P1D",
		"2. a day ago is 2024-02-29 00:00:00.000",
		"   1709164800000",
		"3. a day from now is 2024-03-02 00:00:00.000",
		"   1709337600000",
		"4. Now is 2024-03-01 00:00:00.000",
		"   1709251200000",
		"",
	}, "\n")
	if stdout != want {
		t.Errorf("output:\n%s\nwant:\n%s", stdout, want)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty", stderr)
	}
}

func TestQuery_ArgsAreJoined(t *testing.T) {
	isolateConfig(t)

	stdout, _, err := execute(t, withFixed("--json", "d", "3600000")...)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result struct {
		Input string `json:"input"`
		Mode  string `json:"mode"`
		Items []struct {
			Value    any    `json:"value"`
			Subtitle string `json:"subtitle"`
		} `json:"items"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if result.Input != "d 3600000" || result.Mode != "number-duration" {
		t.Errorf("input/mode = %q/%q", result.Input, result.Mode)
	}
	if len(result.Items) != 4 || result.Items[0].Subtitle != "PT1H" {
		t.Errorf("items = %+v", result.Items)
	}
}

func TestQuery_DefaultJSON(t *testing.T) {
	isolateConfig(t)

	stdout, _, err := execute(t, withFixed("--json")...)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result struct {
		Mode  string `json:"mode"`
		Items []struct {
			Value any    `json:"value"`
			Title string `json:"title"`
		} `json:"items"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if result.Mode != "default" {
		t.Errorf("mode = %q, want default", result.Mode)
	}
	if len(result.Items) != 10 {
		t.Fatalf("got %d items, want 10", len(result.Items))
	}
	if result.Items[0].Value != float64(1709251200000) || result.Items[0].Title != "Today is 2024-03-01 00:00:00" {
		t.Errorf("items[0] = %+v", result.Items[0])
	}
}

func TestQuery_Alfred(t *testing.T) {
	isolateConfig(t)

	stdout, _, err := execute(t, withFixed("--alfred", "T1H")...)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var feedback struct {
		Items []struct {
			Title string `json:"title"`
			Arg   string `json:"arg"`
		} `json:"items"`
	}
	if err := json.Unmarshal([]byte(stdout), &feedback); err != nil {
		t.Fatalf("invalid Alfred JSON: %v\n%s", err, stdout)
	}
	if len(feedback.Items) != 4 {
		t.Fatalf("got %d items, want 4", len(feedback.Items))
	}
	if feedback.Items[0].Arg != "3600000" {
		t.Errorf("items[0].arg = %q, want 3600000", feedback.Items[0].Arg)
	}
}

func TestQuery_WarningsGoToStderr(t *testing.T) {
	isolateConfig(t)

	stdout, stderr, err := execute(t, withFixed("xyzzy")...)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "Invalid Date") {
		t.Errorf("stdout should contain degenerate items: %q", stdout)
	}
	if !strings.HasPrefix(stderr, "Warning: ") {
		t.Errorf("stderr = %q, want a warning", stderr)
	}
}

func TestQuery_LocaleFromEnv(t *testing.T) {
	isolateConfig(t)
	t.Setenv(config.EnvLocale, "zh")

	stdout, _, err := execute(t, fixedArgs...)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "今天是2024-03-01 00:00:00") {
		t.Errorf("output should use the zh catalog: %q", stdout)
	}
}

func TestQuery_LocaleFlagBeatsEnv(t *testing.T) {
	isolateConfig(t)
	t.Setenv(config.EnvLocale, "zh")

	stdout, _, err := execute(t, withFixed("--locale", "en")...)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "Today is 2024-03-01 00:00:00") {
		t.Errorf("output should use the en catalog: %q", stdout)
	}
}

func TestQuery_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"json with alfred", withFixed("--json", "--alfred"), output.ExitUserError},
		{"bad timezone", []string{"--tz", "Mars/Olympus"}, output.ExitUserError},
		{"bad color", []string{"--color", "rainbow"}, output.ExitUserError},
		{"bad reference time", []string{"--at", "xyzzy", "--tz", "UTC"}, output.ExitUserError},
		{"unknown locale", []string{"--locale", "xx"}, output.ExitUserError},
		{"bad week numbering", nil, output.ExitSystemError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolateConfig(t)
			if tt.args == nil {
				writeConfig(t, dir, "week_numbering: monday\n")
			}

			_, stderr, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := output.GetExitCode(err); got != tt.wantCode {
				t.Errorf("exit code = %d, want %d", got, tt.wantCode)
			}
			if tt.name != "json with alfred" && !strings.HasPrefix(stderr, "Error: ") {
				t.Errorf("stderr = %q, want an error line", stderr)
			}
		})
	}
}

func TestQuery_ErrorJSON(t *testing.T) {
	isolateConfig(t)

	stdout, _, err := execute(t, "--json", "--tz", "Mars/Olympus")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("error output is not JSON: %v\n%s", err, stdout)
	}
	if result["code"] != float64(output.ExitUserError) {
		t.Errorf("code = %v, want %d", result["code"], output.ExitUserError)
	}
	if !strings.Contains(result["error"].(string), "Mars/Olympus") {
		t.Errorf("error = %v, want the timezone named", result["error"])
	}
}

func TestQuery_MalformedConfig(t *testing.T) {
	dir := isolateConfig(t)
	writeConfig(t, dir, "locale: [unterminated\n")

	_, _, err := execute(t, fixedArgs...)
	if got := output.GetExitCode(err); got != output.ExitSystemError {
		t.Errorf("exit code = %d, want %d (err = %v)", got, output.ExitSystemError, err)
	}
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
}
