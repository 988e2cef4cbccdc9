package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/matzehuels/artifactitems/pkg/errors"
)

const mylibBlock = `                                <artifactItem>
                                    <groupId>org.example</groupId>
                                    <artifactId>mylib</artifactId>
                                    <version>1.0</version>
                                    <type>jar</type>
                                    <outputDirectory>${project.build.directory}/repository/org/example/mylib/1.0</outputDirectory>
                                </artifactItem>
`

// newTestCLI returns a CLI writing output and logs to buffers.
func newTestCLI() (c *CLI, out, logs *bytes.Buffer) {
	out, logs = &bytes.Buffer{}, &bytes.Buffer{}
	c = New(logs, LogDebug)
	c.Out = out
	c.In = strings.NewReader("")
	return c, out, logs
}

func execute(c *CLI, args ...string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

// writeFile creates name under dir with the given content.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootDefaultInvocation(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "files", "./org/example/mylib/1.0/mylib-1.0.jar\n")
	t.Chdir(dir)

	c, out, logs := newTestCLI()
	if err := execute(c); err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	if out.String() != mylibBlock {
		t.Errorf("output =\n%s\nwant\n%s", out.String(), mylibBlock)
	}
	if !strings.Contains(logs.String(), "Generated 1 artifact items") {
		t.Errorf("logs = %q, want completion message", logs.String())
	}
}

func TestRootMissingInput(t *testing.T) {
	t.Chdir(t.TempDir())

	c, out, _ := newTestCLI()
	err := execute(c)
	if !apperrors.Is(err, apperrors.ErrCodeMissingInput) {
		t.Fatalf("error = %v, want MISSING_INPUT", err)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want none", out.String())
	}
}

func TestRootMalformedLine(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "listing", "./org/example/mylib/1.0/mylib-1.0.jar\n./README\n./g/a/1/a-1.jar\n")

	c, out, _ := newTestCLI()
	err := execute(c, "-i", input)
	if !apperrors.Is(err, apperrors.ErrCodeMalformedLine) {
		t.Fatalf("error = %v, want MALFORMED_LINE", err)
	}
	if out.String() != mylibBlock {
		t.Errorf("output = %q, want only the first block", out.String())
	}
}

func TestRootFormats(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "files", "./org/example/mylib/1.0/mylib-1.0.jar\n")

	tests := []struct {
		format string
		want   string
	}{
		{"gav", "org.example:mylib:jar:1.0\n"},
		{"GAV", "org.example:mylib:jar:1.0\n"},
		{"xml", mylibBlock},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			c, out, _ := newTestCLI()
			if err := execute(c, "-i", input, "-f", tt.format); err != nil {
				t.Fatal(err)
			}
			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestRootJSONFormat(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "files", "./org/example/mylib/1.0/mylib-1.0.jar\n")

	c, out, _ := newTestCLI()
	if err := execute(c, "-i", input, "--format", "json"); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"groupId":"org.example"`, `"outputDirectory":"${project.build.directory}/repository/org/example/mylib/1.0"`} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output %q missing %s", out.String(), want)
		}
	}
}

func TestRootInvalidFormat(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "files", "./g/a/1/a-1.jar\n")

	c, out, _ := newTestCLI()
	err := execute(c, "-i", input, "-f", "yaml")
	if !apperrors.Is(err, apperrors.ErrCodeInvalidFormat) {
		t.Fatalf("error = %v, want INVALID_FORMAT", err)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want none", out.String())
	}
}

func TestRootStdin(t *testing.T) {
	c, out, _ := newTestCLI()
	c.In = strings.NewReader("./g/a/1/a-1.jar\n./g/b/2/b-2.pom\n")

	if err := execute(c, "-i", "-", "-f", "gav"); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "g:a:jar:1\ng:b:pom:2\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRootOutputFile(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "files", "./org/example/mylib/1.0/mylib-1.0.jar\n")
	output := filepath.Join(dir, "items.xml")

	c, out, _ := newTestCLI()
	if err := execute(c, "-i", input, "-o", output); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != mylibBlock {
		t.Errorf("file content =\n%s", data)
	}
	if !strings.Contains(out.String(), "Wrote 1 artifact items") || !strings.Contains(out.String(), output) {
		t.Errorf("report = %q", out.String())
	}
}

func TestRootMissingInputLeavesNoOutputFile(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "items.xml")

	c, _, _ := newTestCLI()
	err := execute(c, "-i", filepath.Join(dir, "absent"), "-o", output)
	if !apperrors.Is(err, apperrors.ErrCodeMissingInput) {
		t.Fatalf("error = %v, want MISSING_INPUT", err)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Errorf("output file exists after failed run: %v", err)
	}
}

func TestRootRepository(t *testing.T) {
	repo := t.TempDir()
	writeFile(t, repo, "org/example/mylib/1.0/mylib-1.0.pom", "")
	writeFile(t, repo, "org/example/mylib/1.0/mylib-1.0.jar", "")
	writeFile(t, repo, "org/example/mylib/1.0/mylib-1.0.jar.sha1", "")
	writeFile(t, repo, "org/example/mylib/1.0/_remote.repositories", "")

	c, out, _ := newTestCLI()
	if err := execute(c, "-r", repo, "-f", "gav"); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "org.example:mylib:jar:1.0\norg.example:mylib:pom:1.0\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRootExcludeDeclared(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "files", "./g/a/1/a-1.jar\n./g/a/1/a-1.pom\n./g/b/2/b-2.jar\n")
	pomFile := writeFile(t, dir, "pom.xml", `<project>
  <build><plugins><plugin>
    <artifactId>maven-dependency-plugin</artifactId>
    <configuration><artifactItems>
      <artifactItem>
        <groupId>g</groupId>
        <artifactId>a</artifactId>
        <version>1</version>
      </artifactItem>
    </artifactItems></configuration>
  </plugin></plugins></build>
</project>
`)

	c, out, logs := newTestCLI()
	if err := execute(c, "-i", input, "-f", "gav", "--exclude-declared", pomFile); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "g:a:pom:1\ng:b:jar:2\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if !strings.Contains(logs.String(), "1 already declared") {
		t.Errorf("logs = %q, want excluded count", logs.String())
	}
}

func TestRootExcludeDeclaredInvalidPOM(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "files", "./g/a/1/a-1.jar\n")
	pomFile := writeFile(t, dir, "pom.xml", "<project><artifactItem>")

	c, out, _ := newTestCLI()
	err := execute(c, "-i", input, "--exclude-declared", pomFile)
	if !apperrors.Is(err, apperrors.ErrCodeInvalidManifest) {
		t.Fatalf("error = %v, want INVALID_MANIFEST", err)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want none", out.String())
	}
}

func TestRootConfigFile(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "listing", "./g/a/1/a-1.jar\n")
	cfg := writeFile(t, dir, "artifactitems.toml", "input = "+quoteTOML(input)+"\nformat = \"gav\"\n")

	t.Run("file values apply", func(t *testing.T) {
		c, out, _ := newTestCLI()
		if err := execute(c, "--config", cfg); err != nil {
			t.Fatal(err)
		}
		if out.String() != "g:a:jar:1\n" {
			t.Errorf("output = %q", out.String())
		}
	})

	t.Run("flags override file", func(t *testing.T) {
		c, out, _ := newTestCLI()
		if err := execute(c, "--config", cfg, "-f", "xml"); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out.String(), "<artifactItem>") {
			t.Errorf("output = %q, want XML", out.String())
		}
	})
}

func TestRootInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "bad.toml", "formatt = \"gav\"\n")

	c, _, _ := newTestCLI()
	err := execute(c, "--config", cfg)
	if !apperrors.Is(err, apperrors.ErrCodeInvalidConfig) {
		t.Fatalf("error = %v, want INVALID_CONFIG", err)
	}
}

func TestRootRejectsArguments(t *testing.T) {
	c, _, _ := newTestCLI()
	if err := execute(c, "files"); err == nil {
		t.Error("execute() with a positional argument succeeded, want error")
	}
}

func TestRootVersion(t *testing.T) {
	c, out, _ := newTestCLI()
	if err := execute(c, "--version"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "artifactitems version ") {
		t.Errorf("version output = %q", out.String())
	}
}

func TestSetLogLevel(t *testing.T) {
	var logs bytes.Buffer
	c := New(&logs, LogInfo)

	c.Logger.Debug("hidden")
	if logs.Len() != 0 {
		t.Fatalf("debug message logged at info level: %q", logs.String())
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(logs.String(), "shown") {
		t.Errorf("debug message missing after SetLogLevel: %q", logs.String())
	}
}

// quoteTOML quotes a path as a TOML literal string.
func quoteTOML(s string) string {
	return "'" + s + "'"
}
