package exec

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCommand returns a command that prints predetermined output
func mockCommand(name string, args ...string) *exec.Cmd {
	cs := []string{"-test.run=TestHelperProcess", "--", name}
	cs = append(cs, args...)
	cmd := exec.Command(os.Args[0], cs...)
	cmd.Env = []string{"GO_WANT_HELPER_PROCESS=1"}
	return cmd
}

// TestHelperProcess is the mock command executor
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for i, arg := range args {
		if arg == "--" {
			args = args[i+1:]
			break
		}
	}

	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "no command specified\n")
		os.Exit(1)
	}

	switch args[0] {
	case "echo":
		if len(args) > 1 {
			fmt.Println(strings.Join(args[1:], " "))
		}
		os.Exit(0)
	case "error":
		fmt.Fprintf(os.Stderr, "error occurred\n")
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		os.Exit(1)
	}
}

func TestNewExecutor(t *testing.T) {
	// Test with nil options
	executor := NewExecutor(nil)
	assert.NotNil(t, executor)
	assert.Equal(t, os.Stdout, executor.stdout)
	assert.Equal(t, os.Stderr, executor.stderr)

	// Test with custom writers
	var out, errOut bytes.Buffer
	executor = NewExecutor(&Options{Stdout: &out, Stderr: &errOut, Dir: "/tmp"})
	assert.Equal(t, &out, executor.stdout)
	assert.Equal(t, "/tmp", executor.dir)
}

func TestExecutor_Run_Success(t *testing.T) {
	var out bytes.Buffer
	executor := NewExecutor(&Options{Stdout: &out, Stderr: &out})
	executor.commandFunc = mockCommand

	err := executor.Run(context.Background(), "echo", "hello world")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "hello world")
}

func TestExecutor_Run_Failure(t *testing.T) {
	var out bytes.Buffer
	executor := NewExecutor(&Options{Stdout: &out, Stderr: &out})
	executor.commandFunc = mockCommand

	err := executor.Run(context.Background(), "error")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error failed")
}

func TestDetectPackageManager_Preferred(t *testing.T) {
	orig := lookPath
	defer func() { lookPath = orig }()

	lookPath = func(name string) (string, error) {
		return "/usr/bin/" + name, nil
	}

	pm, err := DetectPackageManager("yarn")
	require.NoError(t, err)
	assert.Equal(t, "yarn", pm.Name())
}

func TestDetectPackageManager_PreferredMissing(t *testing.T) {
	orig := lookPath
	defer func() { lookPath = orig }()

	lookPath = func(name string) (string, error) {
		return "", exec.ErrNotFound
	}

	_, err := DetectPackageManager("npm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found on PATH")
}

func TestDetectPackageManager_Unsupported(t *testing.T) {
	_, err := DetectPackageManager("bower")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported package manager")
}

func TestDetectPackageManager_FirstAvailable(t *testing.T) {
	orig := lookPath
	defer func() { lookPath = orig }()

	lookPath = func(name string) (string, error) {
		if name == "pnpm" {
			return "/usr/bin/pnpm", nil
		}
		return "", exec.ErrNotFound
	}

	pm, err := DetectPackageManager("")
	require.NoError(t, err)
	assert.Equal(t, "pnpm", pm.Name())
}

func TestStreamingWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewStreamingWriter(&buf, ">", lipgloss.Color("240"))

	// Partial line is buffered, not written
	_, err := w.Write([]byte("hel"))
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	// Completing the line flushes it
	_, err = w.Write([]byte("lo\nwor"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), "wor")

	// Flush writes the remainder
	require.NoError(t, w.Flush())
	assert.Contains(t, buf.String(), "wor")
}
