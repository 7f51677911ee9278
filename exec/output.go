package exec

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StreamingWriter wraps output with per-line styled formatting.
//
// It buffers partial lines so command output that arrives in arbitrary chunks
// is still prefixed and colored one line at a time.
type StreamingWriter struct {
	prefix string
	style  lipgloss.Style
	writer io.Writer
	// Buffer for incomplete lines
	buffer []byte
}

// NewStreamingWriter creates a formatted output writer
func NewStreamingWriter(writer io.Writer, prefix string, color lipgloss.Color) *StreamingWriter {
	return &StreamingWriter{
		prefix: prefix,
		style:  lipgloss.NewStyle().Foreground(color),
		writer: writer,
		buffer: make([]byte, 0),
	}
}

// Write formats and writes output line by line
func (s *StreamingWriter) Write(p []byte) (n int, err error) {
	s.buffer = append(s.buffer, p...)

	lines := strings.Split(string(s.buffer), "\n")

	// Keep the last incomplete line in buffer
	if len(lines) > 0 {
		s.buffer = []byte(lines[len(lines)-1])
		lines = lines[:len(lines)-1]
	}

	for _, line := range lines {
		if line != "" || len(lines) > 1 {
			formatted := s.formatLine(line)
			if _, err := s.writer.Write([]byte(formatted + "\n")); err != nil {
				return 0, err
			}
		}
	}

	return len(p), nil
}

// Flush writes any remaining buffered content
func (s *StreamingWriter) Flush() error {
	if len(s.buffer) > 0 {
		formatted := s.formatLine(string(s.buffer))
		if _, err := s.writer.Write([]byte(formatted + "\n")); err != nil {
			return err
		}
		s.buffer = s.buffer[:0]
	}
	return nil
}

// formatLine applies the prefix and style to a single line
func (s *StreamingWriter) formatLine(line string) string {
	if s.prefix != "" {
		return s.style.Render(s.prefix + " " + line)
	}
	return s.style.Render(line)
}
