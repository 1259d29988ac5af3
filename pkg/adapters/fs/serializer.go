package fs

import (
	"bytes"
	"io"
	"strings"
)

// Serializer defines how a note body is read from and written to a file.
type Serializer interface {
	// Parse reads from r and returns the body lines.
	Parse(r io.Reader) ([]string, error)
	// Serialize converts the body lines to bytes.
	Serialize(lines []string) ([]byte, error)
}

// LineSerializer stores one body line per text line, each terminated by "\n".
// There is no header or trailing metadata.
type LineSerializer struct{}

// Parse accepts "\n" and "\r\n" endings. The final terminator does not
// produce an extra empty line; an empty file is an empty body.
func (LineSerializer) Parse(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n"), nil
}

func (LineSerializer) Serialize(lines []string) ([]byte, error) {
	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
