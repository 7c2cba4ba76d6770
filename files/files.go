package files

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read returns the whole content of the file at path.
func Read(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	var content strings.Builder
	reader := bufio.NewReader(file)
	if _, err := io.Copy(&content, reader); err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return content.String(), nil
}
