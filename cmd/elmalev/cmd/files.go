package cmd

import (
	"fmt"
	"os"

	"github.com/ssargent/elmalev/pkg/codec"
)

// readLevelFile loads and decodes a level file.
func readLevelFile(c *codec.LevelCodec, path string) (*codec.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}
	l, err := c.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return l, nil
}

// writeLevelFile encodes l and writes it to path.
func writeLevelFile(c *codec.LevelCodec, path string, l *codec.Level) error {
	data, err := c.Encode(l)
	if err != nil {
		return fmt.Errorf("failed to encode level: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write level file: %w", err)
	}
	return nil
}
