package storage

import (
	"fmt"
	"os"
)

type Storage struct{}

// SaveFile creates or truncates filePath and writes content.
func (s *Storage) SaveFile(filePath string, content []byte) error {
	err := os.WriteFile(filePath, content, 0644)
	if err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}

	return nil
}

// AppendFile appends content to filePath, creating it if needed.
func (s *Storage) AppendFile(filePath string, content []byte) (err error) {
	f, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening file for append: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("error closing file: %w", closeErr)
		}
	}()

	if _, err = f.Write(content); err != nil {
		return fmt.Errorf("error appending to file: %w", err)
	}
	return nil
}
