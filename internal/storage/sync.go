package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/misterclayt0n/megin/internal/models"
)

// Export writes the saved state of backend into a TOML dump at outputPath.
func Export(ctx context.Context, backend Backend, outputPath string) error {
	snap, err := backend.Load(ctx)
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("Nothing to export yet")
	}
	if err != nil {
		return fmt.Errorf("Loading state: %w", err)
	}

	var sb strings.Builder
	if err := encodeTOML(&sb, snap); err != nil {
		return fmt.Errorf("Encoding TOML: %w", err)
	}

	// Make the output path absolute relative to the current directory.
	outputPath, err = filepath.Abs(outputPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("Writing export file: %w", err)
	}
	return nil
}

// Import replaces the saved state of backend with the TOML dump at filePath.
func Import(ctx context.Context, backend Backend, filePath string) (*models.Snapshot, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("Reading file %s: %w", filePath, err)
	}

	snap, err := decodeTOML(data)
	if err != nil {
		return nil, fmt.Errorf("Decoding TOML: %w", err)
	}
	for day := range snap.Days {
		if !day.Valid() {
			return nil, fmt.Errorf("Dump contains unknown day %q", day)
		}
	}

	if err := backend.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("Saving imported state: %w", err)
	}
	return snap, nil
}
