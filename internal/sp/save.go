package sp

import (
	"encoding/json"
	"fmt"
	"os"
)

// Marshal renders the backup as 2-space indented JSON with a trailing
// newline, the layout Super Productivity itself exports.
func (b *Backup) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal backup: %w", err)
	}
	return append(data, '\n'), nil
}

// Save writes the backup to path. File IO stays out of the conversion
// core; this is the writer collaborator.
func (b *Backup) Save(path string) error {
	data, err := b.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write backup file: %w", err)
	}
	return nil
}
