package utils

import (
	"encoding/json"
	"os"

	"go-register/models"
)

// LoadSettings reads the persisted register settings. A missing file
// yields the defaults; a corrupt file is an error so a typo'd manual
// edit does not silently reset the register.
func LoadSettings(path string) (models.Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return models.Settings{}, err
	}
	defer f.Close()

	s := models.DefaultSettings()
	if err := json.NewDecoder(f).Decode(&s); err != nil {
		return models.Settings{}, err
	}
	if s.BigNoteThresholdCents <= 0 {
		s.BigNoteThresholdCents = models.DefaultSettings().BigNoteThresholdCents
	}
	return s, nil
}

// SaveSettings writes settings atomically (temp file + rename).
func SaveSettings(path string, s models.Settings) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
