//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

const testDataset = `[[cities]]
name = "Paris"
country = "France"
events = 10

[[cities]]
name = "Porto"
country = "Portugal"
events = 5

[[cities]]
name = "Berlin"
country = "Germany"
events = 8

[[events]]
id = 1
name = "Jazz Night"
category = "music"
date = 2025-06-14
city = "Paris"
location = "Le Duc"
description = "Late sets from the house trio."
featured = true

[[events]]
id = 2
name = "Food Market"
category = "food"
date = 2025-06-15
city = "Paris"
location = "Marché des Enfants Rouges"
description = "Street food from thirty stalls."

[[events]]
id = 3
name = "Go Meetup"
category = "technology"
date = 2025-07-01
city = "Berlin"
location = "c-base"
description = "Talks on generics and profiling."
featured = true
`

// CreateTestWorkspace creates an isolated directory holding the dataset and config
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	dir, err := os.MkdirTemp("", "cityscout-e2e-*")
	if err != nil {
		return "", fmt.Errorf("failed to create workspace: %w", err)
	}
	tf.workspace = dir

	if err := os.WriteFile(tf.DataPath(), []byte(testDataset), 0o644); err != nil {
		return "", fmt.Errorf("failed to write dataset: %w", err)
	}
	return dir, nil
}

// WriteConfig writes a config file into the workspace before the app starts
func (tf *TUITestFramework) WriteConfig(content string) error {
	return os.WriteFile(tf.ConfigPath(), []byte(content), 0o644)
}

// ReadConfig returns the config file as the app left it
func (tf *TUITestFramework) ReadConfig() (string, error) {
	data, err := os.ReadFile(tf.ConfigPath())
	return string(data), err
}

// ConfigPath is the config file inside the workspace
func (tf *TUITestFramework) ConfigPath() string {
	return filepath.Join(tf.workspace, "config.toml")
}

// DataPath is the dataset file inside the workspace
func (tf *TUITestFramework) DataPath() string {
	return filepath.Join(tf.workspace, "events.toml")
}
