package suite

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidSelector = errors.New("invalid selector")
)

// Test is one registered check: a raw dataset and the output the sweep is
// expected to produce for it. Contents are stored inline so a suite file is
// self-contained and reproducible.
type Test struct {
	Input    string `yaml:"input"`
	Expected string `yaml:"expected"`
}

// Outcome is a cached run result, keyed by the test's digest so any edit to
// input or expected output invalidates it.
type Outcome struct {
	Pass bool   `yaml:"pass"`
	Err  string `yaml:"err,omitempty"`
}

// File is the on-disk suite: the registered tests plus the result cache.
type File struct {
	Tests   []Test             `yaml:"tests"`
	Results map[string]Outcome `yaml:"results,omitempty"`
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("suite %s: %w", path, err)
	}
	return &f, nil
}

func Save(path string, f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Digest identifies a test by the content of its input and expected output.
func Digest(t Test) string {
	h := sha256.New()
	h.Write([]byte(t.Input))
	h.Write([]byte{0})
	h.Write([]byte(t.Expected))
	return hex.EncodeToString(h.Sum(nil))
}
