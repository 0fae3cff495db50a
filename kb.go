package fol

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// KB is the YAML document form of a knowledge base: clause strings in
// ParseClause syntax and an optional default query.
type KB struct {
	Clauses []string `yaml:"clauses"`
	Query   string   `yaml:"query,omitempty"`
}

// ReadKB decodes a knowledge base document from r.
func ReadKB(r io.Reader) (KB, error) {
	var kb KB
	if err := yaml.NewDecoder(r).Decode(&kb); err != nil {
		return KB{}, fmt.Errorf("read kb: %w", err)
	}
	return kb, nil
}

// ReadKBFile decodes a knowledge base document from the file at path.
func ReadKBFile(path string) (KB, error) {
	f, err := os.Open(path)
	if err != nil {
		return KB{}, fmt.Errorf("read kb: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return ReadKB(f)
}
