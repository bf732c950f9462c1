// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads contact details from a directory of plain-text
// files. Each file is one entry: the filename is the key and the trimmed
// file contents are the value.
//
// chemreg uses a single key file today: contact-email, which is embedded
// into the User-Agent sent to PubChem and Wikipedia so upstream operators
// can reach whoever runs the tool.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ContactEmailKey is the filename holding the operator's contact address.
const ContactEmailKey = "contact-email"

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory is not an error; Load returns an empty
// map. Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", entry.Name(), err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[entry.Name()] = value
		}
	}

	return secrets, nil
}

// ContactEmail returns the contact-email entry from dir, or "" when the
// directory or the entry is absent.
func ContactEmail(dir string) string {
	s, err := Load(dir)
	if err != nil {
		return ""
	}
	return s[ContactEmailKey]
}
