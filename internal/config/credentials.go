package config

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"

	"github.com/eddi888/s3c/internal/model"
)

// sectionHeader matches an INI "[name]" section header. Hand-rolled scanning
// rather than a full INI library: the only thing s3c needs from the
// credentials file is the ordered list of section names, and the pack shows
// this exact bufio+regexp approach for AWS credentials/config files rather
// than pulling in an INI dependency.
var sectionHeader = regexp.MustCompile(`^\[\s*([^]\s]+)\s*\]\s*$`)

// CredentialsFilePath returns "<home>/.aws/credentials".
func CredentialsFilePath(home string) string {
	return filepath.Join(home, ".aws", "credentials")
}

// ListCredentialProfiles enumerates "[name]" section headers from the
// credentials file at path, in file order. A missing file yields an empty,
// non-error result: the ambient credentials file is optional infrastructure,
// not something s3c manages.
func ListCredentialProfiles(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var names []string
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		m := sectionHeader.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := m[1]
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// ProfileListEntry is one row of the union of credentials-file profiles and
// Config-only profiles presented to ProfileList (spec.md §4.1).
type ProfileListEntry struct {
	Name   string
	Orphan bool // true when absent from the credentials file
}

// MergeProfiles unions credential profile names (in file order) with the
// Config's profile names (appended after, for any not already present),
// marking Config-only entries as orphan.
func MergeProfiles(credentialNames []string, cfg model.Config) []ProfileListEntry {
	out := make([]ProfileListEntry, 0, len(credentialNames)+len(cfg.Profiles))
	present := make(map[string]struct{}, len(credentialNames))
	for _, name := range credentialNames {
		present[name] = struct{}{}
		out = append(out, ProfileListEntry{Name: name})
	}
	for _, p := range cfg.Profiles {
		if _, ok := present[p.Name]; ok {
			continue
		}
		out = append(out, ProfileListEntry{Name: p.Name, Orphan: true})
	}
	return out
}
