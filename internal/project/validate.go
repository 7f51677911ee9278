package project

import (
	"regexp"
	"strings"
)

// maxNameLength matches the npm package-name limit; generated projects are
// Node.js packages and their directory name becomes the package name.
const maxNameLength = 214

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// reservedNames are names that would collide with files npm itself owns.
var reservedNames = map[string]struct{}{
	"node_modules":      {},
	"favicon.ico":       {},
	"package.json":      {},
	"package-lock.json": {},
}

// ValidateName rejects invalid or unsafe project names before any filesystem
// mutation occurs. It is a pure guard: it returns nil when the name is
// acceptable and *InvalidNameError otherwise, and never touches the disk.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &InvalidNameError{Name: name, Reason: "name is empty"}
	}

	if len(name) > maxNameLength {
		return &InvalidNameError{Name: name, Reason: "name exceeds 214 characters"}
	}

	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "-") {
		return &InvalidNameError{Name: name, Reason: "name cannot start with '.' or '-'"}
	}

	if !namePattern.MatchString(name) {
		return &InvalidNameError{Name: name, Reason: "name may only contain letters, digits, '-' and '_'"}
	}

	if _, reserved := reservedNames[strings.ToLower(name)]; reserved {
		return &InvalidNameError{Name: name, Reason: "name is reserved"}
	}

	return nil
}
