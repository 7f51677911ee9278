package project

import (
	"strings"

	"github.com/simonhull/backforge/generator"
)

// Kind identifies one of the preset backend archetypes.
type Kind string

const (
	KindBasic   Kind = "basic"
	KindChatApp Kind = "chatapp"
	KindEcom    Kind = "ecom"
	KindBlog    Kind = "blog"
	KindAIChat  Kind = "aichat"
)

// AllKinds is the closed set of selectable archetypes, in display order.
var AllKinds = []Kind{KindBasic, KindChatApp, KindEcom, KindBlog, KindAIChat}

// ParseKind normalizes and validates a user-supplied template kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllKinds {
		if k == known {
			return k, nil
		}
	}
	return "", &UnknownTemplateError{Kind: s}
}

// Template is a fixed bundle of file-generation logic producing one backend
// archetype's boilerplate.
//
// Generate returns the file operations that materialize the archetype under
// targetDir for a project called name. It may lay out any tree it likes below
// targetDir; the scaffolder imposes no structure on it and executes the
// operations itself.
type Template interface {
	Generate(targetDir, name string) ([]generator.Operation, error)
}
