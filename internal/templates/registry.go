// Package templates wires the archetype generators into the closed registry
// the scaffolder is constructed with.
package templates

import (
	"github.com/simonhull/backforge/internal/project"
	"github.com/simonhull/backforge/internal/templates/aichat"
	"github.com/simonhull/backforge/internal/templates/basic"
	"github.com/simonhull/backforge/internal/templates/blog"
	"github.com/simonhull/backforge/internal/templates/chatapp"
	"github.com/simonhull/backforge/internal/templates/ecom"
)

// descriptions are the one-liners shown by `backforge templates` and the
// interactive wizard.
var descriptions = map[project.Kind]string{
	project.KindBasic:   "Minimal Express REST backend",
	project.KindChatApp: "Realtime chat backend with Socket.IO",
	project.KindEcom:    "E-commerce backend with Express and Mongoose",
	project.KindBlog:    "Blog backend with posts and comments",
	project.KindAIChat:  "AI chat backend proxying the OpenAI API",
}

// Registry returns the full template registry, one generator per archetype.
func Registry() map[project.Kind]project.Template {
	return map[project.Kind]project.Template{
		project.KindBasic:   basic.New(),
		project.KindChatApp: chatapp.New(),
		project.KindEcom:    ecom.New(),
		project.KindBlog:    blog.New(),
		project.KindAIChat:  aichat.New(),
	}
}

// Describe returns the human-readable description for a kind.
func Describe(kind project.Kind) string {
	return descriptions[kind]
}
