// Package aichat generates an Express backend that proxies chat completions
// to the OpenAI API.
package aichat

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/simonhull/backforge/generator"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Generator materializes the aichat archetype.
type Generator struct {
	renderer *generator.Renderer
}

// New creates an aichat template generator.
func New() *Generator {
	return &Generator{renderer: generator.NewRenderer()}
}

var manifest = []struct {
	src  string
	dst  string
	mode fs.FileMode
}{
	{"templates/package.json.tmpl", "package.json", 0644},
	{"templates/server.js.tmpl", "server.js", 0644},
	{"templates/routes_chat.js.tmpl", "routes/chat.js", 0644},
	{"templates/controller_chat.js.tmpl", "controllers/chatController.js", 0644},
	{"templates/index.html.tmpl", "public/index.html", 0644},
	{"templates/env.tmpl", ".env", 0644},
	{"templates/gitignore.tmpl", ".gitignore", 0644},
	{"templates/README.md.tmpl", "README.md", 0644},
}

// Generate renders the archetype's files beneath targetDir.
func (g *Generator) Generate(targetDir, name string) ([]generator.Operation, error) {
	data := struct{ Name string }{Name: name}

	ops := make([]generator.Operation, 0, len(manifest))
	for _, f := range manifest {
		content, err := g.renderer.RenderFS(templatesFS, f.src, data)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", f.dst, err)
		}
		ops = append(ops, &generator.WriteFileOp{
			Path:    filepath.Join(targetDir, f.dst),
			Content: content,
			Mode:    f.mode,
		})
	}

	return ops, nil
}
