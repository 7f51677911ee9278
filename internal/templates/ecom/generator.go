// Package ecom generates an Express + Mongoose e-commerce backend.
package ecom

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/simonhull/backforge/generator"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Generator materializes the ecom archetype.
type Generator struct {
	renderer *generator.Renderer
}

// New creates an ecom template generator.
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
	{"templates/routes_products.js.tmpl", "routes/products.js", 0644},
	{"templates/routes_orders.js.tmpl", "routes/orders.js", 0644},
	{"templates/controller_products.js.tmpl", "controllers/productController.js", 0644},
	{"templates/controller_orders.js.tmpl", "controllers/orderController.js", 0644},
	{"templates/model_product.js.tmpl", "models/Product.js", 0644},
	{"templates/model_order.js.tmpl", "models/Order.js", 0644},
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

	// Product images land here at runtime; the directory ships empty.
	ops = append(ops, &generator.MkdirOp{
		Path: filepath.Join(targetDir, "uploads"),
		Mode: 0755,
	})

	return ops, nil
}
