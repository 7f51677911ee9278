// Package generator provides utilities for template-based file generation
// with validation, dry-run support, and rollback-friendly execution.
//
// # Operations
//
// File emission is modeled as a list of operations that are validated in full
// before anything is written:
//
//	ops := []generator.Operation{
//	    &generator.WriteFileOp{Path: "my-app/package.json", Content: manifest, Mode: 0644},
//	    &generator.WriteFileOp{Path: "my-app/server.js", Content: entry, Mode: 0644},
//	}
//
//	if err := generator.Execute(ctx, ops, generator.ExecuteOptions{}); err != nil {
//	    // The caller decides what to roll back; Execute stops at the first failure.
//	    return err
//	}
//
// # Rendering
//
// Renderer caches parsed text/template instances and carries helper functions
// (case conversion, quoting) used by the archetype templates:
//
//	renderer := generator.NewRenderer()
//	content, err := renderer.RenderFS(templatesFS, "templates/package.json.tmpl", data)
package generator
