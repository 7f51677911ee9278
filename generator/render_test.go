package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	r := NewRenderer()
	assert.NotNil(t, r)
	assert.NotNil(t, r.funcMap)
	assert.NotNil(t, r.cache)
	assert.Empty(t, r.cache)
}

func TestRenderString(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name        string
		templateStr string
		data        any
		expected    string
		wantErr     bool
		errContains string
	}{
		{
			name:        "simple template with no data",
			templateStr: "Hello World",
			data:        nil,
			expected:    "Hello World",
		},
		{
			name:        "template with struct data",
			templateStr: "Hello, {{ .Name }}!",
			data:        struct{ Name string }{Name: "my-app"},
			expected:    "Hello, my-app!",
		},
		{
			name:        "template with helper function",
			templateStr: "class {{ pascalCase .Name }}Server {}",
			data:        struct{ Name string }{Name: "chat-app"},
			expected:    "class ChatAppServer {}",
		},
		{
			name:        "template with syntax error",
			templateStr: "{{ .Name }",
			data:        nil,
			wantErr:     true,
			errContains: "failed to parse template",
		},
		{
			name:        "template with execution error",
			templateStr: "{{ .NonExistent }}",
			data:        struct{}{},
			wantErr:     true,
			errContains: "failed to render template",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.RenderString(tt.name, tt.templateStr, tt.data)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(got))
		})
	}
}

func TestRenderString_CachesTemplates(t *testing.T) {
	r := NewRenderer()

	_, err := r.RenderString("greeting", "Hello, {{ .Name }}!", struct{ Name string }{Name: "a"})
	require.NoError(t, err)
	assert.Len(t, r.cache, 1)

	// Second render with the same name reuses the cached template.
	got, err := r.RenderString("greeting", "ignored {{ .Name }}", struct{ Name string }{Name: "b"})
	require.NoError(t, err)
	assert.Equal(t, "Hello, b!", string(got))

	r.ClearCache()
	assert.Empty(t, r.cache)
}

func TestPascalCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"my-app", "MyApp"},
		{"user_name", "UserName"},
		{"myApp", "MyApp"},
		{"ai-chat", "AIChat"},
		{"api", "API"},
		{"blog", "Blog"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PascalCase(tt.in), "PascalCase(%q)", tt.in)
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"my-app", "myApp"},
		{"UserName", "userName"},
		{"ecom-store", "ecomStore"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CamelCase(tt.in), "CamelCase(%q)", tt.in)
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"my-app"`, Quote("my-app"))
}

func TestDefault(t *testing.T) {
	assert.Equal(t, "fallback", Default("fallback", nil))
	assert.Equal(t, "fallback", Default("fallback", ""))
	assert.Equal(t, "value", Default("fallback", "value"))
}
