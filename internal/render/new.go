package render

type implRenderer struct{}

// New creates a docx Renderer.
func New() Renderer {
	return &implRenderer{}
}
