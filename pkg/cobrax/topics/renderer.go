package topics

// Renderer formats topic content for terminal display. The format argument
// is the topic file's extension, including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged regardless of format
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
