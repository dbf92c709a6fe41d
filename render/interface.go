package render

// SystemRenderer is implemented by every visual layer of the clock face
type SystemRenderer interface {
	Render(ctx RenderContext, buf *Buffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
