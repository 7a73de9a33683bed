package usecases

// Renderer substitutes named variables into resolved template content.
// Implementations must be pure: no store or cache access.
type Renderer interface {
	Render(content string, variables map[string]interface{}) (string, error)
}
