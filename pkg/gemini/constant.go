package gemini

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-flash-latest"

	RoleUser  = "user"
	RoleModel = "model"
)
