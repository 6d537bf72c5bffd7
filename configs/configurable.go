package configs

// Configurable is implemented by typed option values resolved from config files.
// ConfigExpr names the option in diagnostics.
type Configurable interface {
	ConfigExpr() string
}
