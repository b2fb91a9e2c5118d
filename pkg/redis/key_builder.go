package redis

// KeyBuilder namespaces keys by environment so staging and production can
// share one Redis
type KeyBuilder struct {
	namespace string
}

// NewKeyBuilder maps the environment to its namespace. Anything that is not
// a known non-production environment is treated as production.
func NewKeyBuilder(environment string) *KeyBuilder {
	env := "prod"
	switch environment {
	case "development", "staging", "test":
		env = "staging"
	}
	return &KeyBuilder{namespace: env + ":backoffice"}
}

// Namespace is the prefix shared by every key
func (kb *KeyBuilder) Namespace() string {
	return kb.namespace
}

// Session is the key holding one browser session's view model
func (kb *KeyBuilder) Session(sessionID string) string {
	return kb.namespace + ":session:" + sessionID
}
