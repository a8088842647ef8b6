package hooks

// ConfigOptions is the config member of a create or edit request. InsecureSsl takes "0" or "1".
type ConfigOptions struct {
	Url         string       `json:"url"`
	ContentType *ContentType `json:"content_type,omitempty"`
	Secret      *string      `json:"secret,omitempty"`
	InsecureSsl *string      `json:"insecure_ssl,omitempty"`
}

type HookCreateOptions struct {
	Name   string        `json:"name"`
	Config ConfigOptions `json:"config"`
	Events []string      `json:"events,omitempty"`
	Active bool          `json:"active"`
}

// NewWebHook returns the options for an active "web" hook delivering push events to url.
func NewWebHook(url string) HookCreateOptions {
	return HookCreateOptions{
		Name:   "web",
		Config: ConfigOptions{Url: url},
		Events: []string{"push"},
		Active: true,
	}
}

type HookEditOptions struct {
	Config       *ConfigOptions `json:"config,omitempty"`
	Events       []string       `json:"events,omitempty"`
	AddEvents    []string       `json:"add_events,omitempty"`
	RemoveEvents []string       `json:"remove_events,omitempty"`
	Active       *bool          `json:"active,omitempty"`
}
