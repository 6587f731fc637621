package entity

// ConnInfo is what a provider needs to reach one model.
type ConnInfo struct {
	ProviderID string
	BaseURL    string
	APIKey     string
	Model      string
	Headers    map[string]string
}

// ModelRef names a model as "<provider>/<model>".
type ModelRef struct {
	Provider string
	Model    string
}

func (r ModelRef) String() string {
	return r.Provider + "/" + r.Model
}
