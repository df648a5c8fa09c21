package entities

// Release asks for one package to be released with the given bump.
type Release struct {
	Name string   `json:"name" yaml:"name"`
	Type BumpType `json:"type" yaml:"type"`
}

// Changeset is one independently authored change intent. It is treated as
// immutable once loaded.
type Changeset struct {
	ID         string    `json:"id" yaml:"id"`
	Summary    string    `json:"summary" yaml:"summary"`
	Commit     string    `json:"commit,omitempty" yaml:"commit,omitempty"`
	Releases   []Release `json:"releases" yaml:"releases"`
	Dependents []Release `json:"dependents" yaml:"dependents"`
}
