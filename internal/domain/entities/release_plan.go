package entities

// PackageRelease is the merged outcome for one package across every changeset
// that touched it. Field order is the JSON field order of the release commit.
type PackageRelease struct {
	Name       string   `json:"name"`
	Type       BumpType `json:"type"`
	Commits    []string `json:"commits"`
	Changesets []string `json:"changesets"`
	Version    string   `json:"version"`
}

// ChangesetSummary is the human description carried by one changeset.
type ChangesetSummary struct {
	Commit  string `json:"commit"`
	Summary string `json:"summary"`
}

// ReleasePlan is the resolved release. Deleted is rendered in the commit text
// but is not part of the JSON payload.
type ReleasePlan struct {
	Releases   []PackageRelease   `json:"releases"`
	Changesets []ChangesetSummary `json:"changesets"`
	Deleted    []string           `json:"-"`
}

// Release returns the release for the named package, if any.
func (p *ReleasePlan) Release(name string) (PackageRelease, bool) {
	for _, release := range p.Releases {
		if release.Name == name {
			return release, true
		}
	}
	return PackageRelease{}, false
}
