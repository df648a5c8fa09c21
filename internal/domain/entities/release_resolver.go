package entities

// ResolveRelease merges changesets into a single release plan.
//
// Changesets are walked in order; within each one its releases come first and
// then its dependents. The first time a package is seen fixes its position in
// the plan. Later sightings escalate the bump to the most severe one and append
// the changeset's commit and id. Dependents pointing at packages that no longer
// exist are reported as deleted instead of released. Versions are computed
// once per package, after every changeset has been merged.
//
// A release of an unknown package, or a version that cannot be bumped, aborts
// the whole resolution with a *ConfigurationError.
func ResolveRelease(changesets []Changeset, packages Packages, bump BumpFunc) (*ReleasePlan, error) {
	if bump == nil {
		bump = IncrementVersion
	}

	releases := NewOrderedMap[string, *PackageRelease]()
	deleted := NewOrderedMap[string, struct{}]()
	summaries := make([]ChangesetSummary, 0, len(changesets))

	for _, changeset := range changesets {
		for _, release := range changeset.Releases {
			if _, ok := packages[release.Name]; !ok {
				return nil, &ConfigurationError{
					Package: release.Name,
					Reason:  "changeset " + changeset.ID + " releases a package that is not in the workspace",
				}
			}
			if err := mergeRelease(releases, changeset, release); err != nil {
				return nil, err
			}
		}

		for _, dependent := range changeset.Dependents {
			if _, ok := packages[dependent.Name]; !ok {
				deleted.Set(dependent.Name, struct{}{})
				continue
			}
			if err := mergeRelease(releases, changeset, dependent); err != nil {
				return nil, err
			}
		}

		summaries = append(summaries, ChangesetSummary{
			Commit:  changeset.Commit,
			Summary: changeset.Summary,
		})
	}

	plan := &ReleasePlan{
		Releases:   make([]PackageRelease, 0, releases.Len()),
		Changesets: summaries,
		Deleted:    deleted.Keys(),
	}

	for _, release := range releases.Values() {
		current := packages[release.Name].Config.Version
		version, err := bump(current, release.Type)
		if err != nil {
			return nil, &ConfigurationError{
				Package: release.Name,
				Reason:  "cannot compute the next version",
				Err:     err,
			}
		}
		release.Version = version
		plan.Releases = append(plan.Releases, *release)
	}

	return plan, nil
}

// mergeRelease folds one release request of a changeset into the accumulator.
func mergeRelease(
	releases *OrderedMap[string, *PackageRelease],
	changeset Changeset,
	request Release,
) error {
	if !request.Type.Valid() {
		return &ConfigurationError{
			Package: request.Name,
			Reason:  "changeset " + changeset.ID + " has an invalid bump type " + request.Type.String(),
		}
	}

	existing, ok := releases.Get(request.Name)
	if !ok {
		existing = &PackageRelease{
			Name:       request.Name,
			Type:       request.Type,
			Commits:    []string{},
			Changesets: []string{},
		}
		releases.Set(request.Name, existing)
	} else {
		existing.Type = existing.Type.Max(request.Type)
	}

	// a package listed twice by the same changeset contributes its provenance once
	if n := len(existing.Changesets); n > 0 && existing.Changesets[n-1] == changeset.ID {
		return nil
	}

	if changeset.Commit != "" {
		existing.Commits = append(existing.Commits, changeset.Commit)
	}
	existing.Changesets = append(existing.Changesets, changeset.ID)
	return nil
}
