package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	releaseHeaderFormat = "RELEASING: Releasing %d package(s)"
	releasesHeading     = "Releases:"
	dependentsHeading   = "Dependents:"
	deletedHeading      = "Deleted:"
	planDelimiter       = "---"
	sectionIndent       = "  "
	emptySection        = sectionIndent + "[]"
	skipCIMarker        = "[skip ci]"
)

// CommitOptions tunes the rendered release commit.
type CommitOptions struct {
	SkipCI bool
}

// RenderReleaseCommit formats a release plan as a commit message:
//
//	RELEASING: Releasing 2 package(s)
//
//	Releases:
//	  package-a@1.1.0
//	  package-b@1.1.0
//
//	Dependents:
//	  []
//
//	Deleted:
//	  []
//
//	---
//	{"releases":[...],"changesets":[...]}
//	---
//
// The JSON line between the two "---" lines is what publishing tooling parses
// back, so it is always compact and on a single line.
func RenderReleaseCommit(plan *ReleasePlan, opts CommitOptions) (string, error) {
	if err := validatePlan(plan); err != nil {
		return "", err
	}

	payload, err := encodePlan(plan)
	if err != nil {
		return "", err
	}

	releaseLines := make([]string, 0, len(plan.Releases))
	for _, release := range plan.Releases {
		releaseLines = append(releaseLines, sectionIndent+release.Name+"@"+release.Version)
	}

	deletedLines := make([]string, 0, len(plan.Deleted))
	for _, name := range plan.Deleted {
		deletedLines = append(deletedLines, sectionIndent+name)
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf(releaseHeaderFormat, len(plan.Releases)))
	builder.WriteString("\n\n")
	writeSection(&builder, releasesHeading, releaseLines)
	writeSection(&builder, dependentsHeading, nil)
	writeSection(&builder, deletedHeading, deletedLines)
	builder.WriteString(planDelimiter + "\n")
	builder.Write(payload)
	builder.WriteString("\n" + planDelimiter + "\n")

	if opts.SkipCI {
		builder.WriteString("\n\n" + skipCIMarker)
	}

	return builder.String(), nil
}

// writeSection writes a heading, its indented lines (or "[]") and a blank line.
func writeSection(builder *strings.Builder, heading string, lines []string) {
	builder.WriteString(heading + "\n")
	if len(lines) == 0 {
		builder.WriteString(emptySection + "\n")
	} else {
		builder.WriteString(strings.Join(lines, "\n") + "\n")
	}
	builder.WriteString("\n")
}

// encodePlan produces the compact JSON payload without HTML escaping, so
// summaries containing "<" or "&" stay readable in the git log.
func encodePlan(plan *ReleasePlan) ([]byte, error) {
	normalized := ReleasePlan{
		Releases:   make([]PackageRelease, 0, len(plan.Releases)),
		Changesets: make([]ChangesetSummary, 0, len(plan.Changesets)),
	}
	for _, release := range plan.Releases {
		if release.Commits == nil {
			release.Commits = []string{}
		}
		if release.Changesets == nil {
			release.Changesets = []string{}
		}
		normalized.Releases = append(normalized.Releases, release)
	}
	normalized.Changesets = append(normalized.Changesets, plan.Changesets...)

	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(normalized); err != nil {
		return nil, &MalformedPlanError{Reason: "cannot encode plan", Err: err}
	}
	return bytes.TrimRight(buffer.Bytes(), "\n"), nil
}

func validatePlan(plan *ReleasePlan) error {
	if plan == nil {
		return &MalformedPlanError{Reason: "plan is nil"}
	}
	for i, release := range plan.Releases {
		switch {
		case release.Name == "":
			return &MalformedPlanError{Reason: fmt.Sprintf("releases[%d] has no name", i)}
		case release.Version == "":
			return &MalformedPlanError{Reason: fmt.Sprintf("release %q has no version", release.Name)}
		case !release.Type.Valid():
			return &MalformedPlanError{Reason: fmt.Sprintf("release %q has an invalid bump type", release.Name)}
		}
	}
	for i, name := range plan.Deleted {
		if name == "" {
			return &MalformedPlanError{Reason: fmt.Sprintf("deleted[%d] has no name", i)}
		}
	}
	return nil
}
