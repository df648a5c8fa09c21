package entities

import (
	"encoding/json"
	"strings"
)

// ParseReleaseCommit reads back a commit message produced by RenderReleaseCommit.
// The releases and changesets come from the JSON between the two "---" lines,
// the deleted packages from the "Deleted:" section.
func ParseReleaseCommit(message string) (*ReleasePlan, error) {
	lines := strings.Split(strings.ReplaceAll(message, "\r\n", "\n"), "\n")

	start, end := -1, -1
	for i, line := range lines {
		if line != planDelimiter {
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		end = i
		break
	}
	if start < 0 || end < 0 {
		return nil, &MalformedPlanError{Reason: "commit message has no \"---\" delimited payload"}
	}

	payload := strings.TrimSpace(strings.Join(lines[start+1:end], "\n"))
	if payload == "" {
		return nil, &MalformedPlanError{Reason: "commit message payload is empty"}
	}

	var plan ReleasePlan
	decoder := json.NewDecoder(strings.NewReader(payload))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&plan); err != nil {
		return nil, &MalformedPlanError{Reason: "cannot decode payload", Err: err}
	}
	if plan.Releases == nil {
		plan.Releases = []PackageRelease{}
	}
	if plan.Changesets == nil {
		plan.Changesets = []ChangesetSummary{}
	}

	plan.Deleted = parseDeletedSection(lines[:start])

	if err := validatePlan(&plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// parseDeletedSection collects the indented lines following "Deleted:".
func parseDeletedSection(lines []string) []string {
	deleted := []string{}
	inSection := false
	for _, line := range lines {
		if line == deletedHeading {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		if !strings.HasPrefix(line, sectionIndent) {
			break
		}
		name := strings.TrimSpace(line)
		if name == "" || name == "[]" {
			continue
		}
		deleted = append(deleted, name)
	}
	return deleted
}
