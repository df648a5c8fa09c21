//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"io"

	"github.com/rios0rios0/changesets/internal/domain/commands"
	"github.com/rios0rios0/changesets/internal/domain/entities"
)

// StubStatusCommand is a stub implementation of commands.Status.
type StubStatusCommand struct {
	ExecuteCallCount int
	Result           *commands.StatusResult
	ExecuteErr       error
	LastOpts         commands.StatusOptions
}

var _ commands.Status = (*StubStatusCommand)(nil)

func (s *StubStatusCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.StatusOptions,
) (*commands.StatusResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}

// StubVersionCommand is a stub implementation of commands.Version.
type StubVersionCommand struct {
	ExecuteCallCount int
	Result           *commands.VersionResult
	ExecuteErr       error
	LastOpts         commands.VersionOptions
}

var _ commands.Version = (*StubVersionCommand)(nil)

func (s *StubVersionCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.VersionOptions,
) (*commands.VersionResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}

// StubAddCommand is a stub implementation of commands.Add.
type StubAddCommand struct {
	ExecuteCallCount int
	Result           *entities.Changeset
	ExecuteErr       error
	LastOpts         commands.AddOptions
}

var _ commands.Add = (*StubAddCommand)(nil)

func (s *StubAddCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.AddOptions,
) (*entities.Changeset, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}

// StubParseCommand is a stub implementation of commands.Parse.
type StubParseCommand struct {
	ExecuteCallCount int
	Result           *entities.ReleasePlan
	ExecuteErr       error
	LastInput        string
}

var _ commands.Parse = (*StubParseCommand)(nil)

func (s *StubParseCommand) Execute(_ context.Context, input io.Reader) (*entities.ReleasePlan, error) {
	s.ExecuteCallCount++
	data, err := io.ReadAll(input)
	if err != nil {
		return nil, err
	}
	s.LastInput = string(data)
	return s.Result, s.ExecuteErr
}
