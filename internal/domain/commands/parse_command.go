package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/rios0rios0/changesets/internal/domain/entities"
)

// Parse is the interface for the parse command.
type Parse interface {
	Execute(ctx context.Context, input io.Reader) (*entities.ReleasePlan, error)
}

// ParseCommand decodes the release plan embedded in a release commit message.
type ParseCommand struct{}

// NewParseCommand creates a new ParseCommand.
func NewParseCommand() *ParseCommand {
	return &ParseCommand{}
}

// Execute reads the whole commit message and parses it.
func (it *ParseCommand) Execute(ctx context.Context, input io.Reader) (*entities.ReleasePlan, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	message, err := io.ReadAll(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read commit message: %w", err)
	}

	return entities.ParseReleaseCommit(string(message))
}
