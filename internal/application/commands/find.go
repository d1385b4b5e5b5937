package commands

import (
	"context"

	"execlauncher/internal/application"
	"execlauncher/internal/domain"
	"execlauncher/internal/ports"
)

// FindCommand runs one query against the configured roots
type FindCommand struct {
	scanner  ports.ExecutableScanner
	settings domain.Settings
	Query    string
	Limit    int
}

// NewFindCommand creates a new FindCommand returning at most MaxResults items
func NewFindCommand(scanner ports.ExecutableScanner, settings domain.Settings, query string) *FindCommand {
	return &FindCommand{
		scanner:  scanner,
		settings: settings,
		Query:    query,
		Limit:    domain.MaxResults,
	}
}

// Execute scans the roots, ranks the matches and returns presentation items.
// Returns ErrNoExecutables when nothing matched.
func (c *FindCommand) Execute(ctx context.Context) ([]domain.ResultItem, error) {
	query := domain.NormalizeQuery(c.Query)

	candidates := c.scanner.Scan(ctx, c.settings.Roots, query, c.settings.FilterLibraries)
	ranked := domain.Rank(candidates, query, c.Limit)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, application.ErrNoExecutables
	}

	items := make([]domain.ResultItem, len(ranked))
	for i, candidate := range ranked {
		items[i] = domain.NewResultItem(candidate)
	}
	return items, nil
}
