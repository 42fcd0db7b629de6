package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/mooncyc/internal/repository"
)

// resolveTaskID resolves a full task ID or a unique ID prefix as shown in
// task listings.
func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	tasks, err := app.Tasks.List(ctx, true)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return matchIDPrefix(input, ids, "task")
}

// resolveEntryID resolves a full log entry ID or a unique ID prefix.
func resolveEntryID(ctx context.Context, app *App, input string) (string, error) {
	entries, err := app.Symptoms.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return matchIDPrefix(input, ids, "log entry")
}

func matchIDPrefix(input string, ids []string, what string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%s ID is required", what)
	}
	var matches []string
	for _, id := range ids {
		if id == input {
			return id, nil
		}
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no %s matches %q: %w", what, input, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID %q is ambiguous (%d matches); use more characters", what, input, len(matches))
	}
}
