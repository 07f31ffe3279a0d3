package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/narwhalmedia/catalog/internal/domain/validation"
)

// ValidateReferences checks in one gateway call that every id exists and
// appends a single error naming the missing ones, in request order.
// Gateway failures are returned and leave the handler untouched.
func ValidateReferences[ID ~string](ctx context.Context, handler validation.Handler, noun string, ids []ID, exists func(context.Context, []ID) ([]ID, error)) error {
	requested := distinct(ids)
	if len(requested) == 0 {
		return nil
	}

	found, err := exists(ctx, requested)
	if err != nil {
		return fmt.Errorf("checking %s: %w", noun, err)
	}

	present := make(map[ID]struct{}, len(found))
	for _, id := range found {
		present[id] = struct{}{}
	}

	var missing []string
	for _, id := range requested {
		if _, ok := present[id]; !ok {
			missing = append(missing, string(id))
		}
	}

	if len(missing) > 0 {
		handler.Append(validation.NewError(
			fmt.Sprintf("Some %s could not be found: %s", noun, strings.Join(missing, ", ")),
		))
	}
	return nil
}

// ParseIDs parses every raw identifier, failing on the first malformed one.
func ParseIDs[ID ~string](raw []string, parse func(string) (ID, error)) ([]ID, error) {
	ids := make([]ID, 0, len(raw))
	for _, r := range raw {
		id, err := parse(r)
		if err != nil {
			return nil, fmt.Errorf("parsing identifier %q: %w", r, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func distinct[ID ~string](ids []ID) []ID {
	out := make([]ID, 0, len(ids))
	seen := make(map[ID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
