package git

import (
	"context"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

// CloneMessage is reported after a successful clone.
const CloneMessage = "Cloned successfully"

// Clone clones url into dest and returns a status message.
func Clone(ctx context.Context, url, dest string) (string, error) {
	if _, err := gogit.PlainCloneContext(ctx, dest, false, &gogit.CloneOptions{URL: url}); err != nil {
		return "", fmt.Errorf("clone %s: %w", url, err)
	}
	return CloneMessage, nil
}
