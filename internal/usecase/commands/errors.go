package commands

import (
	"storefront-partners/internal/infra"
)

// notFoundAs replaces a repository NOT_FOUND with the domain sentinel; other errors pass through.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
