package domain

import "context"

// Source fetches the in-skill product catalog for a locale. Implementations
// talk to the host platform's monetization service; results are never cached
// across turns.
type Source interface {
	FetchCatalog(ctx context.Context, locale string) (List, error)
}
