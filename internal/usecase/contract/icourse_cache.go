package contract

import (
	"context"

	"github.com/naolberhanu/LearnSphere/internal/domain/contract"
)

// ICourseCache caches the public course catalog. Implementations are
// optional; the course usecase works without one.
type ICourseCache interface {
	GetCatalog(ctx context.Context) ([]contract.CourseWithEducator, bool, error)
	SetCatalog(ctx context.Context, catalog []contract.CourseWithEducator) error
	InvalidateCatalog(ctx context.Context) error
}
