package bootstrap

import (
	"ramillete/internal/handler/api"
	"ramillete/internal/infra/storage"
	"ramillete/internal/pkg/config"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewImageStorage,
		NewImageStore,
	),
)

func NewImageStorage(cfg config.Config) (*storage.ImageStorage, error) {
	return storage.NewImageStorage(cfg.MinIO)
}

// NewImageStore keeps the handler's nil check meaningful; a nil *ImageStorage
// must not surface as a non-nil interface.
func NewImageStore(s *storage.ImageStorage) api.ImageStore {
	if s == nil {
		return nil
	}
	return s
}
