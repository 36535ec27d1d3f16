package store

// Store owns durable load/save of the dataset. The engine assumes Load returns
// a fully-materialized, internally-consistent snapshot; implementations must
// never hand out partially-loaded data.
type Store interface {
	Load() (*Dataset, error)
	Save(*Dataset) error
}
