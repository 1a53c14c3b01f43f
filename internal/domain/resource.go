package domain

import "github.com/google/uuid"

// Resource is implemented by every record managed by a store. IDs and
// timestamps are assigned server-side; a creation payload carries zero values
// for them.
type Resource interface {
	ResourceID() uuid.UUID
	Validate() error
}
