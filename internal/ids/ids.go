package ids

import "github.com/segmentio/ksuid"

// New returns a k-sortable unique id, used for event ids and object keys.
func New() string {
	return ksuid.New().String()
}
