// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock supplies the reference instant for date-dependent use cases.
type Clock interface {
	Now() time.Time
}
