// models/common.go
package models

import "github.com/google/uuid"

// ensureID fills a string primary key before insert. The production store
// was created with string IDs, so every model generates one on create.
func ensureID(id *string) {
	if *id == "" {
		*id = uuid.New().String()
	}
}
