package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Base carries the store-assigned identity and timestamps of a document.
type Base struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id" yaml:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt" yaml:"-"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt" yaml:"-"`
}

// Touch stamps the document for a write at now. CreatedAt is only set once.
func (b *Base) Touch(now time.Time) {
	now = now.UTC().Truncate(time.Millisecond)
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}
