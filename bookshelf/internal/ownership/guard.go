// Package ownership answers whether a requester owns a stored book.
//
// It drives display decisions (the isOwner flag, access to the edit view).
// Mutations are authorized by the owner-scoped queries of the repository.
package ownership

import (
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/model"
	"github.com/google/uuid"
)

// IsOwner compares requesterID with the owner of book, which must be the
// record as just read from the store.
func IsOwner(requesterID uuid.UUID, book model.Book) bool {
	if requesterID == uuid.Nil {
		return false
	}
	return book.OwnerID == requesterID
}
