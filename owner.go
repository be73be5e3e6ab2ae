package pim

import "github.com/google/uuid"

// ownerToken is the identity used to mark nodes that may be mutated in
// place during a batched (transient) build. Two tokens are equal only if
// they are the same token; there is no NONE sentinel value, a nil
// *ownerToken plays that role directly.
//
// The uuid carried on the token is cosmetic: it exists so LongString debug
// output can tell two transient sessions apart. It is never consulted for
// equality — ownedBy compares pointers.
type ownerToken struct {
	id uuid.UUID
}

func newOwnerToken() *ownerToken {
	return &ownerToken{id: uuid.New()}
}

func (o *ownerToken) String() string {
	if o == nil {
		return "owner(none)"
	}
	return "owner(" + o.id.String() + ")"
}

// ownedBy reports whether a node stamped with nodeOwner may be mutated in
// place by an operation tagged with callerOwner.
func ownedBy(nodeOwner, callerOwner *ownerToken) bool {
	return callerOwner != nil && nodeOwner == callerOwner
}
