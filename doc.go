// Package typedid provides UUID identifiers tagged at compile time by the
// entity they name and the UUID version that produced them.
//
// Identifiers for conceptually different entities usually share one physical
// representation, so a user ID passed where an order ID is expected compiles
// fine and fails at runtime, if at all.  typedid closes that hole with a
// single generic value type:
//
//	type User struct{}
//	type Order struct{}
//
//	type UserID = typedid.ID[User, typedid.V4]
//	type OrderID = typedid.ID[Order, typedid.V4]
//
//	uid := typedid.New[User]()
//	oid := typedid.New[Order]()
//	// uid == oid does not compile: UserID and OrderID are distinct types.
//
// The marker types carry no runtime data; an ID is exactly one uuid.UUID and
// behaves like one for equality, ordering, formatting, and serialization.
// All UUID mechanics are delegated to github.com/google/uuid.
//
// Crossing tags is always explicit.  Retag reinterprets an identifier under a
// different entity tag, and FromUUIDUnchecked wraps an untyped value without
// validation; both are spelled out at the call site, never implicit.
//
//	oid := typedid.Retag[Order](uid)
//
// For more details see the individual declarations and the examples directory.
package typedid
