// Package document holds the BSON shapes for both stores. Write documents
// mirror the normalized command schema; view documents mirror the
// denormalized query schema. Ids are the UUID strings assigned by the domain,
// stored as _id.
package document

type Document interface {
	GetID() string
}
