// Package deliverynote contains the DeliveryNote aggregate root and its
// owned LineItem entities.
//
// A delivery note aggregates the pieces coated for a customer, moves through
// the draft -> validated -> finalized lifecycle, and computes its total amount
// once every item carries a resolved price. The aggregate is the consistency
// boundary: items are created, priced, and removed only through the note's
// methods, and each operation either fully succeeds or returns a domain error
// before touching any state.
//
// Pricing itself lives in the pricing package; this package only stores the
// resolved unit prices it is handed.
package deliverynote
