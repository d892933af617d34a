package models

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductRef is a reference to a Product from a cart or order line
// item. In storage it is always a raw ObjectID, but documents written
// by older clients may carry the product embedded as a full object, so
// decoding accepts both forms. ProductID is the single normalization
// point: every mutation matches and persists through it.
type ProductRef struct {
	ID       primitive.ObjectID
	Expanded *Product
}

// RefTo builds an id-only reference.
func RefTo(id primitive.ObjectID) ProductRef {
	return ProductRef{ID: id}
}

// RefExpanded builds a reference carrying the resolved product.
func RefExpanded(p *Product) ProductRef {
	return ProductRef{ID: p.ID, Expanded: p}
}

// ProductID returns the referenced product id regardless of which form
// the reference is in.
func (r ProductRef) ProductID() primitive.ObjectID {
	if r.Expanded != nil {
		return r.Expanded.ID
	}

	return r.ID
}

// Normalized strips any expanded product, leaving the raw-id form that
// is persisted.
func (r ProductRef) Normalized() ProductRef {
	return ProductRef{ID: r.ProductID()}
}

// MarshalBSONValue always writes the raw ObjectID, never the expanded
// product.
func (r ProductRef) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(r.ProductID())
}

func (r *ProductRef) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.ObjectID:
		var id primitive.ObjectID
		if err := bson.UnmarshalValue(t, data, &id); err != nil {
			return err
		}

		r.ID = id
		r.Expanded = nil
	case bsontype.EmbeddedDocument:
		var p Product
		if err := bson.UnmarshalValue(t, data, &p); err != nil {
			return err
		}

		r.ID = p.ID
		r.Expanded = &p
	case bsontype.Null:
		*r = ProductRef{}
	default:
		return fmt.Errorf("cannot decode %v into a product reference", t)
	}

	return nil
}

// MarshalJSON emits the expanded product when present so clients get
// populated line items, and the hex id otherwise.
func (r ProductRef) MarshalJSON() ([]byte, error) {
	if r.Expanded != nil {
		return json.Marshal(r.Expanded)
	}

	return json.Marshal(r.ID.Hex())
}

func (r *ProductRef) UnmarshalJSON(data []byte) error {
	var hex string
	if err := json.Unmarshal(data, &hex); err == nil {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return fmt.Errorf("invalid product id %q", hex)
		}

		r.ID = id
		r.Expanded = nil

		return nil
	}

	var p Product
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	r.ID = p.ID
	r.Expanded = &p

	return nil
}
