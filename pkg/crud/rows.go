package crud

import "encoding/json"

// Rows is a repeated sub-entry of a form, such as a doctor's designations
// or an agent's villages. Rows have no identity beyond their index: removing
// row k shifts every later row down by one.
type Rows[E any] []E

// Add appends e and returns its index.
func (r *Rows[E]) Add(e E) int {
	*r = append(*r, e)
	return len(*r) - 1
}

// Remove drops row k. It reports false when k is out of range.
func (r *Rows[E]) Remove(k int) bool {
	if k < 0 || k >= len(*r) {
		return false
	}
	*r = append((*r)[:k], (*r)[k+1:]...)
	return true
}

// Set replaces row k. It reports false when k is out of range.
func (r *Rows[E]) Set(k int, e E) bool {
	if k < 0 || k >= len(*r) {
		return false
	}
	(*r)[k] = e
	return true
}

// Clear drops every row.
func (r *Rows[E]) Clear() {
	*r = nil
}

func (r Rows[E]) Len() int {
	return len(r)
}

// MarshalJSON writes no rows as [] rather than null.
func (r Rows[E]) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]E(r))
}
