/*
File    : go-mix/value/hashtable.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import (
	"math"

	"github.com/akashmaji946/go-mix/langerr"
)

const (
	initialCapacity = 16
	maxCapacity     = 65536
	maxCalc         = 65381 // PRIME, used as the modulus throughout hashing
	loadFactorNum   = 3
	loadFactorDen   = 4
	hashBudget      = 300
)

// Entry is one key-value pair in a HashTable, also the shape Flatten
// returns.
type Entry struct {
	Key   Value
	Value Value
}

// HashTable is a chained-bucket hash table backing Dictionary values,
// grounded on original_source/src/hash_table.rs: power-of-two capacity
// starting at 16, doubling on rehash up to 65536, 3/4 load factor, and
// bounded-time hashing via a decreasing budget so that even deeply
// nested Array keys hash in O(budget) work. One deliberate deviation
// from the original: Dictionary keys are rejected (CannotHashDictionary)
// rather than hashed via a table-level hash_self — spec.md is
// authoritative here (see DESIGN.md).
type HashTable struct {
	buckets  [][]Entry
	capacity int
	entries  int
}

// NewHashTable creates an empty table at the initial capacity.
func NewHashTable() *HashTable {
	return &HashTable{buckets: make([][]Entry, initialCapacity), capacity: initialCapacity}
}

// hash computes a bounded-time hash for v, consuming from a budget that
// starts at 300 for every top-level call. Function/BuiltinFunction keys
// fail CannotHashFunction; Dictionary keys fail CannotHashDictionary.
func hash(v Value, line int) (int, *langerr.Diagnostic) {
	budget := hashBudget
	return hashBudgeted(v, &budget, line)
}

func hashBudgeted(v Value, budget *int, line int) (int, *langerr.Diagnostic) {
	switch v.Kind {
	case NullKind:
		*budget--
		return 3, nil
	case BoolKind:
		*budget--
		if v.Bool {
			return 1, nil
		}
		return 2, nil
	case NumberKind:
		*budget--
		bits := math.Float64bits(v.Number)
		x := int(bits>>12) % maxCalc
		if x < 0 {
			x += maxCalc
		}
		return (x * (x + 3)) % maxCalc, nil
	case StringKind:
		h := 0
		for _, c := range v.Str {
			if *budget <= 0 {
				break
			}
			*budget--
			h = ((h << 5) + h + int(c)) % maxCalc
		}
		return h, nil
	case ArrayKind:
		h := 0
		for i, elem := range v.Array {
			if *budget <= 0 {
				break
			}
			*budget--
			eh, err := hashBudgeted(elem, budget, line)
			if err != nil {
				return 0, err
			}
			combined := (eh * (i + 1)) % maxCalc
			h = ((h << 5) + h + combined) % maxCalc
		}
		return h, nil
	case FunctionKind, BuiltinKind:
		return 0, langerr.NewCannotHashFunction(line)
	case DictionaryKind:
		return 0, langerr.NewCannotHashDictionary(line)
	default:
		return 0, nil
	}
}

func (h *HashTable) bucketFor(key Value, line int) (int, *langerr.Diagnostic) {
	hv, err := hash(key, line)
	if err != nil {
		return 0, err
	}
	idx := hv % h.capacity
	if idx < 0 {
		idx += h.capacity
	}
	return idx, nil
}

// Get returns the value bound to key, or KeyError if absent.
func (h *HashTable) Get(key Value, line int) (Value, *langerr.Diagnostic) {
	idx, err := h.bucketFor(key, line)
	if err != nil {
		return Value{}, err
	}
	for _, e := range h.buckets[idx] {
		if Equal(e.Key, key) {
			return e.Value, nil
		}
	}
	return Value{}, langerr.NewKeyError(key.Display(), line)
}

// Insert creates or replaces the binding for key.
func (h *HashTable) Insert(key Value, v Value, line int) *langerr.Diagnostic {
	idx, err := h.bucketFor(key, line)
	if err != nil {
		return err
	}
	for i, e := range h.buckets[idx] {
		if Equal(e.Key, key) {
			h.buckets[idx][i].Value = v
			return nil
		}
	}
	h.buckets[idx] = append(h.buckets[idx], Entry{Key: key, Value: v})
	h.entries++
	h.checkLoad(line)
	return nil
}

// Remove deletes the binding for key, or fails with KeyError if absent.
func (h *HashTable) Remove(key Value, line int) *langerr.Diagnostic {
	idx, err := h.bucketFor(key, line)
	if err != nil {
		return err
	}
	for i, e := range h.buckets[idx] {
		if Equal(e.Key, key) {
			h.buckets[idx] = append(h.buckets[idx][:i], h.buckets[idx][i+1:]...)
			h.entries--
			return nil
		}
	}
	return langerr.NewKeyError(key.Display(), line)
}

// Size returns the number of distinct keys currently bound.
func (h *HashTable) Size() int { return h.entries }

// Flatten returns every entry, in bucket-then-insertion order. Order is
// not semantically meaningful (dictionaries compare by multiset), but
// must be stable enough for Display.
func (h *HashTable) Flatten() []Entry {
	out := make([]Entry, 0, h.entries)
	for _, bucket := range h.buckets {
		out = append(out, bucket...)
	}
	return out
}

// checkLoad doubles capacity and rehashes every entry when
// entries*4 > capacity*3 and capacity has not reached the cap.
func (h *HashTable) checkLoad(line int) {
	if h.entries*loadFactorDen <= h.capacity*loadFactorNum || h.capacity >= maxCapacity {
		return
	}
	old := h.Flatten()
	h.capacity *= 2
	h.buckets = make([][]Entry, h.capacity)
	h.entries = 0
	for _, e := range old {
		idx, err := h.bucketFor(e.Key, line)
		if err != nil {
			continue // unreachable: keys were already validated on first insert
		}
		h.buckets[idx] = append(h.buckets[idx], e)
		h.entries++
	}
}

// Equal reports whether h and other contain the same multiset of
// key-value pairs: flatten one side and remove matches from a clone of
// the other.
func (h *HashTable) Equal(other *HashTable) bool {
	if other == nil {
		return false
	}
	if h.entries != other.entries {
		return false
	}
	remaining := other.Flatten()
	for _, e := range h.Flatten() {
		found := -1
		for i, r := range remaining {
			if Equal(e.Key, r.Key) && Equal(e.Value, r.Value) {
				found = i
				break
			}
		}
		if found == -1 {
			return false
		}
		remaining = append(remaining[:found], remaining[found+1:]...)
	}
	return true
}
