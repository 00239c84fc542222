// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package foldmap implements a read-only ordered map with case-insensitive
string keys, for the named presets and lookup tables of the colour packages.

Keys are compared after Unicode case folding, so "Average", "average" and
"AVERAGE" all name the same entry, while the keys keep the spelling and the
order they were given at construction. A Map is built once with [Make] and
never mutated afterwards, so it is safe for concurrent use.
*/
package foldmap

import (
	"iter"

	"golang.org/x/text/cases"
)

// KeyValue represents a key-value pair.
type KeyValue[V any] struct {
	Key   string
	Value V
}

// Map is a generic ordered map from case-insensitive string keys to values.
// The folded key maps to an index into the ordered slice of entries.
type Map[V any] struct {
	order []KeyValue[V]
	index map[string]int
}

// Fold returns the case-folded form of the given key,
// which is what a [Map] compares. A new [cases.Caser] is made
// for each call since casers must not be shared between goroutines.
func Fold(key string) string {
	return cases.Fold().String(key)
}

// Make constructs a new map with the given key-value pairs, in order.
// Later entries replace earlier ones whose keys fold to the same value,
// keeping the position of the first.
func Make[V any](vals []KeyValue[V]) *Map[V] {
	fm := &Map[V]{
		order: make([]KeyValue[V], 0, len(vals)),
		index: make(map[string]int, len(vals)),
	}
	for _, kv := range vals {
		fk := Fold(kv.Key)
		if idx, has := fm.index[fk]; has {
			fm.order[idx] = kv
			continue
		}
		fm.index[fk] = len(fm.order)
		fm.order = append(fm.order, kv)
	}
	return fm
}

// Len returns the number of items in the map.
func (fm *Map[V]) Len() int {
	if fm == nil {
		return 0
	}
	return len(fm.order)
}

// ValueByKeyTry returns the value corresponding to the given key,
// with false returned for a missing key.
func (fm *Map[V]) ValueByKeyTry(key string) (V, bool) {
	if fm != nil {
		if idx, ok := fm.index[Fold(key)]; ok {
			return fm.order[idx].Value, true
		}
	}
	var zv V
	return zv, false
}

// ValueByKey returns the value corresponding to the given key,
// with a zero value returned for a missing key. See [Map.ValueByKeyTry]
// for one that returns a bool for missing keys.
func (fm *Map[V]) ValueByKey(key string) V {
	v, _ := fm.ValueByKeyTry(key)
	return v
}

// Has returns whether the given key is in the map.
func (fm *Map[V]) Has(key string) bool {
	_, ok := fm.ValueByKeyTry(key)
	return ok
}

// KeyByIndex returns the key, in its original spelling, at the given index.
func (fm *Map[V]) KeyByIndex(idx int) string {
	return fm.order[idx].Key
}

// ValueByIndex returns the value at the given index.
func (fm *Map[V]) ValueByIndex(idx int) V {
	return fm.order[idx].Value
}

// Keys returns a new slice with the keys of the map, in order.
func (fm *Map[V]) Keys() []string {
	keys := make([]string, fm.Len())
	for i := range keys {
		keys[i] = fm.order[i].Key
	}
	return keys
}

// All returns an iterator over the key-value pairs of the map, in order.
func (fm *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for i := 0; i < fm.Len(); i++ {
			if !yield(fm.order[i].Key, fm.order[i].Value) {
				return
			}
		}
	}
}
