// Package mapper holds slice-mapping helpers shared by the persistence
// mappers that convert between GORM models and domain aggregates.
package mapper

import "fmt"

// MapSlicePtrWithID maps a slice of pointers, skipping nil inputs and
// nil outputs. Mapping stops at the first failure, and the failing
// item's ID is wrapped into the error so repository callers can tell
// which row was corrupt.
func MapSlicePtrWithID[T any, R any, ID any](
	items []*T,
	mapFunc func(*T) (*R, error),
	getID func(*T) ID,
) ([]*R, error) {
	if items == nil {
		return nil, nil
	}

	result := make([]*R, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		mapped, err := mapFunc(item)
		if err != nil {
			return nil, fmt.Errorf("failed to map item ID %v: %w", getID(item), err)
		}
		if mapped != nil {
			result = append(result, mapped)
		}
	}
	return result, nil
}
