package registry

import "github.com/jinzhu/copier"

// clone returns a deep copy of src. Reads hand out copies, never live
// references, so callers cannot mutate registry state by mutating a
// returned value (copy-on-read, including GetAll on the ledger).
func clone[T any](src T) T {
	var dst T
	if err := copier.CopyWithOption(&dst, &src, copier.Option{DeepCopy: true}); err != nil {
		// Only reachable with incompatible types, which clone never mixes.
		panic(err)
	}
	return dst
}
