/*
Package arrays provides copy-on-write editing of slices.

Every function returns a freshly allocated slice and never writes to, or
aliases, its arguments. A caller holding a slice can therefore keep using it
after an edit without observing any change.

A nil slice is treated as "absent" and is kept distinct from an empty slice:

	var absent []int  // nil
	empty := []int{}  // non-nil, length 0

Read-like operations accept an absent slice, while operations that need an
existing slice to edit (RemoveAt, Remove, RemoveAll, SubArray) fail with
ErrNullArgument. Index and length arguments are checked eagerly and fail with
ErrOutOfRange; nothing is clamped. On failure the returned slice is nil and
no result storage is allocated. Use errors.Is to tell the two kinds apart.
*/
package arrays
