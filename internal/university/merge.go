// File: internal/university/merge.go
package university

// MergeByID concatenates the static catalog with the locally-authored list
// and collapses duplicate ids, last occurrence wins. Local entries come after
// static ones, so a local record masks a static record with the same id. Each
// surviving entry sits at its last occurrence's position; callers must not
// assume stable ordering across reloads when local entries are edited.
func MergeByID(static, local []University) []University {
	all := make([]University, 0, len(static)+len(local))
	all = append(all, static...)
	all = append(all, local...)

	lastIndex := make(map[string]int, len(all))
	for i, u := range all {
		lastIndex[u.ID] = i
	}

	merged := make([]University, 0, len(lastIndex))
	for i, u := range all {
		if lastIndex[u.ID] == i {
			merged = append(merged, u)
		}
	}
	return merged
}
