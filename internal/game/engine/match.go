package engine

import "golang.org/x/text/cases"

// sameName reports whether a player-typed name matches an authored name,
// ignoring case. Matching is exact; "key" does not match "Rusty Key".
func sameName(typed, authored string) bool {
	fold := cases.Fold()
	return fold.String(typed) == fold.String(authored)
}

// findItem returns the first item among ids whose display name matches name.
func (i *Interpreter) findItem(ids []string, name string) (string, bool) {
	for _, id := range ids {
		if sameName(name, i.item(id).Name) {
			return id, true
		}
	}
	return "", false
}
