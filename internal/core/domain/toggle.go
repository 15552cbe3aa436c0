package domain

// Toggle flips actor's membership in members and adjusts counter in lockstep.
// An absent actor is appended and the counter incremented; a present actor is
// removed (first occurrence, the only one since ids are unique) and the
// counter decremented. Toggling twice with the same actor restores the input.
// The returned counter always equals the length of the returned list.
//
// Likes on comments and bookmarks on posts both run through this primitive.
func Toggle(members []string, counter int, actor string) (out []string, newCounter int, added bool) {
	for i, id := range members {
		if id == actor {
			out = make([]string, 0, len(members)-1)
			out = append(out, members[:i]...)
			out = append(out, members[i+1:]...)
			return out, counter - 1, false
		}
	}
	out = make([]string, 0, len(members)+1)
	out = append(out, members...)
	out = append(out, actor)
	return out, counter + 1, true
}
