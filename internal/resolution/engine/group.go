package engine

import "meeting-conflict-resolver/internal/model"

// unionFind is a plain disjoint-set over stable integer indices.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent}
}

func (u *unionFind) find(i int) int {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}
	return i
}

func (u *unionFind) union(i, j int) {
	ri, rj := u.find(i), u.find(j)
	if ri != rj {
		// Anchor on the smaller root so set ordering follows input order.
		if ri < rj {
			u.parent[rj] = ri
		} else {
			u.parent[ri] = rj
		}
	}
}

// GroupPairs merges detected conflict pairs into conflict sets. Two
// meetings land in the same set when they overlap in time and share at
// least one attendee, transitively. Every meeting appears in exactly
// one output set; singleton survivors are returned as singleton sets
// and simply produce no resolution work downstream.
func GroupPairs(pairs []ConflictPair) []ConflictSet {
	var meetings []model.ConflictingMeeting
	index := make(map[string]int)

	add := func(m model.ConflictingMeeting) int {
		if i, ok := index[m.ID]; ok {
			return i
		}
		index[m.ID] = len(meetings)
		meetings = append(meetings, m)
		return len(meetings) - 1
	}

	type link struct{ a, b int }
	var links []link
	for _, p := range pairs {
		ia, ib := add(p.A), add(p.B)
		if SharedAttendee(p.A, p.B) {
			links = append(links, link{ia, ib})
		}
	}

	uf := newUnionFind(len(meetings))
	for _, l := range links {
		uf.union(l.a, l.b)
	}
	return collectSets(meetings, uf)
}

// GroupMeetings groups a pre-identified flat list of conflicting
// meetings using the same overlap-plus-shared-attendee rule.
func GroupMeetings(meetings []model.ConflictingMeeting) []ConflictSet {
	uf := newUnionFind(len(meetings))
	for i := 0; i < len(meetings); i++ {
		for j := i + 1; j < len(meetings); j++ {
			a, b := meetings[i], meetings[j]
			if Overlaps(a.StartTime, a.EndTime, b.StartTime, b.EndTime) && SharedAttendee(a, b) {
				uf.union(i, j)
			}
		}
	}
	return collectSets(meetings, uf)
}

// SharedAttendee reports whether two meetings have at least one
// attendee email in common.
func SharedAttendee(a, b model.ConflictingMeeting) bool {
	emails := make(map[string]bool, len(a.Attendees))
	for _, at := range a.Attendees {
		emails[at.Email] = true
	}
	for _, at := range b.Attendees {
		if emails[at.Email] {
			return true
		}
	}
	return false
}

func collectSets(meetings []model.ConflictingMeeting, uf *unionFind) []ConflictSet {
	if len(meetings) == 0 {
		return nil
	}

	byRoot := make(map[int]*ConflictSet)
	var order []int
	for i, m := range meetings {
		root := uf.find(i)
		set, ok := byRoot[root]
		if !ok {
			set = &ConflictSet{}
			byRoot[root] = set
			order = append(order, root)
		}
		set.Meetings = append(set.Meetings, m)
	}

	sets := make([]ConflictSet, 0, len(order))
	for _, root := range order {
		sets = append(sets, *byRoot[root])
	}
	return sets
}
