package learn

import (
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/bitset"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/oracle"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/treedecomp"
)

// copsRobbers keys the preSolve memo: the cop positions and the
// remaining robber set of a game configuration.
type copsRobbers struct {
	cops    bitset.Bitset
	robbers bitset.Bitset
}

// copsComponent keys the component memo: cop positions and the least
// robber of the component.
type copsComponent struct {
	cops bitset.Bitset
	r0   int
}

// copsSolver runs the cops-and-robbers game for one component and one
// target width. Memo tables live for a single solver instance; a fresh
// solver is created for every k.
type copsSolver struct {
	orc   *oracle.Oracle
	verts bitset.Bitset
	tw    int

	preSolveMem map[copsRobbers]bool
	extractMem  map[copsComponent]bitset.Bitset

	td treedecomp.TreeDecomposition
}

func newCopsSolver(orc *oracle.Oracle, verts bitset.Bitset, tw int) *copsSolver {
	return &copsSolver{
		orc:         orc,
		verts:       verts,
		tw:          tw,
		preSolveMem: make(map[copsRobbers]bool),
		extractMem:  make(map[copsComponent]bitset.Bitset),
	}
}

// run decides whether tw+1 cops suffice on this component and, if so,
// fills s.td with a witnessing decomposition rooted at index 0.
func (s *copsSolver) run() (bool, error) {
	if s.tw < 1 {
		panic("learn: target width must be at least 1")
	}
	if s.verts.Count() <= 1 {
		s.td = treedecomp.TreeDecomposition{{
			Verts:  s.verts,
			Child1: treedecomp.NoChild,
			Child2: treedecomp.NoChild,
		}}
		return true, nil
	}

	initialCop := s.verts.Min()
	ok, err := s.preSolve(bitset.Singleton(initialCop), s.verts.Without(initialCop))
	if err != nil || !ok {
		return false, err
	}

	root, err := s.preSolveConstruct(bitset.Singleton(initialCop), s.verts.Without(initialCop))
	if err != nil {
		return false, err
	}
	if root != 0 {
		panic("learn: decomposition root misplaced")
	}
	return true, nil
}

// shrinkCops drops every cop that is independent of all robbers given
// the remaining cops; such a cop guards nothing in this component.
func (s *copsSolver) shrinkCops(cops, robbers bitset.Bitset) (bitset.Bitset, error) {
	newCops := cops
	var err error
	cops.ForEachWhile(func(c int) bool {
		redundant := robbers.ForEachWhile(func(r int) bool {
			var ind bool
			ind, err = s.orc.IndTest(c, newCops.Without(c), r)
			return err == nil && ind
		})
		if err != nil {
			return false
		}
		if redundant {
			newCops.Del(c)
		}
		return true
	})
	if err != nil {
		return bitset.Empty(), err
	}
	return newCops, nil
}

// preSolveImpl reduces the robber component containing the least
// robber, then recurses on the rest of the robber set.
func (s *copsSolver) preSolveImpl(cops, robbers bitset.Bitset) (bool, error) {
	if robbers.IsEmpty() {
		return true, nil
	}

	newRobbers, err := s.extractComponent(cops, robbers.Min())
	if err != nil {
		return false, err
	}

	// A statistical oracle is not monotone: more cops may grow the
	// apparent component, so bound it by the current robber set.
	if !s.orc.Graphical() {
		newRobbers = newRobbers.Intersect(robbers)
	}

	newCops, err := s.shrinkCops(cops, newRobbers)
	if err != nil {
		return false, err
	}

	if newCops.Count() == s.tw+1 {
		// No room to place a capturing cop on this branch.
		return false, nil
	}

	ok, err := s.solve(newCops, newRobbers)
	if err != nil || !ok {
		return false, err
	}

	return s.preSolve(cops, robbers.Minus(newRobbers))
}

// preSolve memoizes preSolveImpl on (cops, robbers). The entry is
// inserted only after the recursion returns, so a time-limit unwind
// leaves no tentative value behind.
func (s *copsSolver) preSolve(cops, robbers bitset.Bitset) (bool, error) {
	key := copsRobbers{cops: cops, robbers: robbers}
	if ret, ok := s.preSolveMem[key]; ok {
		return ret, nil
	}
	ret, err := s.preSolveImpl(cops, robbers)
	if err != nil {
		return false, err
	}
	s.preSolveMem[key] = ret
	return ret, nil
}

// solve captures some robber: it succeeds iff placing a new cop on one
// of the robbers wins the remaining game.
func (s *copsSolver) solve(cops, robbers bitset.Bitset) (bool, error) {
	found := false
	var err error
	robbers.ForEachWhile(func(a int) bool {
		var ok bool
		ok, err = s.preSolve(cops.With(a), robbers.Without(a))
		if err != nil {
			return false
		}
		if ok {
			found = true
			return false
		}
		return true
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// extractComponentImpl grows the robber component of r0: BFS in the
// dependency graph the oracle defines, where r neighbors r1 iff they
// are dependent given the cops.
func (s *copsSolver) extractComponentImpl(cops bitset.Bitset, r0 int) (bitset.Bitset, error) {
	robbers := bitset.Singleton(r0)
	robberQueue := bitset.Singleton(r0)
	for !robberQueue.IsEmpty() {
		r1 := robberQueue.Min()
		robberQueue.Del(r1)
		var err error
		s.verts.Minus(cops.Union(robbers)).ForEachWhile(func(r int) bool {
			var ind bool
			ind, err = s.orc.IndTest(r, cops, r1)
			if err != nil {
				return false
			}
			if !ind {
				robbers.Add(r)
				robberQueue.Add(r)
			}
			return true
		})
		if err != nil {
			return bitset.Empty(), err
		}
	}
	return robbers, nil
}

// extractComponent memoizes extractComponentImpl on (cops, r0).
func (s *copsSolver) extractComponent(cops bitset.Bitset, r0 int) (bitset.Bitset, error) {
	key := copsComponent{cops: cops, r0: r0}
	if ret, ok := s.extractMem[key]; ok {
		return ret, nil
	}
	ret, err := s.extractComponentImpl(cops, r0)
	if err != nil {
		return bitset.Empty(), err
	}
	s.extractMem[key] = ret
	return ret, nil
}

// preSolveConstruct replays a successful preSolve from the memo tables,
// appending the bag tree to s.td. Children always land at indices
// greater than their parent's.
func (s *copsSolver) preSolveConstruct(cops, robbers bitset.Bitset) (int, error) {
	nodeIdx := len(s.td)
	s.td = append(s.td, treedecomp.Node{
		Verts:  cops,
		Child1: treedecomp.NoChild,
		Child2: treedecomp.NoChild,
	})

	if robbers.IsEmpty() {
		return nodeIdx, nil
	}

	newRobbers, ok := s.extractMem[copsComponent{cops: cops, r0: robbers.Min()}]
	if !ok {
		panic("learn: component missing from memo during construction")
	}

	if !s.orc.Graphical() {
		newRobbers = newRobbers.Intersect(robbers)
	}

	// All shrink queries were already asked during the search, so this
	// replay is answered from the oracle cache.
	newCops, err := s.shrinkCops(cops, newRobbers)
	if err != nil {
		return 0, err
	}
	if newCops.Count() > s.tw {
		panic("learn: cop set exceeds width during construction")
	}

	child, err := s.solveConstruct(newCops, newRobbers)
	if err != nil {
		return 0, err
	}
	s.td[nodeIdx].Child1 = child

	if newRobbers != robbers {
		if !newRobbers.IsSubsetOf(robbers) {
			panic("learn: component escapes robber set")
		}
		child, err = s.preSolveConstruct(cops, robbers.Minus(newRobbers))
		if err != nil {
			return 0, err
		}
		s.td[nodeIdx].Child2 = child
	}
	return nodeIdx, nil
}

// solveConstruct finds, via the memo, the robber whose capture won the
// game and emits the corresponding subtree.
func (s *copsSolver) solveConstruct(cops, robbers bitset.Bitset) (int, error) {
	ret := -1
	var err error
	complete := robbers.ForEachWhile(func(a int) bool {
		won, ok := s.preSolveMem[copsRobbers{cops: cops.With(a), robbers: robbers.Without(a)}]
		if !ok {
			panic("learn: configuration missing from memo during construction")
		}
		if won {
			ret, err = s.preSolveConstruct(cops.With(a), robbers.Without(a))
			return false
		}
		return true
	})
	if err != nil {
		return 0, err
	}
	if complete || ret == -1 {
		panic("learn: no winning capture recorded")
	}
	return ret, nil
}
