package vrml

// nodeStack tracks bracket nesting. Each depth remembers the token that
// preceded the bracket which opened it, taken as the node or field name.
// There is no grammar behind it, only bracket balance.
type nodeStack struct {
	opened int
	closed int
	names  []string // indexed by depth, names[0] is the document root
}

func newNodeStack() nodeStack {
	return nodeStack{names: []string{""}}
}

// depth returns the current nesting depth.
func (s *nodeStack) depth() int {
	return s.opened - s.closed
}

// open enters a new depth named name.
func (s *nodeStack) open(name string) {
	s.opened++
	d := s.depth()
	if d >= len(s.names) {
		s.names = append(s.names, name)
	} else {
		s.names[d] = name
	}
}

// close leaves the current depth. It fails when more brackets were closed
// than opened.
func (s *nodeStack) close() error {
	s.closed++
	if s.depth() < 0 {
		return ErrUnbalancedBrackets
	}
	return nil
}

// current returns the name active at the current depth.
func (s *nodeStack) current() string {
	return s.names[s.depth()]
}

// parent returns the name one depth shallower, or "" at the root.
func (s *nodeStack) parent() string {
	d := s.depth()
	if d == 0 {
		return ""
	}
	return s.names[d-1]
}
