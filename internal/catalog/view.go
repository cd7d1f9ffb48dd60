package catalog

// View returns the edition as the UI layer sees it: retired questions are
// stripped, point tables stay internal (the json tags on the catalog types
// already hide them).
func View(ed *Edition) *Edition {
	out := &Edition{Version: ed.Version, Sections: make([]Section, 0, len(ed.Sections))}
	for _, s := range ed.Sections {
		vs := s
		vs.Questions = make([]Question, 0, len(s.Questions))
		for _, q := range s.Questions {
			if q.Retired {
				continue
			}
			vs.Questions = append(vs.Questions, q)
		}
		out.Sections = append(out.Sections, vs)
	}
	return out
}
