package horario

// FindConflict checks a candidate selection against the current ones
// and returns the first colliding selection, or nil when the candidate
// fits. Selections whose course code equals exclude are skipped, so a
// section swap within the same course never conflicts with the section
// it replaces.
func FindConflict(selections []Selection, candidate Selection, exclude string) *Conflict {
	for _, sel := range selections {
		if exclude != "" && sel.CourseCode == exclude {
			continue
		}
		for _, have := range sel.Blocks {
			for _, want := range candidate.Blocks {
				if have.Overlaps(want) {
					return &Conflict{
						CourseCode:     sel.CourseCode,
						Section:        sel.Section,
						Title:          sel.Title,
						OverlapMinutes: OverlapMinutes(have.Start, have.End, want.Start, want.End),
					}
				}
			}
		}
	}
	return nil
}
