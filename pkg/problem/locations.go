package problem

// UniqueLocations returns every distinct location referenced by the problem in
// first-seen order: job places, then shift starts, ends, break locations and
// reload locations of each vehicle type.
func UniqueLocations(p *Problem) []Location {
	if p == nil {
		return nil
	}

	seen := make(map[Location]struct{})
	var locations []Location
	add := func(l Location) {
		if _, ok := seen[l]; ok {
			return
		}
		seen[l] = struct{}{}
		locations = append(locations, l)
	}

	for i := range p.Plan.Jobs {
		for _, kt := range p.Plan.Jobs[i].Tasks() {
			for _, place := range kt.Task.Places {
				add(place.Location)
			}
		}
	}

	for _, vt := range p.Fleet.Vehicles {
		for _, shift := range vt.Shifts {
			add(shift.Start.Location)
			if shift.End != nil {
				add(shift.End.Location)
			}
			for _, b := range shift.Breaks {
				for _, l := range b.Locations {
					add(l)
				}
			}
			for _, r := range shift.Reloads {
				add(r.Location)
			}
		}
	}

	return locations
}
