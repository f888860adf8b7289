package booking

import "glamvan/models"

// DispatchResolver maps a location zone to a van over a fixed snapshot of
// the fleet. Resolution is deterministic for a given snapshot, reads only,
// and is advisory: it does not reserve the van.
type DispatchResolver struct {
	vans  []models.Van
	zones map[string][]string // zone -> candidate van IDs, snapshot order
	byID  map[string]*models.Van
}

// NewDispatchResolver builds a resolver from a van snapshot. The
// zone-to-candidate mapping is derived from each van's declared zones, in
// snapshot order, so several zones may share the same nearest van.
func NewDispatchResolver(vans []models.Van) *DispatchResolver {
	r := &DispatchResolver{
		vans:  vans,
		zones: make(map[string][]string),
		byID:  make(map[string]*models.Van, len(vans)),
	}
	for i := range vans {
		v := &vans[i]
		r.byID[v.ID] = v
		for _, z := range v.Zones {
			r.zones[z] = append(r.zones[z], v.ID)
		}
	}
	return r
}

// Resolve returns the van serving the given zone: the first available
// candidate mapped to the zone, or, when the zone has no available
// dedicated van, any available van system-wide. A booking only goes
// without a van when the whole fleet is unavailable.
func (r *DispatchResolver) Resolve(zone string) *models.Van {
	for _, id := range r.zones[zone] {
		if v := r.byID[id]; v != nil && v.Status == models.VanAvailable {
			return v
		}
	}
	// Last-resort assignment: an uncovered zone still gets a van if any
	// is available.
	for i := range r.vans {
		if r.vans[i].Status == models.VanAvailable {
			return &r.vans[i]
		}
	}
	return nil
}
