package booking

import (
	"sort"

	"glamvan/models"
)

// MatchStylists filters a stylist snapshot down to available stylists whose
// specialties intersect the implied service categories. Wedding selections
// additionally require the wedding specialty. Results are ranked by rating,
// then by completed bookings.
func MatchStylists(stylists []models.Stylist, categories []string, wedding bool) []models.Stylist {
	var matched []models.Stylist
	for i := range stylists {
		st := &stylists[i]
		if st.Status != models.StylistAvailable {
			continue
		}
		if wedding && !st.HasSpecialty(models.CategoryWedding) {
			continue
		}
		if !hasAnySpecialty(st, categories) {
			continue
		}
		matched = append(matched, *st)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Rating != matched[j].Rating {
			return matched[i].Rating > matched[j].Rating
		}
		return matched[i].BookingsCompleted > matched[j].BookingsCompleted
	})
	return matched
}

func hasAnySpecialty(st *models.Stylist, categories []string) bool {
	if len(categories) == 0 {
		return false
	}
	for _, c := range categories {
		if st.HasSpecialty(c) {
			return true
		}
	}
	return false
}
