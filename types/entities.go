package types

// EntityCategory is one of the four fixed buckets entity candidates fall into.
type EntityCategory string

const (
	EntityPerson EntityCategory = "PERSON"
	EntityOrg    EntityCategory = "ORG"
	EntityGPE    EntityCategory = "GPE"
	EntityMisc   EntityCategory = "MISC"
)

// Categories lists the fixed entity buckets in display order.
var Categories = []EntityCategory{EntityPerson, EntityOrg, EntityGPE, EntityMisc}

// EntityBag maps each category to its surface forms, insertion-order
// preserved and deduplicated on exact (case-sensitive) string match.
type EntityBag map[EntityCategory][]string

// NewEntityBag returns a bag with all four categories present and empty.
func NewEntityBag() EntityBag {
	bag := make(EntityBag, len(Categories))
	for _, cat := range Categories {
		bag[cat] = []string{}
	}
	return bag
}

// Add appends surface to the category unless it is already present.
func (b EntityBag) Add(cat EntityCategory, surface string) {
	for _, existing := range b[cat] {
		if existing == surface {
			return
		}
	}
	b[cat] = append(b[cat], surface)
}

// Total returns the number of surface forms across all categories.
func (b EntityBag) Total() int {
	n := 0
	for _, forms := range b {
		n += len(forms)
	}
	return n
}
