package fees

// Rates charged on top of the event fees. Platform fee applies to the base
// total; GST applies to base plus platform fee.
const (
	PlatformFeeRate = 0.02
	TaxRate         = 0.18
)

type Breakdown struct {
	BaseTotal   float64 `json:"baseTotal"`
	PlatformFee float64 `json:"platformFee"`
	Tax         float64 `json:"tax"`
	Final       float64 `json:"final"`
}

// PricedEvent is the slice of the catalog the calculator needs.
type PricedEvent struct {
	Slug            string
	RegistrationFee float64
}

// Calculate derives the payable breakdown for the selected slugs against the
// fetched catalog. Values stay unrounded; presentation rounds to two
// decimals. Slugs not present in the catalog contribute nothing.
func Calculate(catalog []PricedEvent, selected []string) Breakdown {
	chosen := make(map[string]bool, len(selected))
	for _, slug := range selected {
		chosen[slug] = true
	}

	var base float64
	for _, ev := range catalog {
		if chosen[ev.Slug] {
			base += ev.RegistrationFee
		}
	}

	platformFee := base * PlatformFeeRate
	tax := (base + platformFee) * TaxRate
	return Breakdown{
		BaseTotal:   base,
		PlatformFee: platformFee,
		Tax:         tax,
		Final:       base + platformFee + tax,
	}
}
