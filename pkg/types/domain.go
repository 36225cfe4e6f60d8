package types

// Domain is a top level product vertical. Each domain carries its own
// attribute vocabulary and classification rules.
type Domain string

const (
	DomainMedicines   Domain = "medicines"
	DomainClothing    Domain = "clothing"
	DomainShoes       Domain = "shoes"
	DomainElectronics Domain = "electronics"
	DomainJewelry     Domain = "jewelry"
	DomainBooks       Domain = "books"
	DomainHeadwear    Domain = "headwear"
	DomainCosmetics   Domain = "cosmetics"
	DomainGeneral     Domain = "general"
)

func ParseDomain(s string) Domain {
	switch Domain(s) {
	case DomainMedicines, DomainClothing, DomainShoes, DomainElectronics,
		DomainJewelry, DomainBooks, DomainHeadwear, DomainCosmetics:
		return Domain(s)
	}
	return DomainGeneral
}
