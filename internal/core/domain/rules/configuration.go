package rules

import (
	"strconv"

	"sales/internal/core/domain/model/product"
)

// Policy defaults.
const (
	MaxWeightOriginal = 10.0
	MaxWeightModified = 15.0
	MaxProducts       = 3
	StateGaseous      = "Gaseous"
	StateLiquid       = "Liquid"
)

// Names of the static attributes every product exposes to rules.
const (
	AttributeType     = "type"
	AttributeState    = "state"
	AttributeQuantity = "quantity"
	AttributePrice    = "price"
	AttributeWeight   = "weight"
)

// Configuration holds the constants the built-in rule sets are assembled from.
type Configuration struct {
	MaxWeightOriginal    float64
	MaxWeightModified    float64
	MaxProducts          int
	StateGaseous         string
	StateLiquid          string
	MaxProductsPerType   map[string]int
	PromotionAttribute   string
	PromotionMinPrice    float64
	InflammableAttribute string
	FuelAttribute        string
}

// DefaultConfiguration returns the policy currently in force.
func DefaultConfiguration() Configuration {
	return Configuration{
		MaxWeightOriginal:    MaxWeightOriginal,
		MaxWeightModified:    MaxWeightModified,
		MaxProducts:          MaxProducts,
		StateGaseous:         StateGaseous,
		StateLiquid:          StateLiquid,
		MaxProductsPerType:   map[string]int{"appliance": 1},
		PromotionAttribute:   "promotion",
		PromotionMinPrice:    10000,
		InflammableAttribute: "inflammable",
		FuelAttribute:        "fuel",
	}
}

// AllAttributes projects a product into one string mapping: the static
// attributes first, then the dynamic ones, which win on a name clash. A nil
// product projects to an empty map.
func AllAttributes(p *product.Product) map[string]string {
	if p == nil {
		return map[string]string{}
	}

	dynamic := p.Attributes()
	all := make(map[string]string, len(dynamic)+5)
	all[AttributeType] = p.Type()
	all[AttributeState] = p.State().String()
	all[AttributeQuantity] = strconv.Itoa(p.Quantity())
	all[AttributePrice] = formatNumber(p.Price())
	all[AttributeWeight] = formatNumber(p.Weight())

	for k, v := range dynamic {
		all[k] = v
	}
	return all
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
