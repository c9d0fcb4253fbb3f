package services

import (
	"sort"
	"strings"
)

// SimulatedPriceSource serves the built-in retailer catalogs and the
// zip-prefix regional table. It stands in for a live pricing API.
type SimulatedPriceSource struct{}

func NewSimulatedPriceSource() *SimulatedPriceSource {
	return &SimulatedPriceSource{}
}

var simulatedRetailers = []Retailer{
	{
		Name:             "Walmart",
		Tier:             TierValue,
		GlobalMultiplier: 0.92,
		CategoryMultipliers: map[string]float64{
			"protein": 0.95, "dairy": 0.9, "vegetables": 0.9, "fruits": 0.92,
			"grains": 0.88, "nuts": 0.95, "oils": 0.9, "spices": 0.85, "condiments": 0.9,
		},
		DeliveryFee:           6.99,
		FreeDeliveryThreshold: 35,
	},
	{
		Name:             "Kroger",
		Tier:             TierMid,
		GlobalMultiplier: 1.0,
		CategoryMultipliers: map[string]float64{
			"protein": 1.0, "dairy": 0.98, "vegetables": 1.02, "fruits": 1.0,
			"grains": 0.97, "nuts": 1.05, "oils": 1.0, "spices": 1.0, "condiments": 1.0,
		},
		DeliveryFee:           5.99,
		FreeDeliveryThreshold: 50,
	},
	{
		Name:             "Whole Foods",
		Tier:             TierPremium,
		GlobalMultiplier: 1.35,
		CategoryMultipliers: map[string]float64{
			"protein": 1.4, "dairy": 1.3, "vegetables": 1.25, "fruits": 1.3,
			"grains": 1.2, "nuts": 1.25, "oils": 1.35, "spices": 1.3, "condiments": 1.25,
		},
		DeliveryFee:           9.95,
		FreeDeliveryThreshold: 75,
	},
}

var retailerCatalogs = map[string]map[string]PriceInfo{
	"Walmart": {
		"chicken breast": {Brand: "Great Value", UnitPrice: 4.98, Size: "1 lb", URL: "https://walmart.example/chicken-breast"},
		"ground beef":    {Brand: "Great Value", UnitPrice: 5.48, Size: "1 lb", URL: "https://walmart.example/ground-beef"},
		"salmon":         {Brand: "Sam's Choice", UnitPrice: 9.97, Size: "1 lb", URL: "https://walmart.example/salmon"},
		"eggs":           {Brand: "Great Value", UnitPrice: 0.24, Size: "1 egg", URL: "https://walmart.example/eggs"},
		"greek yogurt":   {Brand: "Great Value", UnitPrice: 3.68, Size: "32 oz", URL: "https://walmart.example/greek-yogurt"},
		"milk":           {Brand: "Great Value", UnitPrice: 0.42, Size: "1 cup", URL: "https://walmart.example/milk"},
		"brown rice":     {Brand: "Great Value", UnitPrice: 0.72, Size: "1 cup dry", URL: "https://walmart.example/brown-rice"},
		"oats":           {Brand: "Quaker", UnitPrice: 0.55, Size: "1 cup dry", URL: "https://walmart.example/oats"},
		"banana":         {Brand: "Fresh", UnitPrice: 0.27, Size: "1 each", URL: "https://walmart.example/banana"},
		"apple":          {Brand: "Fresh", UnitPrice: 0.68, Size: "1 each", URL: "https://walmart.example/apple"},
		"avocado":        {Brand: "Fresh", UnitPrice: 0.98, Size: "1 each", URL: "https://walmart.example/avocado"},
		"spinach":        {Brand: "Marketside", UnitPrice: 1.24, Size: "1 cup", URL: "https://walmart.example/spinach"},
		"broccoli":       {Brand: "Fresh", UnitPrice: 1.12, Size: "1 cup", URL: "https://walmart.example/broccoli"},
		"olive oil":      {Brand: "Great Value", UnitPrice: 0.31, Size: "1 tbsp", URL: "https://walmart.example/olive-oil"},
		"peanut butter":  {Brand: "Great Value", UnitPrice: 0.18, Size: "2 tbsp", URL: "https://walmart.example/peanut-butter"},
	},
	"Kroger": {
		"chicken breast": {Brand: "Simple Truth", UnitPrice: 5.49, Size: "1 lb", URL: "https://kroger.example/chicken-breast"},
		"ground beef":    {Brand: "Kroger", UnitPrice: 5.99, Size: "1 lb", URL: "https://kroger.example/ground-beef"},
		"salmon":         {Brand: "Kroger", UnitPrice: 10.99, Size: "1 lb", URL: "https://kroger.example/salmon"},
		"eggs":           {Brand: "Kroger", UnitPrice: 0.27, Size: "1 egg", URL: "https://kroger.example/eggs"},
		"greek yogurt":   {Brand: "Kroger", UnitPrice: 3.99, Size: "32 oz", URL: "https://kroger.example/greek-yogurt"},
		"milk":           {Brand: "Kroger", UnitPrice: 0.45, Size: "1 cup", URL: "https://kroger.example/milk"},
		"brown rice":     {Brand: "Kroger", UnitPrice: 0.79, Size: "1 cup dry", URL: "https://kroger.example/brown-rice"},
		"banana":         {Brand: "Fresh", UnitPrice: 0.29, Size: "1 each", URL: "https://kroger.example/banana"},
		"apple":          {Brand: "Fresh", UnitPrice: 0.75, Size: "1 each", URL: "https://kroger.example/apple"},
		"avocado":        {Brand: "Fresh", UnitPrice: 1.09, Size: "1 each", URL: "https://kroger.example/avocado"},
		"spinach":        {Brand: "Simple Truth", UnitPrice: 1.39, Size: "1 cup", URL: "https://kroger.example/spinach"},
		"olive oil":      {Brand: "Private Selection", UnitPrice: 0.35, Size: "1 tbsp", URL: "https://kroger.example/olive-oil"},
	},
	"Whole Foods": {
		"chicken breast": {Brand: "365 Organic", UnitPrice: 7.99, Size: "1 lb", URL: "https://wholefoods.example/chicken-breast"},
		"ground beef":    {Brand: "365 Grass-Fed", UnitPrice: 8.49, Size: "1 lb", URL: "https://wholefoods.example/ground-beef"},
		"salmon":         {Brand: "Wild Caught", UnitPrice: 14.99, Size: "1 lb", URL: "https://wholefoods.example/salmon"},
		"eggs":           {Brand: "365 Pasture-Raised", UnitPrice: 0.42, Size: "1 egg", URL: "https://wholefoods.example/eggs"},
		"greek yogurt":   {Brand: "365 Organic", UnitPrice: 5.49, Size: "32 oz", URL: "https://wholefoods.example/greek-yogurt"},
		"milk":           {Brand: "365 Organic", UnitPrice: 0.62, Size: "1 cup", URL: "https://wholefoods.example/milk"},
		"banana":         {Brand: "Organic", UnitPrice: 0.39, Size: "1 each", URL: "https://wholefoods.example/banana"},
		"apple":          {Brand: "Organic", UnitPrice: 1.05, Size: "1 each", URL: "https://wholefoods.example/apple"},
		"avocado":        {Brand: "Organic", UnitPrice: 1.69, Size: "1 each", URL: "https://wholefoods.example/avocado"},
		"spinach":        {Brand: "365 Organic", UnitPrice: 1.89, Size: "1 cup", URL: "https://wholefoods.example/spinach"},
		"olive oil":      {Brand: "365 Extra Virgin", UnitPrice: 0.48, Size: "1 tbsp", URL: "https://wholefoods.example/olive-oil"},
	},
}

var categoryBasePrices = map[string]float64{
	"protein":    6.5,
	"dairy":      3.2,
	"vegetables": 1.8,
	"fruits":     2.1,
	"grains":     2.4,
	"nuts":       4.8,
	"oils":       3.5,
	"spices":     2.9,
	"condiments": 2.5,
}

// regionalMultipliers is keyed by the first three digits of a zipcode. The
// upstream dataset shipped "331" twice (Miami and Phoenix); Miami keeps the
// prefix it actually owns and Phoenix is keyed by its real 850 prefix.
var regionalMultipliers = map[string]float64{
	"100": 1.35, // Manhattan
	"101": 1.35,
	"102": 1.35,
	"112": 1.3,  // Brooklyn
	"941": 1.4,  // San Francisco
	"900": 1.3,  // Los Angeles
	"981": 1.25, // Seattle
	"021": 1.3,  // Boston
	"606": 1.15, // Chicago
	"331": 1.25, // Miami
	"850": 1.05, // Phoenix
	"303": 1.1,  // Atlanta
	"752": 1.05, // Dallas
	"802": 1.1,  // Denver
	"774": 0.95, // rural Texas
	"325": 0.92, // Florida panhandle
	"410": 0.9,  // rural Kentucky
}

func (source *SimulatedPriceSource) Retailers() []Retailer {
	return simulatedRetailers
}

// LookupPrice tries an exact catalog hit first, then a substring match in
// either direction.
func (source *SimulatedPriceSource) LookupPrice(retailer string, item string) (PriceInfo, bool) {
	catalog, found := retailerCatalogs[retailer]
	if !found {
		return PriceInfo{}, false
	}

	needle := strings.ToLower(strings.TrimSpace(item))
	if info, exact := catalog[needle]; exact {
		return info, true
	}

	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if strings.Contains(needle, name) || strings.Contains(name, needle) {
			return catalog[name], true
		}
	}
	return PriceInfo{}, false
}

func (source *SimulatedPriceSource) CategoryBasePrice(category string) float64 {
	if price, found := categoryBasePrices[category]; found {
		return price
	}
	return categoryBasePrices[CategoryCondiments]
}

func (source *SimulatedPriceSource) RegionalMultiplier(zipcode string) float64 {
	zipcode = strings.TrimSpace(zipcode)
	if len(zipcode) < 3 {
		return 1.0
	}
	if multiplier, found := regionalMultipliers[zipcode[:3]]; found {
		return multiplier
	}
	return 1.0
}
