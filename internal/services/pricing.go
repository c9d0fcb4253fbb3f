package services

import "sort"

const (
	TierValue   = "value"
	TierMid     = "mid"
	TierPremium = "premium"
)

type PriceInfo struct {
	Brand     string  `json:"brand"`
	UnitPrice float64 `json:"unit_price"`
	Size      string  `json:"size"`
	URL       string  `json:"url"`
}

// PriceSource abstracts the retailer catalogs and regional pricing table so
// the simulated fixtures can be swapped for a real pricing API without
// touching the pricing algorithm.
type PriceSource interface {
	LookupPrice(retailer string, item string) (PriceInfo, bool)
	CategoryBasePrice(category string) float64
	RegionalMultiplier(zipcode string) float64
	Retailers() []Retailer
}

type Retailer struct {
	Name                  string
	Tier                  string
	GlobalMultiplier      float64
	CategoryMultipliers   map[string]float64
	DeliveryFee           float64
	FreeDeliveryThreshold float64
}

type PricedItem struct {
	Name      string  `json:"name"`
	Brand     string  `json:"brand,omitempty"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  float64 `json:"quantity"`
	LineTotal float64 `json:"line_total"`
	Matched   bool    `json:"matched"`
}

type RetailerQuote struct {
	Retailer         string       `json:"retailer"`
	Tier             string       `json:"tier"`
	Items            []PricedItem `json:"items"`
	Subtotal         float64      `json:"subtotal"`
	DeliveryFee      float64      `json:"delivery_fee"`
	Total            float64      `json:"total"`
	SavingsVsAverage float64      `json:"savings_vs_average"`
	SavingsPct       float64      `json:"savings_pct"`
	BestValue        bool         `json:"best_value"`
	QualityPick      bool         `json:"quality_pick"`
}

// PriceList prices a consolidated grocery list against every retailer the
// source knows. Quotes come back cheapest-total first; the mid tier is
// flagged best-value when it lands within $10 of the cheapest, and the
// premium tier is always surfaced as the quality pick regardless of price.
func PriceList(list []GroceryItem, zipcode string, source PriceSource) []RetailerQuote {
	regional := source.RegionalMultiplier(zipcode)
	retailers := source.Retailers()

	quotes := make([]RetailerQuote, 0, len(retailers))
	for _, retailer := range retailers {
		quote := RetailerQuote{
			Retailer: retailer.Name,
			Tier:     retailer.Tier,
			Items:    make([]PricedItem, 0, len(list)),
		}

		for _, item := range list {
			unitPrice, matched, brand := resolveUnitPrice(source, retailer, item)
			lineTotal := roundTo(unitPrice*regional*item.NeededAmount, 2)
			quote.Items = append(quote.Items, PricedItem{
				Name:      item.Name,
				Brand:     brand,
				UnitPrice: roundTo(unitPrice*regional, 2),
				Quantity:  item.NeededAmount,
				LineTotal: lineTotal,
				Matched:   matched,
			})
			quote.Subtotal += lineTotal
		}

		quote.Subtotal = roundTo(quote.Subtotal, 2)
		if quote.Subtotal < retailer.FreeDeliveryThreshold {
			quote.DeliveryFee = retailer.DeliveryFee
		}
		quote.Total = roundTo(quote.Subtotal+quote.DeliveryFee, 2)
		quotes = append(quotes, quote)
	}

	applySavings(quotes)

	sort.Slice(quotes, func(i, j int) bool {
		return quotes[i].Total < quotes[j].Total
	})

	if len(quotes) > 0 {
		cheapest := quotes[0].Total
		for index := range quotes {
			if quotes[index].Tier == TierMid && quotes[index].Total-cheapest <= 10 {
				quotes[index].BestValue = true
			}
			if quotes[index].Tier == TierPremium {
				quotes[index].QualityPick = true
			}
		}
	}

	return quotes
}

func resolveUnitPrice(source PriceSource, retailer Retailer, item GroceryItem) (float64, bool, string) {
	if info, found := source.LookupPrice(retailer.Name, item.Name); found {
		return info.UnitPrice, true, info.Brand
	}

	categoryMultiplier, found := retailer.CategoryMultipliers[item.Category]
	if !found {
		categoryMultiplier = 1
	}
	return source.CategoryBasePrice(item.Category) * retailer.GlobalMultiplier * categoryMultiplier, false, ""
}

// applySavings computes each quote's position against the mean of all
// retailers' subtotals for the same list.
func applySavings(quotes []RetailerQuote) {
	if len(quotes) == 0 {
		return
	}

	var total float64
	for _, quote := range quotes {
		total += quote.Subtotal
	}
	average := total / float64(len(quotes))
	if average <= 0 {
		return
	}

	for index := range quotes {
		savings := average - quotes[index].Subtotal
		quotes[index].SavingsVsAverage = roundTo(savings, 2)
		quotes[index].SavingsPct = roundTo(savings/average*100, 1)
	}
}
