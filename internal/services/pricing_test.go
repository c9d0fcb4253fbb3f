package services

import "testing"

func quoteFor(t *testing.T, quotes []RetailerQuote, retailer string) RetailerQuote {
	t.Helper()
	for _, quote := range quotes {
		if quote.Retailer == retailer {
			return quote
		}
	}
	t.Fatalf("no quote for %s", retailer)
	return RetailerQuote{}
}

func TestPriceListMiamiChickenScenario(t *testing.T) {
	list := []GroceryItem{{Name: "chicken breast", Category: "protein", Unit: "lbs", NeededAmount: 1}}
	quotes := PriceList(list, "33109", NewSimulatedPriceSource())

	if len(quotes) != 3 {
		t.Fatalf("expected 3 quotes, got %d", len(quotes))
	}

	walmart := quoteFor(t, quotes, "Walmart")
	// 4.98 catalog price * 1.25 Miami multiplier = 6.23.
	if walmart.Subtotal != 6.23 {
		t.Fatalf("expected Walmart subtotal 6.23, got %v", walmart.Subtotal)
	}
	if walmart.DeliveryFee != 6.99 {
		t.Fatalf("expected delivery fee below threshold, got %v", walmart.DeliveryFee)
	}
	if walmart.Total != 13.22 {
		t.Fatalf("expected Walmart total 13.22, got %v", walmart.Total)
	}
	if !walmart.Items[0].Matched || walmart.Items[0].Brand != "Great Value" {
		t.Fatalf("expected catalog match with brand, got %+v", walmart.Items[0])
	}

	kroger := quoteFor(t, quotes, "Kroger")
	if kroger.Subtotal != 6.86 {
		t.Fatalf("expected Kroger subtotal 6.86, got %v", kroger.Subtotal)
	}

	wholeFoods := quoteFor(t, quotes, "Whole Foods")
	if wholeFoods.Subtotal != 9.99 {
		t.Fatalf("expected Whole Foods subtotal 9.99, got %v", wholeFoods.Subtotal)
	}
	if !wholeFoods.QualityPick {
		t.Fatal("expected premium retailer flagged as quality pick")
	}
}

func TestPriceListSortedCheapestFirst(t *testing.T) {
	list := []GroceryItem{
		{Name: "chicken breast", Category: "protein", NeededAmount: 2},
		{Name: "greek yogurt", Category: "dairy", NeededAmount: 1},
		{Name: "banana", Category: "fruits", NeededAmount: 7},
	}
	quotes := PriceList(list, "90001", NewSimulatedPriceSource())

	for index := 1; index < len(quotes); index++ {
		if quotes[index].Total < quotes[index-1].Total {
			t.Fatalf("expected ascending totals, got %v before %v", quotes[index-1].Total, quotes[index].Total)
		}
	}
}

func TestPriceListFreeDeliveryThreshold(t *testing.T) {
	// 8 lbs of chicken with no regional markup puts Walmart at 39.84,
	// over its 35 threshold, while Kroger and Whole Foods stay under theirs.
	list := []GroceryItem{{Name: "chicken breast", Category: "protein", NeededAmount: 8}}
	quotes := PriceList(list, "73301", NewSimulatedPriceSource())

	if fee := quoteFor(t, quotes, "Walmart").DeliveryFee; fee != 0 {
		t.Fatalf("expected free Walmart delivery, got fee %v", fee)
	}
	if fee := quoteFor(t, quotes, "Kroger").DeliveryFee; fee != 5.99 {
		t.Fatalf("expected Kroger fee 5.99, got %v", fee)
	}
	if fee := quoteFor(t, quotes, "Whole Foods").DeliveryFee; fee != 9.95 {
		t.Fatalf("expected Whole Foods fee 9.95, got %v", fee)
	}
}

func TestPriceListSavingsAgainstAverage(t *testing.T) {
	list := []GroceryItem{{Name: "chicken breast", Category: "protein", NeededAmount: 1}}
	quotes := PriceList(list, "33109", NewSimulatedPriceSource())

	// Subtotals 6.23, 6.86 and 9.99 average to 7.69.
	walmart := quoteFor(t, quotes, "Walmart")
	if walmart.SavingsVsAverage != 1.46 {
		t.Fatalf("expected Walmart savings 1.46, got %v", walmart.SavingsVsAverage)
	}
	if walmart.SavingsVsAverage <= 0 {
		t.Fatal("expected cheapest subtotal to beat the average")
	}

	wholeFoods := quoteFor(t, quotes, "Whole Foods")
	if wholeFoods.SavingsVsAverage >= 0 {
		t.Fatalf("expected premium subtotal above average, got savings %v", wholeFoods.SavingsVsAverage)
	}
}

func TestPriceListUnmatchedItemFallsBackToCategory(t *testing.T) {
	list := []GroceryItem{{Name: "dragonfruit salsa", Category: CategoryCondiments, NeededAmount: 1}}
	quotes := PriceList(list, "73301", NewSimulatedPriceSource())

	walmart := quoteFor(t, quotes, "Walmart")
	item := walmart.Items[0]
	if item.Matched {
		t.Fatal("expected no catalog match")
	}
	// 2.50 base * 0.92 global * 0.90 condiments = 2.07.
	if item.LineTotal != 2.07 {
		t.Fatalf("expected estimated line total 2.07, got %v", item.LineTotal)
	}
}

func TestRegionalMultiplierDefaults(t *testing.T) {
	source := NewSimulatedPriceSource()

	if got := source.RegionalMultiplier("33109"); got != 1.25 {
		t.Fatalf("expected Miami multiplier 1.25, got %v", got)
	}
	if got := source.RegionalMultiplier("85004"); got != 1.05 {
		t.Fatalf("expected Phoenix multiplier 1.05, got %v", got)
	}
	if got := source.RegionalMultiplier("73301"); got != 1.0 {
		t.Fatalf("expected default multiplier 1.0, got %v", got)
	}
	if got := source.RegionalMultiplier("1"); got != 1.0 {
		t.Fatalf("expected short zip to default, got %v", got)
	}
}

type stubPriceSource struct {
	retailers []Retailer
	catalogs  map[string]map[string]PriceInfo
}

func (source *stubPriceSource) Retailers() []Retailer { return source.retailers }

func (source *stubPriceSource) LookupPrice(retailer string, item string) (PriceInfo, bool) {
	info, found := source.catalogs[retailer][item]
	return info, found
}

func (source *stubPriceSource) CategoryBasePrice(string) float64 { return 2.5 }

func (source *stubPriceSource) RegionalMultiplier(string) float64 { return 1.0 }

func TestBestValueRequiresMidWithinTenDollars(t *testing.T) {
	makeSource := func(midPrice float64) *stubPriceSource {
		return &stubPriceSource{
			retailers: []Retailer{
				{Name: "Budget Mart", Tier: TierValue, GlobalMultiplier: 1},
				{Name: "Mid Mart", Tier: TierMid, GlobalMultiplier: 1},
			},
			catalogs: map[string]map[string]PriceInfo{
				"Budget Mart": {"widget": {UnitPrice: 20}},
				"Mid Mart":    {"widget": {UnitPrice: midPrice}},
			},
		}
	}
	list := []GroceryItem{{Name: "widget", Category: CategoryCondiments, NeededAmount: 1}}

	quotes := PriceList(list, "00000", makeSource(30))
	if mid := quoteFor(t, quotes, "Mid Mart"); !mid.BestValue {
		t.Fatal("expected best-value flag at exactly $10 over cheapest")
	}

	quotes = PriceList(list, "00000", makeSource(30.01))
	if mid := quoteFor(t, quotes, "Mid Mart"); mid.BestValue {
		t.Fatal("expected no best-value flag beyond $10 over cheapest")
	}
}
