package domain

// PricingConfig rate table used by the pricing engine
// Discounts are percentages, thresholds are taught hours
type PricingConfig struct {
	FirstLevelHours     float64
	SecondLevelHours    float64
	FirstLevelDiscount  float64
	SecondLevelDiscount float64
	LoyaltyCardDiscount float64

	InsurancePrice       float64 // flat, per individual/shared booking
	GroupInsurancePerDay float64 // per session date of a group package
	ChildAddOnPrice      float64
	HappyHoursGroupPrice float64 // groups sold in happy hours carry no own price
}

// DefaultPricingConfig returns the built-in rate table
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		FirstLevelHours:      FirstLevelHours,
		SecondLevelHours:     SecondLevelHours,
		FirstLevelDiscount:   FirstLevelDiscount,
		SecondLevelDiscount:  SecondLevelDiscount,
		LoyaltyCardDiscount:  LoyaltyCardDiscount,
		InsurancePrice:       DefaultInsurancePrice,
		GroupInsurancePerDay: DefaultGroupInsurancePerDay,
		ChildAddOnPrice:      DefaultChildAddOnPrice,
		HappyHoursGroupPrice: DefaultHappyHoursGroupPrice,
	}
}

// WithDefaults fills zero fields from the built-in table
func (c PricingConfig) WithDefaults() PricingConfig {
	d := DefaultPricingConfig()
	if c.FirstLevelHours == 0 {
		c.FirstLevelHours = d.FirstLevelHours
	}
	if c.SecondLevelHours == 0 {
		c.SecondLevelHours = d.SecondLevelHours
	}
	if c.FirstLevelDiscount == 0 {
		c.FirstLevelDiscount = d.FirstLevelDiscount
	}
	if c.SecondLevelDiscount == 0 {
		c.SecondLevelDiscount = d.SecondLevelDiscount
	}
	if c.LoyaltyCardDiscount == 0 {
		c.LoyaltyCardDiscount = d.LoyaltyCardDiscount
	}
	if c.InsurancePrice == 0 {
		c.InsurancePrice = d.InsurancePrice
	}
	if c.GroupInsurancePerDay == 0 {
		c.GroupInsurancePerDay = d.GroupInsurancePerDay
	}
	if c.ChildAddOnPrice == 0 {
		c.ChildAddOnPrice = d.ChildAddOnPrice
	}
	if c.HappyHoursGroupPrice == 0 {
		c.HappyHoursGroupPrice = d.HappyHoursGroupPrice
	}
	return c
}
