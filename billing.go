package marina

import "fmt"

// RateTable holds the monthly billing rate, in dollars per foot, for each
// location category.
type RateTable struct {
	Slip    Money
	Land    Money
	Trailer Money
	Storage Money
}

// DefaultRates returns the marina's standard monthly rates.
func DefaultRates() RateTable {
	return RateTable{
		Slip:    M(12.50),
		Land:    M(14.00),
		Trailer: M(25.00),
		Storage: M(11.20),
	}
}

// Rate returns the monthly dollar-per-foot rate for a category.
func (r RateTable) Rate(c Category) Money {
	switch c {
	case Slip:
		return r.Slip
	case Land:
		return r.Land
	case Trailer:
		return r.Trailer
	case Storage:
		return r.Storage
	default:
		return Money{}
	}
}

// MonthlyCharge returns the charge one month adds to a vessel:
// its length in feet times the rate for its category.
func MonthlyCharge(v Vessel, rates RateTable) Money {
	return rates.Rate(v.Location.Category()).Mul(Q(v.LengthFt))
}

// ApplyMonthlyCharges adds a month of fees to every vessel in the fleet.
// There is no idempotence guard: applying twice bills two months.
func (f *Fleet) ApplyMonthlyCharges(rates RateTable) {
	for i := range f.vessels {
		v := &f.vessels[i]
		v.Outstanding = v.Outstanding.Add(MonthlyCharge(*v, rates))
	}
}

// OverpaymentError reports a payment that exceeds, or exactly equals, the
// amount owed. Payments must leave a positive balance.
type OverpaymentError struct {
	Outstanding Money
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("that is more than the amount owed, %s", e.Outstanding)
}

// RecordPayment subtracts amount from the named vessel's outstanding fees.
// It returns ErrNotFound for an unknown name, and an OverpaymentError when
// amount >= the outstanding balance.
func (f *Fleet) RecordPayment(name string, amount Money) error {
	i, ok := f.FindByName(name)
	if !ok {
		return ErrNotFound
	}
	v := &f.vessels[i]
	if amount.GreaterThanOrEqual(v.Outstanding) {
		return &OverpaymentError{Outstanding: v.Outstanding}
	}
	v.Outstanding = v.Outstanding.Sub(amount)
	return nil
}
