package marina

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		amount float64
		want   string
	}{
		{375, "$375.00"},
		{0, "$0.00"},
		{100.5, "$100.50"},
	}
	for _, tc := range testCases {
		if got := M(tc.amount).String(); got != tc.want {
			t.Errorf("M(%v).String() = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	// 0.1 + 0.2 is exactly 0.3 in decimal arithmetic
	if got := M(0.1).Add(M(0.2)); !got.Equal(M(0.3)) {
		t.Errorf("0.1 + 0.2 = %s, want 0.30", got.Fixed())
	}
	if got := M(12.50).Mul(Q(30)); got.Fixed() != "375.00" {
		t.Errorf("12.50 × 30 = %s, want 375.00", got.Fixed())
	}
	if !M(100).GreaterThanOrEqual(M(100)) {
		t.Error("100 >= 100 reported false")
	}
}
