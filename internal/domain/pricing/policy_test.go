package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseTier(t *testing.T) {
	tests := []struct {
		in   string
		want Tier
	}{
		{"REGULAR", TierRegular},
		{"regular", TierRegular},
		{"Premium", TierPremium},
		{"vip", TierVIP},
		{"VIP", TierVIP},
		{"employee", TierEmployee},
		{" vip ", TierVIP},
		{"", TierUnknown},
		{"GOLD", TierUnknown},
		{"unknown", TierUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTier(tt.in))
		})
	}
}

func TestPolicy_DiscountRate(t *testing.T) {
	p := NewPolicy()

	tests := []struct {
		tier Tier
		want string
	}{
		{TierRegular, "0"},
		{TierPremium, "0.1"},
		{TierVIP, "0.2"},
		{TierEmployee, "0.3"},
		{TierUnknown, "0"},
		{Tier("BOGUS"), "0"},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			want := decimal.RequireFromString(tt.want)
			assert.True(t, want.Equal(p.DiscountRate(tt.tier)),
				"want %s, got %s", want, p.DiscountRate(tt.tier))
		})
	}
}

func TestPolicy_ShippingCost(t *testing.T) {
	p := NewPolicy()

	tests := []struct {
		name     string
		tier     Tier
		subtotal string
		want     string
	}{
		{"vip always free", TierVIP, "5", "0"},
		{"vip free above any threshold", TierVIP, "500", "0"},
		{"premium below threshold pays", TierPremium, "100", "9.99"},
		{"premium above 100 free", TierPremium, "100.01", "0"},
		{"regular below 200 pays", TierRegular, "200", "9.99"},
		{"regular above 200 free", TierRegular, "200.01", "0"},
		{"employee above 200 free", TierEmployee, "250", "0"},
		{"employee below 200 pays", TierEmployee, "150", "9.99"},
		{"unknown tier standard rate", TierUnknown, "50", "9.99"},
		{"unknown tier large order free", TierUnknown, "300", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.ShippingCost(tt.tier, decimal.RequireFromString(tt.subtotal))
			want := decimal.RequireFromString(tt.want)
			assert.True(t, want.Equal(got), "want %s, got %s", want, got)
		})
	}
}
