package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadSettings_Defaults(t *testing.T) {
	t.Setenv("TAX_RATE", "")
	t.Setenv("DELIVERY_FEE", "")
	t.Setenv("PAYMENT_DELAY", "")

	s := LoadSettings()

	assert.Equal(t, "0.08", s.TaxRate.String())
	assert.Equal(t, "5.99", s.DeliveryFee.String())
	assert.Equal(t, 1500*time.Millisecond, s.PaymentDelay)
	assert.Equal(t, "static", s.CatalogSource)
	assert.Equal(t, "orders", s.OrdersTopic)
}

func TestLoadSettings_Overrides(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		wantTax   string
		wantFee   string
		wantDelay time.Duration
	}{
		{
			name:      "valid overrides",
			env:       map[string]string{"TAX_RATE": "0.1", "DELIVERY_FEE": "3.5", "PAYMENT_DELAY": "200ms"},
			wantTax:   "0.1",
			wantFee:   "3.5",
			wantDelay: 200 * time.Millisecond,
		},
		{
			name:      "garbage falls back",
			env:       map[string]string{"TAX_RATE": "abc", "DELIVERY_FEE": "-1", "PAYMENT_DELAY": "soon"},
			wantTax:   "0.08",
			wantFee:   "5.99",
			wantDelay: 1500 * time.Millisecond,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			for k, v := range testCase.env {
				t.Setenv(k, v)
			}
			s := LoadSettings()
			assert.Equal(t, testCase.wantTax, s.TaxRate.String())
			assert.Equal(t, testCase.wantFee, s.DeliveryFee.String())
			assert.Equal(t, testCase.wantDelay, s.PaymentDelay)
		})
	}
}
