package config_test

import (
	"testing"

	"github.com/SergeyBogomolovv/shop-order-core/internal/config"
	"github.com/stretchr/testify/assert"
)

func validEnv(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("POSTGRES_USER", "shop")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "0123456789abcdef")
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{
			name: "defaults with credentials",
		},
		{
			name:    "unknown env",
			env:     map[string]string{"ENV": "dev"},
			wantErr: true,
		},
		{
			name:    "postgres driver requires credentials",
			env:     map[string]string{"POSTGRES_USER": ""},
			wantErr: true,
		},
		{
			name: "memory driver skips postgres",
			env:  map[string]string{"STORE_DRIVER": "memory", "POSTGRES_USER": "", "POSTGRES_PASSWORD": ""},
		},
		{
			name:    "short jwt secret",
			env:     map[string]string{"JWT_SECRET": "short"},
			wantErr: true,
		},
		{
			name:    "success rate above one",
			env:     map[string]string{"PAYMENT_EWALLET_SUCCESS_RATE": "1.5"},
			wantErr: true,
		},
		{
			name: "kafka disabled",
			env:  map[string]string{"KAFKA_ENABLED": "false", "KAFKA_GROUP_ID": ""},
		},
		{
			name:    "kafka enabled without group",
			env:     map[string]string{"KAFKA_GROUP_ID": ""},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			validEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			err := config.New().Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	validEnv(t)
	conf := config.New()

	assert.Equal(t, int64(30000), conf.Pricing.ShippingFee)
	assert.Equal(t, 0.90, conf.Payment.BankTransferSuccessRate)
	assert.Equal(t, 0.95, conf.Payment.EWalletSuccessRate)
	assert.Equal(t, "order-status-commands", conf.Kafka.CommandsTopic)
}
