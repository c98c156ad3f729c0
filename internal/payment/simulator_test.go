package payment_test

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-core/internal/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulator_Settle(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     payment.Config
		method  entities.PaymentMethod
		want    bool
		wantErr error
	}{
		{
			name:   "always approves",
			cfg:    payment.Config{BankTransferSuccessRate: 1, EWalletSuccessRate: 1},
			method: entities.PaymentBankTransfer,
			want:   true,
		},
		{
			name:   "always declines",
			cfg:    payment.Config{BankTransferSuccessRate: 0, EWalletSuccessRate: 0},
			method: entities.PaymentEWallet,
			want:   false,
		},
		{
			name:    "cash on delivery is not settled online",
			cfg:     payment.Config{BankTransferSuccessRate: 1, EWalletSuccessRate: 1},
			method:  entities.PaymentCashOnDelivery,
			wantErr: entities.ErrInvalidPaymentMethod,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sim := payment.NewSimulator(tc.cfg, rand.NewPCG(1, 2))

			ok, err := sim.Settle(context.Background(), tc.method)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestSimulator_SuccessRateRoughlyHolds(t *testing.T) {
	sim := payment.NewSimulator(payment.Config{
		BankTransferSuccessRate: payment.DefaultBankTransferSuccessRate,
		EWalletSuccessRate:      payment.DefaultEWalletSuccessRate,
	}, rand.NewPCG(42, 7))

	const n = 5000
	approved := 0
	for range n {
		ok, err := sim.Settle(context.Background(), entities.PaymentBankTransfer)
		require.NoError(t, err)
		if ok {
			approved++
		}
	}
	assert.InDelta(t, 0.90, float64(approved)/n, 0.03)
}

func TestSimulator_SameSeedSameOutcomes(t *testing.T) {
	cfg := payment.Config{BankTransferSuccessRate: 0.5, EWalletSuccessRate: 0.5}
	a := payment.NewSimulator(cfg, rand.NewPCG(3, 4))
	b := payment.NewSimulator(cfg, rand.NewPCG(3, 4))

	for range 20 {
		x, err := a.Settle(context.Background(), entities.PaymentEWallet)
		require.NoError(t, err)
		y, err := b.Settle(context.Background(), entities.PaymentEWallet)
		require.NoError(t, err)
		assert.Equal(t, x, y)
	}
}

func TestSimulator_LatencyHonorsContext(t *testing.T) {
	sim := payment.NewSimulator(payment.Config{
		Latency:                 time.Minute,
		BankTransferSuccessRate: 1,
		EWalletSuccessRate:      1,
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := sim.Settle(ctx, entities.PaymentBankTransfer)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)

	assert.ErrorIs(t, sim.Refund(ctx, entities.PaymentBankTransfer), context.DeadlineExceeded)
}
