// Package payment holds the mock payment rail used until a real gateway is wired.
package payment

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
)

const (
	DefaultBankTransferSuccessRate = 0.90
	DefaultEWalletSuccessRate      = 0.95
)

type Config struct {
	Latency                 time.Duration
	BankTransferSuccessRate float64
	EWalletSuccessRate      float64
}

// Simulator waits out a fixed latency and then approves a charge with a
// per-method probability. Safe for concurrent use.
type Simulator struct {
	latency time.Duration
	rates   map[entities.PaymentMethod]float64

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSimulator uses src for outcomes; a nil src seeds from the runtime.
func NewSimulator(cfg Config, src rand.Source) *Simulator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Simulator{
		latency: cfg.Latency,
		rates: map[entities.PaymentMethod]float64{
			entities.PaymentBankTransfer: cfg.BankTransferSuccessRate,
			entities.PaymentEWallet:      cfg.EWalletSuccessRate,
		},
		rnd: rand.New(src),
	}
}

func (s *Simulator) Settle(ctx context.Context, method entities.PaymentMethod) (bool, error) {
	rate, ok := s.rates[method]
	if !ok {
		return false, fmt.Errorf("%w: %q cannot be settled online", entities.ErrInvalidPaymentMethod, method)
	}
	if err := s.wait(ctx); err != nil {
		return false, err
	}

	s.mu.Lock()
	roll := s.rnd.Float64()
	s.mu.Unlock()

	return roll < rate, nil
}

func (s *Simulator) Refund(ctx context.Context, method entities.PaymentMethod) error {
	if _, ok := s.rates[method]; !ok {
		return fmt.Errorf("%w: %q cannot be refunded online", entities.ErrInvalidPaymentMethod, method)
	}
	return s.wait(ctx)
}

func (s *Simulator) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
