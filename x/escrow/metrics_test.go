package escrow

import (
	"testing"

	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/errors"
	"github.com/iov-one/claimable/store"
	"github.com/iov-one/claimable/weavetest"
	"github.com/iov-one/claimable/weavetest/assert"
	"github.com/iov-one/claimable/x/cash"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := NewMetrics(reg)
	assert.Nil(t, err)

	depositor := weavetest.NewCondition()
	auth := weavetest.SignedBy(depositor)
	bank := cash.NewController(cash.NewBucket())
	ctrl := NewController(testInstance, auth, bank, metrics)
	db := store.MemStore()
	mint(t, db, bank, depositor.Address(), 100)

	claimants := []claimable.Address{depositor.Address()}
	tb := TimeBound{Kind: Before, Timestamp: 10}
	assert.Nil(t, ctrl.Deposit(atTime(1), db, depositor.Address(), testAsset, amount(10), claimants, tb))
	_ = ctrl.Deposit(atTime(1), db, depositor.Address(), testAsset, amount(10), claimants, tb)
	_ = ctrl.Claim(atTime(11), db, depositor.Address())
	assert.Nil(t, ctrl.Claim(atTime(10), db, depositor.Address()))

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.deposits.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.deposits.WithLabelValues("already_initialized")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.claims.WithLabelValues("time_condition_unmet")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.claims.WithLabelValues("ok")))

	// Registering twice on the same registry must fail.
	if _, err := NewMetrics(reg); err == nil {
		t.Fatal("want duplicate registration error")
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.deposit(nil)
	m.claim(ErrNoActiveEscrow)
}

func TestResultLabel(t *testing.T) {
	assert.Equal(t, "ok", resultLabel(nil))
	assert.Equal(t, "no_active_escrow", resultLabel(ErrNoActiveEscrow))
	assert.Equal(t, "other", resultLabel(errors.ErrDatabase))
}
