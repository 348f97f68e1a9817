package abi_test

import (
	"testing"

	"github.com/helixchain/helixvm/internal/runtime/testenv"
)

// newEnv returns a bound environment over a fresh mock Interface with the
// given gas budget.
func newEnv(t *testing.T, gasLimit uint64) (*testenv.FakeEnv, *testenv.MockInterface) {
	t.Helper()
	m := testenv.NewMockInterface()
	return testenv.NewFakeEnv(m, gasLimit), m
}
