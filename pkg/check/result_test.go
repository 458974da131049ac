package check

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOk(t *testing.T) {
	v, err := Ok(42, nil)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = Ok(0, errors.New("boom"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), " err debug: `\"boom\"`")
}

func TestErr(t *testing.T) {
	boom := errors.New("boom")

	derived, err := Err(boom)
	require.NoError(t, err)
	assert.Same(t, boom, derived)

	_, err = Err(nil)
	assert.Error(t, err)
}

func TestOkEq(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name   string
		av     int8
		aerr   error
		bv     int8
		berr   error
		passed bool
	}{
		{"both ok equal", 1, nil, 1, nil, true},
		{"both ok unequal", 1, nil, 2, nil, false},
		{"left err", 0, boom, 1, nil, false},
		{"right err", 1, nil, 0, boom, false},
		{"both err", 0, boom, 0, boom, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := OkEq(tt.av, tt.aerr, tt.bv, tt.berr)
			assert.Equal(t, tt.passed, err == nil)
		})
	}
}

func TestOkEqPreconditionOmitsInnerLines(t *testing.T) {
	err := OkEq(0, errors.New("boom"), 1, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), " a error: `\"boom\"`,")
	assert.Contains(t, err.Error(), " b error: `<nil>`")
	assert.NotContains(t, err.Error(), " a inner:")
	assert.NotContains(t, err.Error(), " b inner:")
}

func TestOkEqComparisonFailureHasInnerLines(t *testing.T) {
	err := OkEq(1, nil, 2, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), " a inner: `1`,")
	assert.Contains(t, err.Error(), " b inner: `2`")
}

func TestErrEq(t *testing.T) {
	tests := []struct {
		name   string
		a, b   error
		passed bool
	}{
		{"same message", errors.New("x"), errors.New("x"), true},
		{"different message", errors.New("x"), errors.New("y"), false},
		{"left nil", nil, errors.New("x"), false},
		{"right nil", errors.New("x"), nil, false},
		{"both nil", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ErrEq(tt.a, tt.b)
			assert.Equal(t, tt.passed, err == nil)
		})
	}
}

func TestErrIs(t *testing.T) {
	base := errors.New("base")
	wrapped := fmt.Errorf("context: %w", base)

	assert.NoError(t, ErrIs(wrapped, base))
	assert.Error(t, ErrIs(errors.New("other"), base))
}
