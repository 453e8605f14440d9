package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestPermanent(t *testing.T) {
	assert.NoError(t, Permanent(nil))
	assert.False(t, IsPermanent(nil))
	assert.False(t, IsPermanent(errSentinel))

	err := Wrap(Permanent(Wrap(errSentinel, "fetch")), "poll")
	assert.True(t, IsPermanent(err))
	assert.ErrorIs(t, err, errSentinel, "marking keeps the cause reachable")
	assert.Equal(t, "poll: fetch: sentinel", err.Error())
}

type codedError struct{ code int }

func (e *codedError) Error() string { return "coded" }

func TestAsType(t *testing.T) {
	coded, ok := AsType[*codedError](Wrap(&codedError{code: 7}, "outer"))
	assert.True(t, ok)
	assert.Equal(t, 7, coded.code)

	_, ok = AsType[*codedError](errSentinel)
	assert.False(t, ok)
}
