package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestWrap_PreservesCause(t *testing.T) {
	wrapped := Wrap(errSentinel, "save credential")

	assert.True(t, Is(wrapped, errSentinel))
	assert.Equal(t, errSentinel, Cause(wrapped))
	assert.Equal(t, "save credential: sentinel", wrapped.Error())
}

func TestWrapf_FormatsMessage(t *testing.T) {
	wrapped := Wrapf(errSentinel, "user %d", 42)

	assert.Equal(t, "user 42: sentinel", wrapped.Error())
	assert.Contains(t, fmt.Sprintf("%+v", wrapped), "TestWrapf_FormatsMessage")
}

func TestJoin_MatchesEveryMember(t *testing.T) {
	other := New("other")
	joined := Join(errSentinel, other)

	assert.True(t, Is(joined, errSentinel))
	assert.True(t, Is(joined, other))
}
