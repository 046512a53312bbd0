package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themeshift/internal/theme"
)

func TestStatePicker_Chaining(t *testing.T) {
	m := newManager()
	normal := Colors(m, "#FFFFFF")
	pressed := Colors(m, "#CCCCCC")
	disabled := Colors(m, "#888888")

	s := NewStatePicker[theme.Color](normal, StateNormal)
	require.NotNil(t, s)

	same := s.SetPicker(pressed, StateHighlighted).SetPicker(disabled, StateDisabled)
	assert.Same(t, s, same)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []State{StateNormal, StateHighlighted, StateDisabled}, s.States())

	p, ok := s.Picker(StateHighlighted)
	require.True(t, ok)
	c, ok := p.Resolve()
	require.True(t, ok)
	assert.Equal(t, "#cccccc", c.Hex())

	_, ok = s.Picker(StateSelected)
	assert.False(t, ok)
}

func TestStatePicker_NilPickers(t *testing.T) {
	var missing *Picker[theme.Color]
	assert.Nil(t, NewStatePicker[theme.Color](missing, StateNormal))
	assert.Nil(t, NewStatePicker[theme.Color](nil, StateNormal))

	m := newManager()
	s := EmptyStatePicker[theme.Color]()
	s.SetPicker(Colors(m, "#000000"), StateFocused)
	assert.Equal(t, 1, s.Len())

	// nil removes
	s.SetPicker(missing, StateFocused)
	assert.Equal(t, 0, s.Len())

	var none *StatePicker[theme.Color]
	assert.Equal(t, 0, none.Len())
	assert.Nil(t, none.States())
	_, ok := none.Picker(StateNormal)
	assert.False(t, ok)
}

func TestStatePicker_HoldsStatusBarPickers(t *testing.T) {
	m := newManager()
	s := NewStatePicker[StatusBarStyle](StatusBarStyles(m, StatusBarStyleLightContent), StateSelected)

	p, ok := s.Picker(StateSelected)
	require.True(t, ok)
	style, ok := p.Resolve()
	assert.True(t, ok)
	assert.Equal(t, StatusBarStyleLightContent, style)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "normal", StateNormal.String())
	assert.Equal(t, "disabled", StateDisabled.String())
	assert.Equal(t, "combined", (StateSelected | StateHighlighted).String())
}

func TestStatePicker_ZeroValueAcceptsPickers(t *testing.T) {
	m := newManager()

	var s StatePicker[theme.Color]
	assert.Equal(t, 0, s.Len())

	s.SetPicker(Colors(m, "#FFFFFF"), StateHighlighted)
	assert.Equal(t, 1, s.Len())

	p, ok := s.Picker(StateHighlighted)
	require.True(t, ok)
	c, ok := p.Resolve()
	require.True(t, ok)
	assert.Equal(t, "#ffffff", c.Hex())

	// removing from a zero value must not panic either
	var empty StatePicker[theme.Color]
	var missing *Picker[theme.Color]
	assert.Same(t, &empty, empty.SetPicker(missing, StateNormal))
}

func TestStatePicker_ChainAfterNilConstructorStaysNil(t *testing.T) {
	m := newManager()
	var missing *Picker[theme.Color]

	s := NewStatePicker[theme.Color](missing, StateNormal).
		SetPicker(Colors(m, "#000000"), StateSelected).
		SetPicker(Colors(m, "#FFFFFF"), StateFocused)

	assert.Nil(t, s)
	assert.Equal(t, 0, s.Len())
}
