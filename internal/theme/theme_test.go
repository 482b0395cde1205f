package theme

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

type recordingSlot struct {
	stored  map[string]string
	gets    []string
	sets    [][2]string
	failGet bool
	failSet bool
}

func newRecordingSlot() *recordingSlot {
	return &recordingSlot{stored: map[string]string{}}
}

func (r *recordingSlot) Get(key string) (string, bool, error) {
	r.gets = append(r.gets, key)
	if r.failGet {
		return "", false, errors.New("disk gone")
	}
	v, ok := r.stored[key]
	return v, ok, nil
}

func (r *recordingSlot) Set(key, value string) error {
	r.sets = append(r.sets, [2]string{key, value})
	if r.failSet {
		return errors.New("read-only")
	}
	r.stored[key] = value
	return nil
}

type rootAttr struct {
	value Theme
	calls int
}

func (r *rootAttr) SetTheme(t Theme) {
	r.value = t
	r.calls++
}

func quiet() *log.Logger {
	return log.New(io.Discard)
}

func TestInit_DefaultsToLight(t *testing.T) {
	slot := newRecordingSlot()
	root := &rootAttr{}
	s := New(slot, root, quiet())

	s.Init()

	assert.Equal(t, Light, s.Get())
	assert.Equal(t, []string{"theme"}, slot.gets)
	assert.Equal(t, Light, root.value)
}

func TestInit_LoadsStoredTheme(t *testing.T) {
	slot := newRecordingSlot()
	slot.stored["theme"] = "dark"
	root := &rootAttr{}
	s := New(slot, root, quiet())

	s.Init()

	assert.Equal(t, Dark, s.Get())
	assert.Equal(t, Dark, root.value)
}

func TestInit_StoredGarbageKeepsLight(t *testing.T) {
	slot := newRecordingSlot()
	slot.stored["theme"] = "solarized"
	s := New(slot, nil, quiet())

	s.Init()

	assert.Equal(t, Light, s.Get())
}

func TestInit_ReadErrorFallsBackToLight(t *testing.T) {
	slot := newRecordingSlot()
	slot.failGet = true
	s := New(slot, nil, quiet())

	s.Init()

	assert.Equal(t, Light, s.Get())
}

func TestSet_PersistsAndApplies(t *testing.T) {
	slot := newRecordingSlot()
	root := &rootAttr{}
	s := New(slot, root, quiet())

	s.Set("dark")

	assert.Equal(t, Dark, s.Get())
	assert.Equal(t, [][2]string{{"theme", "dark"}}, slot.sets)
	assert.Equal(t, Dark, root.value)
}

func TestSet_RejectsInvalid(t *testing.T) {
	slot := newRecordingSlot()
	root := &rootAttr{}
	s := New(slot, root, quiet())

	s.Set("light")
	s.Set("auto")
	s.Set("invalid")
	s.Set("")

	assert.Equal(t, Light, s.Get())
	assert.Equal(t, Light, root.value)
	assert.Len(t, slot.sets, 1)
}

func TestSet_WriteFailureStillApplies(t *testing.T) {
	slot := newRecordingSlot()
	slot.failSet = true
	root := &rootAttr{}
	s := New(slot, root, quiet())

	s.Set("dark")

	assert.Equal(t, Dark, s.Get())
	assert.Equal(t, Dark, root.value)
}

func TestToggle_Alternates(t *testing.T) {
	for _, start := range []Theme{Light, Dark} {
		s := New(newRecordingSlot(), nil, quiet())
		s.Set(string(start))

		want := start
		for range 4 {
			if want == Light {
				want = Dark
			} else {
				want = Light
			}
			assert.Equal(t, want, s.Toggle())
			assert.Equal(t, want, s.Get())
		}
	}
}

func TestToggle_Persists(t *testing.T) {
	slot := newRecordingSlot()
	s := New(slot, nil, quiet())
	s.Init()

	s.Toggle()

	v, ok, err := slot.Get(Key)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestSetRoot_AppliesCurrent(t *testing.T) {
	s := New(newRecordingSlot(), nil, quiet())
	s.Set("dark")
	root := &rootAttr{}

	s.SetRoot(root)

	assert.Equal(t, Dark, root.value)
	assert.Equal(t, 1, root.calls)
}
