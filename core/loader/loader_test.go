package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(fiber.Router) error {
	f.loaded = true
	return f.err
}

func TestLoadAll(t *testing.T) {
	app := fiber.New()
	mgr := NewManager()

	on := &fakeFeature{name: "on", enabled: true}
	off := &fakeFeature{name: "off", enabled: false}
	mgr.Register(on)
	mgr.Register(off)

	require.NoError(t, mgr.LoadAll(app))
	assert.True(t, on.loaded)
	assert.False(t, off.loaded)
}

func TestLoadAll_StopsOnError(t *testing.T) {
	app := fiber.New()
	mgr := NewManager()

	broken := &fakeFeature{name: "broken", enabled: true, err: errors.New("boom")}
	after := &fakeFeature{name: "after", enabled: true}
	mgr.Register(broken)
	mgr.Register(after)

	err := mgr.LoadAll(app)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load feature broken")
	assert.False(t, after.loaded)
}
