package sqlstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testDSN string

func (d testDSN) FormatDSN() string { return string(d) }

func TestMustSetupBuildsIsolatedProviders(t *testing.T) {
	a := MustSetup(testDSN("host=localhost dbname=a sslmode=disable"))()
	b := MustSetup(testDSN("host=localhost dbname=b sslmode=disable"))()

	assert.NotSame(t, a, b)

	// each provider carries its own wired stores
	assert.NotNil(t, a.EntryStore())
	assert.NotNil(t, a.MemoryStore())
	assert.NotNil(t, a.UserStore())
	assert.NotNil(t, a.AccessTokenStore())
	assert.NotSame(t, a.EntryStore(), b.EntryStore())
}
