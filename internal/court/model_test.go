package court

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllTypesStableAndComplete(t *testing.T) {
	types := AllTypes()
	assert.Equal(t, []Type{Shezi, Shuangyuan, Meiti, Pending, Social}, types)

	// Mutating the returned slice must not leak into the package.
	types[0] = Social
	assert.Equal(t, Shezi, AllTypes()[0])
}

func TestCodesAreUnique(t *testing.T) {
	seen := make(map[string]Type)
	for _, ct := range AllTypes() {
		info, ok := GetInfo(ct)
		require.True(t, ok)
		require.NotEmpty(t, info.Code)
		if prev, dup := seen[info.Code]; dup {
			t.Fatalf("code %q shared by %s and %s", info.Code, prev, ct)
		}
		seen[info.Code] = ct
	}
}

func TestTypeValid(t *testing.T) {
	assert.True(t, Shezi.Valid())
	assert.True(t, Social.Valid())
	assert.False(t, Type("padel").Valid())
}

func TestTypeNameAndCodeFallThrough(t *testing.T) {
	assert.Equal(t, "美堤網球場", Meiti.Name())
	assert.Equal(t, "m", Meiti.Code())

	unknown := Type("padel")
	assert.Equal(t, "padel", unknown.Name())
	assert.Equal(t, "padel", unknown.Code())
}

func TestBookable(t *testing.T) {
	assert.True(t, Shezi.Bookable())
	assert.True(t, Pending.Bookable())
	assert.False(t, Social.Bookable())
	assert.False(t, Type("padel").Bookable())
}
