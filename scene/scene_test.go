package scene

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ikchain/vmath"
)

func TestCreateAndGet(t *testing.T) {
	r := NewRegistry()

	pose := vmath.Pose{Position: vmath.Vec3{X: 1, Y: 2, Z: 3}, Rotation: vmath.QIdentity()}
	h := r.Create("hand", pose)

	n, ok := r.Get(h)
	require.True(t, ok)
	assert.Equal(t, "hand", n.Name)
	assert.Equal(t, pose, n.Pose)
	assert.Equal(t, 1, r.Len())
}

func TestDanglingHandle(t *testing.T) {
	r := NewRegistry()

	h := r.Create("hand", vmath.IdentityPose())
	r.Remove(h)

	_, ok := r.Get(h)
	assert.False(t, ok, "handle must dangle after Remove")

	_, err := r.Pose(h)
	assert.True(t, errors.Is(err, ErrTargetNotFound))
	assert.Equal(t, 0, r.Len())
}

func TestHandleNotRevivedByReuse(t *testing.T) {
	r := NewRegistry()

	old := r.Create("hand", vmath.IdentityPose())
	r.Remove(old)

	// Slot is recycled for a different node
	fresh := r.Create("foot", vmath.IdentityPose())

	_, ok := r.Get(old)
	assert.False(t, ok, "stale handle must not resolve to the recycled slot")

	n, ok := r.Get(fresh)
	require.True(t, ok)
	assert.Equal(t, "foot", n.Name)
}

func TestNilHandle(t *testing.T) {
	r := NewRegistry()
	r.Create("hand", vmath.IdentityPose())

	assert.True(t, NilHandle.IsNil())

	_, ok := r.Get(NilHandle)
	assert.False(t, ok)

	_, err := r.Pose(NilHandle)
	assert.True(t, errors.Is(err, ErrTargetNotFound))
}

func TestFindByName(t *testing.T) {
	r := NewRegistry()
	first := r.Create("elbow", vmath.IdentityPose())
	r.Create("elbow", vmath.IdentityPose())

	h, ok := r.FindByName("elbow")
	require.True(t, ok)
	assert.Equal(t, first, h, "creation order decides ties")

	_, ok = r.FindByName("knee")
	assert.False(t, ok)

	_, ok = r.FindByName("")
	assert.False(t, ok)
}

func TestFindByNameSkipsDead(t *testing.T) {
	r := NewRegistry()
	a := r.Create("wrist", vmath.IdentityPose())
	b := r.Create("wrist", vmath.IdentityPose())
	r.Remove(a)

	h, ok := r.FindByName("wrist")
	require.True(t, ok)
	assert.Equal(t, b, h)
}

func TestSetPose(t *testing.T) {
	r := NewRegistry()
	h := r.Create("hand", vmath.IdentityPose())

	want := vmath.Pose{Position: vmath.Vec3{Y: 4}, Rotation: vmath.QIdentity()}
	r.SetPose(h, want)

	got, err := r.Pose(h)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// No-op on dangling handle
	r.Remove(h)
	r.SetPose(h, vmath.IdentityPose())
}
