package vmath

// Pose is a world-space position + rotation pair, the unit the chain
// solver and blender exchange per segment
type Pose struct {
	Position Vec3
	Rotation Quat
}

// IdentityPose returns the origin pose with no rotation
func IdentityPose() Pose {
	return Pose{Rotation: QIdentity()}
}

// PoseNearlyEqual reports whether both position and rotation match within eps
func PoseNearlyEqual(a, b Pose, eps float64) bool {
	return V3NearlyEqual(a.Position, b.Position, eps) &&
		QNearlyEqual(a.Rotation, b.Rotation, eps)
}
