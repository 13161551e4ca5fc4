package math3d

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestVec4Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec4
		want Vec4
	}{
		{"unit w", V4(1, 2, 3, 1), V4(1, 2, 3, 1)},
		{"w two", V4(1, 2, 3, 2), V4(0.5, 1, 1.5, 1)},
		{"negative w", V4(1, -1, 4, -2), V4(-0.5, 0.5, -2, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := tc.in
			v.Normalize()
			if diff := cmp.Diff(tc.want, v, approx); diff != "" {
				t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
			}
			if v.W != 1 {
				t.Errorf("W after Normalize = %v, want 1", v.W)
			}
		})
	}
}

func TestVec4NormalizeZeroW(t *testing.T) {
	v := V4(1, 0, -1, 0)
	v.Normalize()
	if !math.IsInf(v.X, 1) || !math.IsNaN(v.Y) || !math.IsInf(v.Z, -1) {
		t.Errorf("Normalize with w=0 = %v, want +Inf, NaN, -Inf", v)
	}
}

func TestVec4FromVec3(t *testing.T) {
	v := V4FromV3(V3(1, 2, 3), 1)
	if v != V4(1, 2, 3, 1) {
		t.Errorf("V4FromV3 = %v", v)
	}
	if v.Vec3() != V3(1, 2, 3) {
		t.Errorf("Vec3() = %v", v.Vec3())
	}
}

func TestVec3Cross(t *testing.T) {
	got := V3(1, 0, 0).Cross(V3(0, 1, 0))
	if got != V3(0, 0, 1) {
		t.Errorf("x × y = %v, want z", got)
	}
}

func TestMat4MulVec4(t *testing.T) {
	m := Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	got := m.MulVec4(V4(1, 0, -1, 2))
	want := V4(1-3+8, 5-7+16, 9-11+24, 13-15+32)
	if got != want {
		t.Errorf("MulVec4 = %v, want %v", got, want)
	}
}

func TestFrustumFixedProjection(t *testing.T) {
	got := Frustum(-1, 1, -1, 1, 1, 2)
	want := Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 3, -4,
		0, 0, 1, 0,
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("Frustum mismatch (-want +got):\n%s", diff)
	}
}

func TestFrustumOpticalAxis(t *testing.T) {
	proj := Frustum(-1, 1, -1, 1, 1, 2)

	tests := []struct {
		name  string
		z     float64
		depth float64
	}{
		{"near plane", 1, -1},
		{"far plane", 2, 1},
		{"midway", 1.5, 1.0 / 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := proj.Project(V3(0, 0, tc.z))
			p.Normalize()
			if math.Abs(p.X) > 1e-9 || math.Abs(p.Y) > 1e-9 {
				t.Errorf("axis point projected off-axis: %v", p)
			}
			if math.Abs(p.Z-tc.depth) > 1e-9 {
				t.Errorf("depth = %v, want %v", p.Z, tc.depth)
			}
		})
	}
}

func TestFrustumOffCenter(t *testing.T) {
	// left=-1 right=3 top=-1 bottom=3 near=1 far=10
	proj := Frustum(-1, 3, -1, 3, 1, 10)
	const z = 5.0

	tests := []struct {
		name   string
		p      Vec3
		wantXY [2]float64
	}{
		{"right bottom corner", V3(3*z, 3*z, z), [2]float64{1, 1}},
		{"left top corner", V3(-1*z, -1*z, z), [2]float64{-1, -1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := proj.Project(tc.p)
			p.Normalize()
			got := [2]float64{p.X, p.Y}
			if diff := cmp.Diff(tc.wantXY, got, approx); diff != "" {
				t.Errorf("NDC mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
