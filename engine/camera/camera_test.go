package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-cam/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVec3(t *testing.T, want, got mgl32.Vec3, delta float64, msgAndArgs ...any) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, want[i], got[i], delta, msgAndArgs...)
	}
}

func newFlyCamera(options ...CameraBuilderOption) Camera {
	base := []CameraBuilderOption{
		WithMode(ModeFly),
		WithPosition(mgl32.Vec3{0, 0, 5}),
		WithTarget(mgl32.Vec3{0, 0, 0}),
	}
	return NewCamera(append(base, options...)...)
}

func newOrbitCamera(options ...CameraBuilderOption) Camera {
	base := []CameraBuilderOption{
		WithMode(ModeOrbit),
		WithPosition(mgl32.Vec3{0, 0, 5}),
		WithTarget(mgl32.Vec3{0, 0, 0}),
	}
	return NewCamera(append(base, options...)...)
}

func converge(cam Camera, dt float32, frames int) {
	for range frames {
		cam.Update(dt)
	}
}

func TestNewCameraDefaults(t *testing.T) {
	cam := NewCamera()
	assert.Equal(t, ModeFly, cam.Mode())
	assert.Equal(t, float32(0.125), cam.MoveSpeed())
	assert.Equal(t, float32(0.006), cam.PanSpeed())
	assert.Equal(t, float32(0.25), cam.ZoomSpeed())
	assert.Equal(t, float32(0.005), cam.FpsRotationSpeed())
	assert.Equal(t, float32(0.015), cam.TbRotationSpeed())
	assert.Equal(t, float32(0.25), cam.MovementSmoothing())
	assert.Equal(t, float32(0.3), cam.RotationSmoothing())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cam.WorldUp())
	assert.Equal(t, float32(1), cam.MovementSpeedMod())
	assert.False(t, cam.EnableAllControls())

	// (1, 0, 0) looking at the origin
	assertVec3(t, mgl32.Vec3{-1, 0, 0}, cam.Current().Forward(), 1e-5)
	assert.InDelta(t, 1, cam.CurrentTargetDistance(), 1e-6)
	assertVec3(t, mgl32.Vec3{}, cam.Pivot(), 1e-5)
}

func TestViewIsInverseOfModel(t *testing.T) {
	cam := newFlyCamera()
	cam.RotateH(40)
	cam.MoveX(3)
	cam.Update(0.05)

	id := cam.ViewMatrix().Mul4(cam.ModelMatrix())
	assert.True(t, id.ApproxEqualThreshold(mgl32.Ident4(), 1e-5), "view*model = %v", id)
	assert.Equal(t, cam.Current().WorldMatrix(), cam.ModelMatrix())
}

func TestRotationSpeedFollowsMode(t *testing.T) {
	cam := newFlyCamera()
	cam.RotateH(10)
	cam.RotateV(-4)
	assert.InDelta(t, 10*0.005, cam.RotationInput().X(), 1e-7)
	assert.InDelta(t, -4*0.005, cam.RotationInput().Y(), 1e-7)

	cam.Update(0.016)
	cam.SetMode(ModeOrbit)
	cam.RotateH(10)
	assert.InDelta(t, 10*0.015, cam.RotationInput().X(), 1e-7)
}

func TestModeGating(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		all     bool
		call    func(Camera)
		changed bool
	}{
		{"moveX orbit", ModeOrbit, false, func(c Camera) { c.MoveX(1) }, false},
		{"moveX orbit all controls", ModeOrbit, true, func(c Camera) { c.MoveX(1) }, true},
		{"moveY fly", ModeFly, false, func(c Camera) { c.MoveY(1) }, true},
		{"moveZ orbit", ModeOrbit, false, func(c Camera) { c.MoveZ(1) }, false},
		{"panH fly", ModeFly, false, func(c Camera) { c.PanH(1) }, false},
		{"panV fly all controls", ModeFly, true, func(c Camera) { c.PanV(1) }, true},
		{"panH orbit", ModeOrbit, false, func(c Camera) { c.PanH(1) }, true},
		{"zoom fly", ModeFly, false, func(c Camera) { c.Zoom(1) }, false},
		{"zoom orbit", ModeOrbit, false, func(c Camera) { c.Zoom(1) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(WithMode(tt.mode), WithAllControls(tt.all), WithPosition(mgl32.Vec3{0, 0, 5}))
			tt.call(cam)
			if tt.changed {
				assert.NotEqual(t, mgl32.Vec3{}, cam.MovementInput())
			} else {
				assert.Equal(t, mgl32.Vec3{}, cam.MovementInput())
			}
		})
	}
}

func TestInputAccumulationIsCommutative(t *testing.T) {
	a := newFlyCamera()
	a.MoveX(1)
	a.MoveZ(-2)
	a.MoveX(0.5)

	b := newFlyCamera()
	b.MoveX(0.5)
	b.MoveZ(-2)
	b.MoveX(1)

	assert.Equal(t, a.MovementInput(), b.MovementInput())
	assertVec3(t, mgl32.Vec3{1.5 * 0.125, 0, -2 * 0.125}, a.MovementInput(), 1e-7)
}

func TestZoomSubtractsFromZ(t *testing.T) {
	cam := newOrbitCamera()
	cam.Zoom(2)
	assert.InDelta(t, -2*0.25, cam.MovementInput().Z(), 1e-7)
}

func TestUpdateResetsAccumulators(t *testing.T) {
	cam := newFlyCamera()
	cam.MoveX(1)
	cam.RotateH(1)
	cam.ScaleMovementSpeedMod(2)
	cam.ScaleMovementSpeedMod(0.5)
	cam.ScaleMovementSpeedMod(2)
	assert.Equal(t, float32(2), cam.MovementSpeedMod())

	cam.Update(0.016)

	assert.Equal(t, mgl32.Vec3{}, cam.MovementInput())
	assert.Equal(t, mgl32.Vec2{}, cam.RotationInput())
	assert.Equal(t, float32(1), cam.MovementSpeedMod())
}

func TestFlyMoveForwardScenario(t *testing.T) {
	cam := newFlyCamera()
	startOrientation := cam.Current().Orientation

	cam.MoveZ(-1)
	converge(cam, 1.0, 50)

	assertVec3(t, mgl32.Vec3{0, 0, 5 - cam.MoveSpeed()}, cam.Current().Position, 1e-5)
	assert.True(t, cam.Current().Orientation.ApproxEqualThreshold(startOrientation, 1e-5))
}

func TestFlyMovementIsLocal(t *testing.T) {
	// looking down -X, forward movement goes along -X
	cam := NewCamera(WithMode(ModeFly), WithPosition(mgl32.Vec3{5, 0, 0}), WithTarget(mgl32.Vec3{}))
	cam.MoveZ(-8)
	converge(cam, 1.0, 5)
	assertVec3(t, mgl32.Vec3{4, 0, 0}, cam.Current().Position, 1e-5)
}

func TestFlySpeedModifier(t *testing.T) {
	cam := newFlyCamera()
	cam.ScaleMovementSpeedMod(2)
	cam.MoveZ(-1)
	converge(cam, 1.0, 5)
	assertVec3(t, mgl32.Vec3{0, 0, 5 - 2*cam.MoveSpeed()}, cam.Desired().Position, 1e-5)
}

func TestFlyRotationSigns(t *testing.T) {
	cam := newFlyCamera()
	// negative horizontal input turns right, toward +X
	cam.RotateH(-float32(math.Pi/2) / cam.FpsRotationSpeed())
	converge(cam, 1.0, 3)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, cam.Current().Forward(), 1e-4)

	cam = newFlyCamera()
	cam.RotateV(float32(math.Pi/4) / cam.FpsRotationSpeed())
	converge(cam, 1.0, 3)
	assert.Greater(t, cam.Current().Forward().Y(), float32(0.7))
	// yaw about world up and pitch about local X never introduce roll
	cam.RotateH(300)
	converge(cam, 1.0, 3)
	assert.InDelta(t, 0, cam.Current().Right().Y(), 1e-4)
}

func TestNoInputConvergesMonotonically(t *testing.T) {
	for _, mode := range []Mode{ModeFly, ModeOrbit} {
		t.Run(mode.String(), func(t *testing.T) {
			cam := NewCamera(WithMode(mode), WithPosition(mgl32.Vec3{0, 0, 5}))
			cam.SetPosition(mgl32.Vec3{4, 2, 9}, true)
			cam.SetTarget(mgl32.Vec3{1, 1, 1}, true)
			desired := cam.Desired()
			desiredPivot := desired.PointAhead(cam.DesiredTargetDistance())

			// fly smooths the position itself, orbit smooths the pivot
			gapOf := func() float32 {
				if mode == ModeOrbit {
					return cam.Pivot().Sub(desiredPivot).Len()
				}
				return cam.Current().Position.Sub(desired.Position).Len()
			}
			angleOf := func() float32 {
				d := cam.Current().Orientation.Dot(desired.Orientation)
				return 1 - float32(math.Abs(float64(d)))
			}

			gap, angle := gapOf(), angleOf()
			for range 300 {
				cam.Update(0.016)
				nextGap, nextAngle := gapOf(), angleOf()
				assert.LessOrEqual(t, nextGap, gap+1e-5)
				assert.LessOrEqual(t, nextAngle, angle+1e-6)
				gap, angle = nextGap, nextAngle
			}
			assert.True(t, cam.Desired().ApproxEqual(desired, 1e-5), "desired must not move without input")
			assert.True(t, cam.Current().ApproxEqual(desired, 1e-3), "current %v desired %v", cam.Current(), desired)

			// fixed point
			before := cam.Current()
			cam.Update(0.016)
			assert.True(t, cam.Current().ApproxEqual(before, 1e-4))
		})
	}
}

func TestFrameRateIndependence(t *testing.T) {
	for _, mode := range []Mode{ModeFly, ModeOrbit} {
		t.Run(mode.String(), func(t *testing.T) {
			setup := func() Camera {
				cam := NewCamera(WithMode(mode), WithPosition(mgl32.Vec3{0, 0, 5}))
				cam.SetPosition(mgl32.Vec3{3, -1, 8}, true)
				cam.SetTarget(mgl32.Vec3{0, 2, 0}, true)
				return cam
			}

			single := setup()
			single.Update(1.0)

			stepped := setup()
			converge(stepped, 0.01, 100)

			assert.True(t, single.Current().ApproxEqual(stepped.Current(), 1e-3),
				"single %v stepped %v", single.Current(), stepped.Current())
			assert.InDelta(t, single.CurrentTargetDistance(), stepped.CurrentTargetDistance(), 1e-3)
		})
	}
}

func TestDeltaTimeIsClamped(t *testing.T) {
	cam := newFlyCamera()
	cam.SetPosition(mgl32.Vec3{0, 0, 10}, true)

	cam.Update(0)
	pos := cam.Current().Position
	assert.False(t, math.IsNaN(float64(pos.Z())))
	assert.GreaterOrEqual(t, pos.Z(), float32(5))

	// a huge dt must not overshoot past the desired position
	cam.Update(1000)
	assertVec3(t, mgl32.Vec3{0, 0, 10}, cam.Current().Position, 1e-5)
}

func TestOrbitHalfTurnScenario(t *testing.T) {
	cam := newOrbitCamera()
	assert.InDelta(t, 5, cam.DesiredTargetDistance(), 1e-6)

	cam.RotateH(float32(math.Pi) / cam.TbRotationSpeed())
	for range 200 {
		cam.Update(0.1)
		assertVec3(t, mgl32.Vec3{}, cam.Pivot(), 1e-3, "pivot drifted during interpolation")
	}

	assertVec3(t, mgl32.Vec3{0, 0, -5}, cam.Current().Position, 1e-3)
	assert.InDelta(t, 5, cam.Current().Position.Len(), 1e-3)
	assertVec3(t, mgl32.Vec3{0, 0, 1}, cam.Current().Forward(), 1e-3)
}

func TestOrbitPivotInvariance(t *testing.T) {
	target := mgl32.Vec3{1, -2, 0.5}
	cam := NewCamera(WithMode(ModeOrbit), WithPosition(mgl32.Vec3{4, 3, 6}), WithTarget(target))

	inputs := [][2]float32{{37, -21}, {-80, 12}, {5, 44}, {120, -3}}
	for _, in := range inputs {
		cam.RotateH(in[0])
		cam.RotateV(in[1])
		converge(cam, 0.05, 5)
	}
	converge(cam, 0.05, 300)

	assertVec3(t, target, cam.Pivot(), 1e-3)
	assert.InDelta(t, target.Sub(mgl32.Vec3{4, 3, 6}).Len(), cam.CurrentTargetDistance(), 1e-3)
}

func TestOrbitZoomKeepsPivot(t *testing.T) {
	cam := newOrbitCamera()
	cam.Zoom(4) // 4 * 0.25 = 1 unit closer
	converge(cam, 0.05, 300)

	assert.InDelta(t, 4, cam.CurrentTargetDistance(), 1e-3)
	assertVec3(t, mgl32.Vec3{0, 0, 4}, cam.Current().Position, 1e-3)
	assertVec3(t, mgl32.Vec3{}, cam.Pivot(), 1e-3)
}

func TestOrbitZoomFloor(t *testing.T) {
	cam := newOrbitCamera()
	floor := cam.ZoomFloor()
	assert.InDelta(t, 0.0025, floor, 1e-7)

	for i := range 500 {
		cam.Zoom(float32(i%7) * 3)
		cam.Update(0.016)
		assert.Greater(t, cam.DesiredTargetDistance(), floor)
		assert.Greater(t, cam.CurrentTargetDistance(), floor)
	}

	// a rejected zoom is dropped entirely, not clamped
	before := cam.DesiredTargetDistance()
	pos := cam.Desired().Position
	cam.Zoom(1e6)
	cam.Update(0.016)
	assert.Equal(t, before, cam.DesiredTargetDistance())
	assertVec3(t, pos, cam.Desired().Position, 1e-5)
}

func TestOrbitPanMovesRig(t *testing.T) {
	cam := newOrbitCamera()
	cam.PanH(100) // 100 * 0.006 = 0.6 along local +X (world +X here)
	converge(cam, 0.05, 300)

	assertVec3(t, mgl32.Vec3{0.6, 0, 5}, cam.Current().Position, 1e-3)
	assertVec3(t, mgl32.Vec3{0.6, 0, 0}, cam.Pivot(), 1e-3)
	assert.InDelta(t, 5, cam.CurrentTargetDistance(), 1e-4)
}

func TestSetPositionSnapsUnlessInterpolating(t *testing.T) {
	cam := newFlyCamera()
	cam.SetPosition(mgl32.Vec3{1, 2, 3}, false)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cam.Current().Position)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cam.Desired().Position)

	cam.SetPosition(mgl32.Vec3{7, 7, 7}, true)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cam.Current().Position)
	assert.Equal(t, mgl32.Vec3{7, 7, 7}, cam.Desired().Position)
}

func TestSetTarget(t *testing.T) {
	cam := newOrbitCamera()
	cam.SetTarget(mgl32.Vec3{0, 0, -5}, true)
	assert.InDelta(t, 10, cam.DesiredTargetDistance(), 1e-5)
	assert.InDelta(t, 5, cam.CurrentTargetDistance(), 1e-5)

	cam.SetTarget(mgl32.Vec3{5, 0, 5}, false)
	assert.InDelta(t, 5, cam.CurrentTargetDistance(), 1e-5)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, cam.Current().Forward(), 1e-5)
	assert.True(t, cam.Current().Orientation.ApproxEqualThreshold(cam.Desired().Orientation, 1e-6))
}

func TestSetTargetDegenerateIsNoOp(t *testing.T) {
	cam := newOrbitCamera()
	before := cam.Desired().Orientation

	cam.SetTarget(mgl32.Vec3{0, 0, 5}, false)
	assert.Equal(t, before, cam.Desired().Orientation)
	assert.InDelta(t, 5, cam.DesiredTargetDistance(), 1e-6)
	assert.InDelta(t, 5, cam.CurrentTargetDistance(), 1e-6)

	cam.Update(0.016)
	assert.Greater(t, cam.CurrentTargetDistance(), cam.ZoomFloor())

	// zooming in still works after the rejected target
	cam.Zoom(4)
	cam.Update(1)
	assert.InDelta(t, 4, cam.DesiredTargetDistance(), 1e-5)
}

func TestNewCameraTargetAtPosition(t *testing.T) {
	cam := NewCamera(
		WithMode(ModeOrbit),
		WithPosition(mgl32.Vec3{1, 2, 3}),
		WithTarget(mgl32.Vec3{1, 2, 3}),
	)
	assert.InDelta(t, 1, cam.DesiredTargetDistance(), 1e-6)
	assert.InDelta(t, 1, cam.CurrentTargetDistance(), 1e-6)
	assert.Greater(t, cam.CurrentTargetDistance(), cam.ZoomFloor())
}

func TestSetWorldUpIgnoresZero(t *testing.T) {
	cam := newFlyCamera(WithWorldUp(mgl32.Vec3{}))
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cam.WorldUp())

	cam.SetWorldUp(mgl32.Vec3{})
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cam.WorldUp())

	cam.RotateH(1)
	cam.Update(0.016)
	for _, v := range cam.Current().Position {
		assert.False(t, math.IsNaN(float64(v)))
	}

	cam.SetWorldUp(mgl32.Vec3{0, 0, 2})
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, cam.WorldUp())
}

func TestModeToggleAndParse(t *testing.T) {
	assert.Equal(t, ModeFly, ModeOrbit.Toggle())
	assert.Equal(t, ModeOrbit, ModeFly.Toggle())

	for in, want := range map[string]Mode{"orbit": ModeOrbit, "Trackball": ModeOrbit, "fly": ModeFly, " FPS ": ModeFly} {
		got, err := ParseMode(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseMode("spin")
	assert.Error(t, err)
}

func TestCurrentIsACopy(t *testing.T) {
	cam := newFlyCamera()
	var cur transform.Transform = cam.Current()
	cur.Position = mgl32.Vec3{99, 99, 99}
	assert.NotEqual(t, cur.Position, cam.Current().Position)
}
