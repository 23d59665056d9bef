// Package choreo runs tengo choreography scripts that drive the demo
// subject and fire camera events on a timeline. A script defines
//
//	update(cam, t, dt)
//
// which is called once per tick with the elapsed time and the frame delta;
// cam exposes the hook functions below.
package choreo

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Hooks are the Go-side effects a script can trigger. Nil hooks are no-ops.
type Hooks struct {
	SetPosition func(x, y, z float64)
	SetYaw      func(yaw float64)
	Look        func(dx, dy float64)
	NextView    func()
	Reset       func()
	EnterZone   func(id string)
	ExitZone    func(id string)
}

const dispatchScript = `
update(__cam, __t, __dt)
`

// Runtime is one compiled choreography script, re-run every tick with fresh
// time globals.
type Runtime struct {
	compiled *tengo.Compiled
	cam      *tengo.ImmutableMap
}

// New compiles the script source once; Tick re-runs it cheaply.
func New(src []byte, hooks Hooks) (*Runtime, error) {
	script := tengo.NewScript(append(append([]byte{}, src...), dispatchScript...))
	_ = script.Add("__cam", map[string]any{})
	_ = script.Add("__t", 0.0)
	_ = script.Add("__dt", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("choreo: compile: %w", err)
	}
	return &Runtime{compiled: compiled, cam: buildCam(hooks)}, nil
}

// Tick runs the script's update for this frame.
func (r *Runtime) Tick(t, dt float64) error {
	if err := r.compiled.Set("__cam", r.cam); err != nil {
		return err
	}
	if err := r.compiled.Set("__t", t); err != nil {
		return err
	}
	if err := r.compiled.Set("__dt", dt); err != nil {
		return err
	}
	if err := r.compiled.Run(); err != nil {
		return fmt.Errorf("choreo: update: %w", err)
	}
	return nil
}

func buildCam(hooks Hooks) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["set_position"] = &tengo.UserFunction{Name: "set_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if hooks.SetPosition == nil || len(args) < 3 {
			return tengo.FalseValue, nil
		}
		x, _ := tengo.ToFloat64(args[0])
		y, _ := tengo.ToFloat64(args[1])
		z, _ := tengo.ToFloat64(args[2])
		hooks.SetPosition(x, y, z)
		return tengo.TrueValue, nil
	}}

	values["set_yaw"] = &tengo.UserFunction{Name: "set_yaw", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if hooks.SetYaw == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		yaw, _ := tengo.ToFloat64(args[0])
		hooks.SetYaw(yaw)
		return tengo.TrueValue, nil
	}}

	values["look"] = &tengo.UserFunction{Name: "look", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if hooks.Look == nil || len(args) < 2 {
			return tengo.FalseValue, nil
		}
		dx, _ := tengo.ToFloat64(args[0])
		dy, _ := tengo.ToFloat64(args[1])
		hooks.Look(dx, dy)
		return tengo.TrueValue, nil
	}}

	values["next_view"] = &tengo.UserFunction{Name: "next_view", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if hooks.NextView == nil {
			return tengo.FalseValue, nil
		}
		hooks.NextView()
		return tengo.TrueValue, nil
	}}

	values["reset"] = &tengo.UserFunction{Name: "reset", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if hooks.Reset == nil {
			return tengo.FalseValue, nil
		}
		hooks.Reset()
		return tengo.TrueValue, nil
	}}

	values["enter_zone"] = &tengo.UserFunction{Name: "enter_zone", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if hooks.EnterZone == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		id, _ := tengo.ToString(args[0])
		if id == "" {
			return tengo.FalseValue, nil
		}
		hooks.EnterZone(id)
		return tengo.TrueValue, nil
	}}

	values["exit_zone"] = &tengo.UserFunction{Name: "exit_zone", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if hooks.ExitZone == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		id, _ := tengo.ToString(args[0])
		if id == "" {
			return tengo.FalseValue, nil
		}
		hooks.ExitZone(id)
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}
