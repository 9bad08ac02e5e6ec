//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/shipyard/shipyard/internal/editor"
	"github.com/shipyard/shipyard/internal/engine"
)

var eng *engine.Engine

func main() {
	eng = engine.NewEngine()

	// Create the engine API object
	shipyardEngine := js.Global().Get("Object").New()

	// --- Commands (page → engine) ---
	shipyardEngine.Set("press", js.FuncOf(press))
	shipyardEngine.Set("drag", js.FuncOf(drag))
	shipyardEngine.Set("release", js.FuncOf(release))
	shipyardEngine.Set("key", js.FuncOf(key))
	shipyardEngine.Set("loadSample", js.FuncOf(loadSample))
	shipyardEngine.Set("setSelection", js.FuncOf(setSelection))
	shipyardEngine.Set("setView", js.FuncOf(setView))
	shipyardEngine.Set("pan", js.FuncOf(pan))
	shipyardEngine.Set("zoom", js.FuncOf(zoom))
	shipyardEngine.Set("subscribe", js.FuncOf(subscribe))

	// --- Queries (page ← engine) ---
	shipyardEngine.Set("render", js.FuncOf(render))
	shipyardEngine.Set("hitTest", js.FuncOf(hitTest))
	shipyardEngine.Set("getSelectionBounds", js.FuncOf(getSelectionBounds))
	shipyardEngine.Set("getSelection", js.FuncOf(getSelection))
	shipyardEngine.Set("getState", js.FuncOf(getState))
	shipyardEngine.Set("getView", js.FuncOf(getView))

	// Register on global scope
	js.Global().Set("shipyardEngine", shipyardEngine)

	// Signal that WASM is ready
	js.Global().Set("shipyardWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

// modifiers reads ctrlKey/metaKey, shiftKey and altKey from a DOM event-like object.
func modifiers(v js.Value) editor.Modifiers {
	var mods editor.Modifiers
	if v.Type() != js.TypeObject {
		return mods
	}
	if v.Get("ctrlKey").Truthy() || v.Get("metaKey").Truthy() {
		mods |= editor.ModToggle
	}
	if v.Get("shiftKey").Truthy() {
		mods |= editor.ModCreate
	}
	if v.Get("altKey").Truthy() {
		mods |= editor.ModKeep
	}
	return mods
}

// --- Command Handlers ---

func press(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	var mods editor.Modifiers
	if len(args) > 2 {
		mods = modifiers(args[2])
	}
	eng.Press(args[0].Float(), args[1].Float(), mods)
	return nil
}

func drag(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	eng.Drag(args[0].Float(), args[1].Float())
	return nil
}

func release(this js.Value, args []js.Value) interface{} {
	eng.Release()
	return nil
}

// key takes a KeyboardEvent-like object and reports whether it was bound.
func key(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeObject {
		return js.ValueOf(false)
	}
	k := args[0].Get("key").String()
	runes := []rune(k)
	if len(runes) != 1 {
		return js.ValueOf(false)
	}
	ctrl := args[0].Get("ctrlKey").Truthy() || args[0].Get("metaKey").Truthy()
	return js.ValueOf(eng.KeyPress(runes[0], ctrl))
}

func loadSample(this js.Value, args []js.Value) interface{} {
	eng.LoadSample()
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func setView(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing matrix JSON"})
	}
	var m engine.Matrix2D
	if err := json.Unmarshal([]byte(args[0].String()), &m); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	eng.SetView(m)
	if eng.View() != m {
		return js.ValueOf(map[string]interface{}{"error": "matrix is not invertible"})
	}
	return js.ValueOf(map[string]interface{}{"ok": true})
}

// setSelection takes a JSON array of entity IDs, e.g. from a layers panel.
func setSelection(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing id list JSON"})
	}
	var ids []string
	if err := json.Unmarshal([]byte(args[0].String()), &ids); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	if err := eng.SetSelection(ids); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func pan(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	eng.Pan(args[0].Float(), args[1].Float())
	return nil
}

func zoom(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return nil
	}
	eng.Zoom(args[0].Float(), args[1].Float(), args[2].Float())
	return nil
}

// subscribe calls the given function after every change. It returns an unsubscribe function.
func subscribe(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeFunction {
		return nil
	}
	fn := args[0]
	unsubscribe := eng.Subscribe(func() { fn.Invoke() })

	var cancel js.Func
	cancel = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		unsubscribe()
		cancel.Release()
		return nil
	})
	return cancel
}

// --- Query Handlers ---

func render(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.Render())
}

func hitTest(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("")
	}
	x := args[0].Float()
	y := args[1].Float()
	return js.ValueOf(eng.HitTest(x, y))
}

func getSelectionBounds(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetSelectionBounds())
}

func getSelection(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetSelection())
}

func getState(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.State().String())
}

func getView(this js.Value, args []js.Value) interface{} {
	data, _ := json.Marshal(eng.View().ToSlice())
	return js.ValueOf(string(data))
}
