//go:build js && wasm

// GoVeil WASM - Browser bindings for hide and unveil.
// Compiled with: GOOS=js GOARCH=wasm go build -o goveil.wasm ./clients/wasm/
package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/xob0t/GoVeil/pkg/cover"
	"github.com/xob0t/GoVeil/pkg/stego"
)

func main() {
	fmt.Println("GoVeil WASM loaded")

	// Register JS-callable functions.
	js.Global().Set("goHideData", js.FuncOf(hideData))
	js.Global().Set("goUnveilData", js.FuncOf(unveilData))
	js.Global().Set("goCapacity", js.FuncOf(capacity))
	js.Global().Set("goCoverImage", js.FuncOf(coverImage))
	js.Global().Set("goVeilReady", js.ValueOf(true))

	// Block forever (WASM must not exit).
	select {}
}

// goHideData(carrierB64, name, secretB64, password, resize, format) - embed
// a secret and return the encoded carrier as base64.
func hideData(this js.Value, args []js.Value) interface{} {
	if len(args) < 6 {
		return js.ValueOf("error: need carrierB64, name, secretB64, password, resize, format")
	}

	carrier, err := base64.StdEncoding.DecodeString(args[0].String())
	if err != nil {
		return js.ValueOf("error: invalid carrier base64: " + err.Error())
	}
	secret, err := base64.StdEncoding.DecodeString(args[2].String())
	if err != nil {
		return js.ValueOf("error: invalid secret base64: " + err.Error())
	}

	out, err := stego.Hide(carrier, args[1].String(), secret, stego.Options{
		Password:    args[3].String(),
		AllowResize: args[4].Bool(),
		Format:      args[5].String(),
	})
	if err != nil {
		return js.ValueOf("error: " + err.Error())
	}

	return js.ValueOf(base64.StdEncoding.EncodeToString(out))
}

// goUnveilData(carrierB64, password) - extract hidden files and return
// JSON [{name, size, data}] with base64 file data.
func unveilData(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("error: need carrierB64, password")
	}

	carrier, err := base64.StdEncoding.DecodeString(args[0].String())
	if err != nil {
		return js.ValueOf("error: invalid carrier base64: " + err.Error())
	}

	files, err := stego.Unveil(carrier, args[1].String())
	if err != nil {
		return js.ValueOf("error: " + err.Error())
	}

	type unveiledFile struct {
		Name string `json:"name"`
		Size int    `json:"size"`
		Data string `json:"data"`
	}
	resp := make([]unveiledFile, 0, len(files))
	for _, f := range files {
		resp = append(resp, unveiledFile{
			Name: f.Name,
			Size: len(f.Data),
			Data: base64.StdEncoding.EncodeToString(f.Data),
		})
	}

	out, err := json.Marshal(resp)
	if err != nil {
		return js.ValueOf("error: encode result: " + err.Error())
	}
	return js.ValueOf(string(out))
}

// goCapacity(width, height, payloadLen, resize) - run the capacity planner
// and return its decision as JSON.
func capacity(this js.Value, args []js.Value) interface{} {
	if len(args) < 4 {
		return js.ValueOf("error: need width, height, payloadLen, resize")
	}

	d := stego.PlanCapacity(args[0].Int(), args[1].Int(), args[2].Int(), args[3].Bool())
	resp := map[string]interface{}{
		"capacity": d.Capacity,
		"required": d.Required,
	}
	switch d.Verdict {
	case stego.Sufficient:
		resp["verdict"] = "sufficient"
	case stego.RequiresResize:
		resp["verdict"] = "requires_resize"
		resp["targetWidth"] = d.TargetWidth
		resp["targetHeight"] = d.TargetHeight
	case stego.Infeasible:
		resp["verdict"] = "infeasible"
	}

	out, _ := json.Marshal(resp)
	return js.ValueOf(string(out))
}

// goCoverImage(width, height, color, payload) - generate a cover PNG and
// return it as base64.
func coverImage(this js.Value, args []js.Value) interface{} {
	if len(args) < 4 {
		return js.ValueOf("error: need width, height, color, payload")
	}

	var buf bytes.Buffer
	cfg := cover.Config{
		Width:   args[0].Int(),
		Height:  args[1].Int(),
		Color:   args[2].String(),
		Payload: args[3].Int(),
	}
	if err := cover.GenerateToWriter(&buf, ".png", cfg); err != nil {
		return js.ValueOf("error: " + err.Error())
	}

	return js.ValueOf(base64.StdEncoding.EncodeToString(buf.Bytes()))
}
