//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/drawdeck/drawdeck/internal/editor"
	"github.com/drawdeck/drawdeck/internal/element"
	"github.com/drawdeck/drawdeck/internal/geometry"
	"github.com/drawdeck/drawdeck/internal/history"
	"github.com/drawdeck/drawdeck/internal/session"
	"github.com/drawdeck/drawdeck/internal/typeid"
)

var sess *session.Manager

func main() {
	sess = session.NewManagerWith(
		element.NewSampleDrawing(typeid.NewTabID()),
		history.DefaultLimit,
		nil,
	)

	api := js.Global().Get("Object").New()

	// --- Session (tab) management ---
	api.Set("createDocument", js.FuncOf(createDocument))
	api.Set("closeDocument", js.FuncOf(closeDocument))
	api.Set("switchDocument", js.FuncOf(switchDocument))
	api.Set("renameDocument", js.FuncOf(renameDocument))
	api.Set("listDocuments", js.FuncOf(listDocuments))
	api.Set("activeDocumentId", js.FuncOf(activeDocumentID))

	// --- Pointer / keyboard events ---
	api.Set("pointerDown", js.FuncOf(pointerDown))
	api.Set("pointerMove", js.FuncOf(pointerMove))
	api.Set("pointerUp", js.FuncOf(pointerUp))
	api.Set("keyDown", js.FuncOf(keyDown))

	// --- Viewport ---
	api.Set("setZoom", js.FuncOf(setZoom))
	api.Set("setPan", js.FuncOf(setPan))
	api.Set("setViewportSize", js.FuncOf(setViewportSize))

	// --- Imperative editing surface ---
	api.Set("getElements", js.FuncOf(getElements))
	api.Set("setElements", js.FuncOf(setElements))
	api.Set("getGridVisible", js.FuncOf(getGridVisible))
	api.Set("setGridVisible", js.FuncOf(setGridVisible))
	api.Set("getBackgroundColor", js.FuncOf(getBackgroundColor))
	api.Set("setBackgroundColor", js.FuncOf(setBackgroundColor))
	api.Set("getSelectedElementIds", js.FuncOf(getSelectedElementIDs))
	api.Set("copySelectedElements", js.FuncOf(copySelectedElements))
	api.Set("cutSelectedElements", js.FuncOf(cutSelectedElements))
	api.Set("pasteElements", js.FuncOf(pasteElements))
	api.Set("getCopiedElements", js.FuncOf(getCopiedElements))
	api.Set("setCopiedElements", js.FuncOf(setCopiedElements))
	api.Set("deleteSelected", js.FuncOf(deleteSelected))
	api.Set("undo", js.FuncOf(undo))
	api.Set("dropElement", js.FuncOf(dropElement))
	api.Set("setRegionText", js.FuncOf(setRegionText))
	api.Set("setLabelOffset", js.FuncOf(setLabelOffset))
	api.Set("updateStyles", js.FuncOf(updateStyles))
	api.Set("importDrawing", js.FuncOf(importDrawing))
	api.Set("exportDrawing", js.FuncOf(exportDrawing))

	// --- Geometry queries for the renderer ---
	api.Set("getSelectionBounds", js.FuncOf(getSelectionBounds))
	api.Set("getRotatedCorners", js.FuncOf(getRotatedCorners))
	api.Set("getRotatedBounds", js.FuncOf(getRotatedBounds))
	api.Set("getElementTransform", js.FuncOf(getElementTransform))
	api.Set("getAdjustedTextRegions", js.FuncOf(getAdjustedTextRegions))
	api.Set("getHandlePositions", js.FuncOf(getHandlePositions))
	api.Set("getGestureState", js.FuncOf(getGestureState))
	api.Set("getAreaSelectionRect", js.FuncOf(getAreaSelectionRect))

	js.Global().Set("drawdeckEngine", api)
	js.Global().Set("drawdeckWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func active() *editor.Editor {
	return sess.Active()
}

func toJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(data)
}

// --- Session handlers ---

func createDocument(this js.Value, args []js.Value) interface{} {
	doc := sess.Create()
	return js.ValueOf(doc.ID)
}

func closeDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(false)
	}
	if err := sess.Close(args[0].String()); err != nil {
		// Closing the last document is refused silently.
		return js.ValueOf(false)
	}
	return js.ValueOf(true)
}

func switchDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(false)
	}
	if err := sess.Switch(args[0].String()); err != nil {
		return js.ValueOf(false)
	}
	return js.ValueOf(true)
}

func renameDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf(false)
	}
	return js.ValueOf(sess.Rename(args[0].String(), args[1].String()) == nil)
}

func listDocuments(this js.Value, args []js.Value) interface{} {
	type docInfo struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Active bool   `json:"active"`
	}
	var out []docInfo
	for _, d := range sess.Documents() {
		out = append(out, docInfo{ID: d.ID, Name: d.Name, Active: d.ID == sess.ActiveID()})
	}
	return js.ValueOf(toJSON(out))
}

func activeDocumentID(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(sess.ActiveID())
}

// --- Event handlers ---

func pointerDown(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return nil
	}
	mods := editor.Modifiers{}
	if len(args) > 3 {
		mods.Multi = args[3].Truthy()
	}
	if len(args) > 4 {
		mods.Pan = args[4].Truthy()
	}
	active().PointerDown(args[0].Float(), args[1].Float(), editor.Button(args[2].Int()), mods)
	return nil
}

func pointerMove(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	active().PointerMove(args[0].Float(), args[1].Float())
	return nil
}

func pointerUp(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	active().PointerUp(args[0].Float(), args[1].Float())
	return nil
}

func keyDown(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	active().KeyDown(args[0].String())
	return nil
}

// --- Viewport handlers ---

func setZoom(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	active().SetZoom(args[0].Float())
	return nil
}

func setPan(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	active().SetPan(args[0].Float(), args[1].Float())
	return nil
}

func setViewportSize(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	active().SetViewportSize(args[0].Float(), args[1].Float())
	return nil
}

// --- Editing surface handlers ---

func getElements(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(toJSON(active().Elements()))
}

func setElements(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	var els []*element.DrawElement
	if err := json.Unmarshal([]byte(args[0].String()), &els); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	active().SetElements(els)
	return nil
}

func getGridVisible(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(active().GridVisible())
}

func setGridVisible(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	active().SetGridVisible(args[0].Truthy())
	return nil
}

func getBackgroundColor(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(active().BackgroundColor())
}

func setBackgroundColor(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	active().SetBackgroundColor(args[0].String())
	return nil
}

func getSelectedElementIDs(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(toJSON(active().SelectedElementIDs()))
}

func copySelectedElements(this js.Value, args []js.Value) interface{} {
	active().CopySelected()
	return nil
}

func cutSelectedElements(this js.Value, args []js.Value) interface{} {
	active().CutSelected()
	return nil
}

func pasteElements(this js.Value, args []js.Value) interface{} {
	var target *element.Point
	if len(args) >= 2 {
		target = &element.Point{X: args[0].Float(), Y: args[1].Float()}
	}
	active().Paste(target)
	return nil
}

func getCopiedElements(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(toJSON(active().CopiedElements()))
}

func setCopiedElements(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	var els []*element.DrawElement
	if err := json.Unmarshal([]byte(args[0].String()), &els); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	active().SetCopiedElements(els)
	return nil
}

func deleteSelected(this js.Value, args []js.Value) interface{} {
	active().DeleteSelected()
	return nil
}

func undo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(active().Undo())
}

func dropElement(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return nil
	}
	var item element.ToolboxItem
	if err := json.Unmarshal([]byte(args[0].String()), &item); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	el := active().DropFromToolbox(item, element.Point{X: args[1].Float(), Y: args[2].Float()})
	return js.ValueOf(el.ID)
}

func setRegionText(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return nil
	}
	active().SetRegionText(args[0].String(), args[1].String(), args[2].String())
	return nil
}

func setLabelOffset(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return nil
	}
	active().SetLabelOffset(args[0].String(), element.Offset{DX: args[1].Float(), DY: args[2].Float()})
	return nil
}

func updateStyles(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(args[0].String()), &ids); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	var style *element.Style
	if s := args[1].String(); s != "" && s != "null" {
		style = &element.Style{}
		if err := json.Unmarshal([]byte(s), style); err != nil {
			return js.ValueOf(map[string]interface{}{"error": err.Error()})
		}
	}
	active().UpdateStyles(ids, style)
	return nil
}

func importDrawing(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	els := element.ImportDrawing([]byte(args[0].String()))
	active().SetElements(els)
	return nil
}

func exportDrawing(this js.Value, args []js.Value) interface{} {
	data, err := element.ExportDrawing(active().Elements())
	if err != nil {
		return js.ValueOf("{\"elements\":[]}")
	}
	return js.ValueOf(string(data))
}

// --- Geometry queries ---

func getSelectionBounds(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(toJSON(active().SelectionBounds()))
}

func getRotatedCorners(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("null")
	}
	for _, el := range active().Elements() {
		if el.ID == args[0].String() {
			return js.ValueOf(toJSON(geometry.RotatedCorners(el)))
		}
	}
	return js.ValueOf("null")
}

func getRotatedBounds(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("null")
	}
	for _, el := range active().Elements() {
		if el.ID == args[0].String() {
			return js.ValueOf(toJSON(geometry.RotatedBounds(el)))
		}
	}
	return js.ValueOf("null")
}

// getElementTransform hands the renderer the canvas transform (setTransform
// order) that applies the element's rotation and mirror reflection.
func getElementTransform(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("null")
	}
	for _, el := range active().Elements() {
		if el.ID == args[0].String() {
			return js.ValueOf(toJSON(geometry.ElementTransform(el).ToSlice()))
		}
	}
	return js.ValueOf("null")
}

func getAdjustedTextRegions(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("null")
	}
	return js.ValueOf(toJSON(active().AdjustedTextRegions(args[0].String())))
}

func getHandlePositions(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("null")
	}
	for _, el := range active().Elements() {
		if el.ID == args[0].String() {
			return js.ValueOf(toJSON(editor.HandlePositions(el)))
		}
	}
	return js.ValueOf("null")
}

func getGestureState(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(string(active().GestureState()))
}

func getAreaSelectionRect(this js.Value, args []js.Value) interface{} {
	rect, ok := active().AreaSelectionRect()
	if !ok {
		return js.ValueOf("null")
	}
	return js.ValueOf(toJSON(rect))
}
