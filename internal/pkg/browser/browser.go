//go:build js && wasm

// Package browser binds the widgets to window.localStorage and the page
// document when compiled to WebAssembly.
package browser

import (
	"context"
	"fmt"
	"syscall/js"

	"github.com/ManuelReschke/visitas/internal/pkg/counter"
	"github.com/ManuelReschke/visitas/internal/pkg/dom"
)

// LocalStorage is the origin scoped persistent store of the browser.
type LocalStorage struct{}

// catch turns a thrown JavaScript exception into an error. Accessing
// localStorage throws when storage is disabled, setItem when the quota
// is exceeded.
func catch(err *error) {
	if r := recover(); r != nil {
		if jsErr, ok := r.(js.Error); ok {
			*err = fmt.Errorf("localStorage: %s", jsErr.Error())
			return
		}
		*err = fmt.Errorf("localStorage: %v", r)
	}
}

// storage reads window.localStorage through Reflect.get: a throwing
// property getter only becomes a recoverable js.Error inside Call.
func storage() (js.Value, error) {
	ls := js.Global().Get("Reflect").Call("get", js.Global(), "localStorage")
	if ls.IsUndefined() || ls.IsNull() {
		return js.Value{}, fmt.Errorf("localStorage unavailable")
	}
	return ls, nil
}

func (LocalStorage) Get(_ context.Context, key string) (value string, err error) {
	defer catch(&err)
	ls, err := storage()
	if err != nil {
		return "", err
	}
	item := ls.Call("getItem", key)
	if item.IsNull() {
		return "", counter.ErrNotFound
	}
	return item.String(), nil
}

func (LocalStorage) Set(_ context.Context, key, value string) (err error) {
	defer catch(&err)
	ls, err := storage()
	if err != nil {
		return err
	}
	ls.Call("setItem", key, value)
	return nil
}

func document() (js.Value, bool) {
	doc := js.Global().Get("document")
	return doc, doc.Truthy()
}

// PageLocale returns the data-locale attribute of the root element, or def
// when there is no document or no attribute.
func PageLocale(def string) string {
	doc, ok := document()
	if !ok {
		return def
	}
	root := doc.Get("documentElement")
	if !root.Truthy() {
		return def
	}
	if v := root.Call("getAttribute", "data-locale"); v.Truthy() {
		return v.String()
	}
	return def
}

// Document looks elements up with document.getElementById.
type Document struct{}

func (Document) ElementByID(id string) (dom.Element, bool) {
	doc, ok := document()
	if !ok {
		return nil, false
	}
	el := doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, false
	}
	return element{v: el}, true
}

type element struct {
	v js.Value
}

func (e element) SetText(text string) {
	e.v.Set("textContent", text)
}

func (e element) Text() string {
	return e.v.Get("textContent").String()
}
