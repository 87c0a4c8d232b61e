// Package web embeds the HTML templates rendered by the handlers and the
// static assets they load.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"
)

//go:embed templates/*.html static/*
var files embed.FS

var funcs = template.FuncMap{
	"formatTime": func(t time.Time) string {
		return t.Format("Jan 2, 2006 15:04")
	},
}

// Templates parses every page and partial into one set. Pages are looked up
// by file name, e.g. "pin.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
}

// Static serves the embedded assets under static/, e.g. the board canvas script.
func Static() http.FileSystem {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
