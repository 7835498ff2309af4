package main

import (
	"encoding/json"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"github.com/swaggo/swag"
)

var (
	swaggerDoc      = &openAPIDoc{}
	swaggerRegister sync.Once
)

// openAPIDoc exposes the huma OpenAPI document to swag, which serves it as
// /swagger/doc.json. swag allows one registration per name, so the document
// holder is shared and points at the most recently built API.
type openAPIDoc struct {
	mu  sync.RWMutex
	api huma.API
}

func registerSwaggerDoc(api huma.API) {
	swaggerDoc.mu.Lock()
	swaggerDoc.api = api
	swaggerDoc.mu.Unlock()

	swaggerRegister.Do(func() {
		swag.Register(swag.Name, swaggerDoc)
	})
}

// ReadDoc implements swag.Swagger
func (d *openAPIDoc) ReadDoc() string {
	d.mu.RLock()
	api := d.api
	d.mu.RUnlock()

	if api == nil {
		return "{}"
	}

	// Swagger UI handles 3.0 documents more reliably than 3.1
	doc, err := api.OpenAPI().Downgrade()
	if err != nil {
		doc, err = json.Marshal(api.OpenAPI())
		if err != nil {
			return "{}"
		}
	}
	return string(doc)
}
