package http

import (
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

var (
	registerDocOnce sync.Once
	registerDocErr  error
)

// openAPIDoc serves the API document to the swagger UI.
type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string {
	return d.json
}

// registerSwaggerDoc makes the document the default swag instance. swag
// panics on a second registration, so it happens once per process.
func registerSwaggerDoc(swagger *openapi3.T) error {
	registerDocOnce.Do(func() {
		data, err := swagger.MarshalJSON()
		if err != nil {
			registerDocErr = err
			return
		}
		swag.Register(swag.Name, openAPIDoc{json: string(data)})
	})
	return registerDocErr
}
