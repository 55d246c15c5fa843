package http

import (
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// swaggerDoc feeds the API description to the swag registry read by the Swagger UI.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var registerDocOnce sync.Once

// SwaggerHandler serves the Swagger UI for doc. The document is registered with swag
// on first use; the registry accepts a name only once per process.
func SwaggerHandler(doc *openapi3.T) (echo.HandlerFunc, error) {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(raw)})
	})
	return echoSwagger.WrapHandler, nil
}
