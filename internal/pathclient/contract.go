package pathclient

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var contractDocument []byte

// Contract validates upstream response bodies against the OpenAPI description
// of the path-finding server.
type Contract struct {
	doc *openapi3.T
}

// LoadContract parses and validates the embedded OpenAPI document.
func LoadContract(ctx context.Context) (*Contract, error) {
	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: false,
	}
	doc, err := loader.LoadFromData(contractDocument)
	if err != nil {
		return nil, fmt.Errorf("load contract: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("validate contract: %w", err)
	}
	return &Contract{doc: doc}, nil
}

// ValidateResponse checks a 200 JSON body returned by the GET operation at path.
func (c *Contract) ValidateResponse(path string, body []byte) error {
	if c == nil || c.doc == nil {
		return nil
	}
	schema, err := c.responseSchema(path)
	if err != nil {
		return err
	}

	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	if err := schema.VisitJSON(value); err != nil {
		return fmt.Errorf("response for %s violates contract: %w", path, err)
	}
	return nil
}

func (c *Contract) responseSchema(path string) (*openapi3.Schema, error) {
	if c.doc.Paths == nil {
		return nil, errors.New("contract has no paths")
	}
	item := c.doc.Paths.Value(path)
	if item == nil || item.Get == nil {
		return nil, fmt.Errorf("contract does not describe GET %s", path)
	}
	ref := item.Get.Responses.Status(http.StatusOK)
	if ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("contract has no 200 response for %s", path)
	}
	media := ref.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil, fmt.Errorf("contract has no JSON schema for %s", path)
	}
	return media.Schema.Value, nil
}
