package storyclient

import (
	"fmt"

	"github.com/soldracula/dracula/pkg/solanarpc"
)

type ItemType string

const ItemTypeItem ItemType = "item"

// Display is the human readable part of a story item.
type Display struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	HelpText    string `json:"helpText"`
	Img         string `json:"img"`
}

// Item is one narrative entry of an asset story.
type Item struct {
	Type    ItemType       `json:"type"`
	Display Display        `json:"display"`
	Data    map[string]any `json:"data"`
}

// WriterMetadata registers the service as a story writer.
type WriterMetadata struct {
	WriterKey           string `json:"writerKey"`
	CDN                 string `json:"cdn"`
	Label               string `json:"label"`
	Description         string `json:"description"`
	URL                 string `json:"url"`
	Logo                string `json:"logo"`
	BaseURL             string `json:"baseUrl"`
	Metadata            string `json:"metadata"`
	HasExtendedMetadata bool   `json:"hasExtendedMetadata"`
	SystemValidated     bool   `json:"systemValidated"`
	APIVersion          int    `json:"apiVersion"`
	Visible             bool   `json:"visible"`
}

// Confirmation identifies a story write that reached Commitment.
type Confirmation struct {
	Signature  string               `json:"signature"`
	Commitment solanarpc.Commitment `json:"commitment"`
}

type WriterMetadataResult struct {
	Signature string         `json:"signature"`
	Metadata  WriterMetadata `json:"metadata"`
}

type AppendOptions struct {
	Commitment solanarpc.Commitment
}

type initializeRequest struct {
	Authority string `json:"authority"`
}

type appendItemRequest struct {
	WriterKey  string               `json:"writerKey"`
	Item       Item                 `json:"item"`
	ItemHash   string               `json:"itemHash"`
	Commitment solanarpc.Commitment `json:"commitment"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// APIError is a non-2xx answer of the story write API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("story api status %d: %s", e.Status, e.Message)
}
