package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"tableflip.dev/satchel/pkg/kv"
)

// Client talks GraphQL over HTTP to the materials service. It implements
// both FolderService and DocumentService.
type Client struct {
	URL        string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient builds a Client from config.
func NewClient(cfg kv.Config) (*Client, error) {
	if cfg == nil {
		var err error
		cfg, err = kv.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if cfg.APIURL() == "" {
		return nil, fmt.Errorf("remote: api_url is not configured")
	}
	return &Client{URL: cfg.APIURL(), APIKey: cfg.APIKey()}, nil
}

var (
	_ FolderService   = (*Client)(nil)
	_ DocumentService = (*Client)(nil)
)

const foldersByIDsQuery = `query GetFolderContents($ids: [String]!) {
  foldersById(ids: $ids) {
    edges {
      node {
        id
        name
        documents {
          edges {
            node {
              id
              textContent
              createdAt
              description
            }
          }
        }
        subfolders(after: null, first: 10) {
          edges {
            node {
              id
              name
              documentCount
            }
          }
        }
      }
    }
  }
}`

const createFolderMutation = `mutation CreateFolder($input: CreateFolderInputType!) {
  createFolder(input: $input) {
    id
    name
  }
}`

const renameFolderMutation = `mutation UpdateSubfolder($id: String!, $name: String!) {
  updateFolder(input: { id: $id, name: $name }) {
    success
    folder {
      id
      name
    }
  }
}`

const deleteFolderMutation = `mutation RemoveSubfolder($id: String!) {
  removeFolder(id: $id) {
    success
  }
}`

const createDocumentMutation = `mutation CreateDocument($folderId: String!, $textContent: String!, $description: String) {
  createDocumentText(folderId: $folderId, textContent: $textContent, description: $description) {
    id
    textContent
    description
    createdAt
  }
}`

const updateDocumentMutation = `mutation UpdateDocument($id: String!, $textContent: String!) {
  updateTextContentOnDocument(id: $id, textContent: $textContent) {
    id
    textContent
    description
  }
}`

const deleteDocumentMutation = `mutation DeleteDocument($input: RemoveInputType!) {
  removeDocument(input: $input) {
    success
  }
}`

// Wire envelopes. The service exposes relay-style connections, so every
// list comes wrapped in edges/node.

type edge[T any] struct {
	Node T `json:"node"`
}

type connection[T any] struct {
	Edges []edge[T] `json:"edges"`
}

type wireFolderRef struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DocumentCount int    `json:"documentCount"`
}

type wireDocument struct {
	ID          string `json:"id"`
	TextContent string `json:"textContent"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}

type wireFolder struct {
	ID         string                    `json:"id"`
	Name       string                    `json:"name"`
	Documents  connection[wireDocument]  `json:"documents"`
	Subfolders connection[wireFolderRef] `json:"subfolders"`
}

type successPayload struct {
	Success bool `json:"success"`
}

func (c *Client) FoldersByIDs(ctx context.Context, ids []string) ([]Folder, error) {
	var resp struct {
		FoldersByID connection[wireFolder] `json:"foldersById"`
	}
	err := c.do(ctx, "foldersById", foldersByIDsQuery, map[string]interface{}{"ids": ids}, &resp)
	if err != nil {
		return nil, err
	}

	folders := make([]Folder, 0, len(resp.FoldersByID.Edges))
	for _, e := range resp.FoldersByID.Edges {
		folders = append(folders, flattenFolder(e.Node))
	}
	return folders, nil
}

func (c *Client) CreateFolder(ctx context.Context, name, parentID string) (FolderRef, error) {
	var resp struct {
		CreateFolder wireFolderRef `json:"createFolder"`
	}
	input := map[string]interface{}{"name": name, "parentId": parentID}
	err := c.do(ctx, "createFolder", createFolderMutation, map[string]interface{}{"input": input}, &resp)
	if err != nil {
		return FolderRef{}, err
	}
	return FolderRef{ID: resp.CreateFolder.ID, Name: resp.CreateFolder.Name}, nil
}

func (c *Client) RenameFolder(ctx context.Context, id, name string) error {
	var resp struct {
		UpdateFolder successPayload `json:"updateFolder"`
	}
	vars := map[string]interface{}{"id": id, "name": name}
	if err := c.do(ctx, "updateFolder", renameFolderMutation, vars, &resp); err != nil {
		return err
	}
	if !resp.UpdateFolder.Success {
		return &Error{Op: "updateFolder", Messages: []string{"service reported failure"}}
	}
	return nil
}

func (c *Client) DeleteFolder(ctx context.Context, id string) error {
	var resp struct {
		RemoveFolder successPayload `json:"removeFolder"`
	}
	vars := map[string]interface{}{"id": id}
	if err := c.do(ctx, "removeFolder", deleteFolderMutation, vars, &resp); err != nil {
		return err
	}
	if !resp.RemoveFolder.Success {
		return &Error{Op: "removeFolder", Messages: []string{"service reported failure"}}
	}
	return nil
}

func (c *Client) CreateDocument(ctx context.Context, folderID, textContent string, description *string) (Document, error) {
	var resp struct {
		CreateDocumentText wireDocument `json:"createDocumentText"`
	}
	vars := map[string]interface{}{
		"folderId":    folderID,
		"textContent": textContent,
	}
	if description != nil {
		vars["description"] = *description
	}
	err := c.do(ctx, "createDocumentText", createDocumentMutation, vars, &resp)
	if err != nil {
		return Document{}, err
	}
	return Document(resp.CreateDocumentText), nil
}

func (c *Client) UpdateDocument(ctx context.Context, id, textContent string) (Document, error) {
	var resp struct {
		UpdateTextContentOnDocument wireDocument `json:"updateTextContentOnDocument"`
	}
	vars := map[string]interface{}{"id": id, "textContent": textContent}
	err := c.do(ctx, "updateTextContentOnDocument", updateDocumentMutation, vars, &resp)
	if err != nil {
		return Document{}, err
	}
	return Document(resp.UpdateTextContentOnDocument), nil
}

func (c *Client) DeleteDocument(ctx context.Context, id string) error {
	var resp struct {
		RemoveDocument successPayload `json:"removeDocument"`
	}
	vars := map[string]interface{}{"input": map[string]interface{}{"id": id}}
	if err := c.do(ctx, "removeDocument", deleteDocumentMutation, vars, &resp); err != nil {
		return err
	}
	if !resp.RemoveDocument.Success {
		return &Error{Op: "removeDocument", Messages: []string{"service reported failure"}}
	}
	return nil
}

func flattenFolder(w wireFolder) Folder {
	f := Folder{ID: w.ID, Name: w.Name}
	for _, e := range w.Subfolders.Edges {
		f.Subfolders = append(f.Subfolders, FolderRef(e.Node))
	}
	for _, e := range w.Documents.Edges {
		f.Documents = append(f.Documents, Document(e.Node))
	}
	f.DocumentCount = len(f.Documents)
	return f
}

type gqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

func (c *Client) do(ctx context.Context, op, query string, variables map[string]interface{}, target interface{}) error {
	body, err := json.Marshal(gqlRequest{Query: query, Variables: variables})
	if err != nil {
		return &Error{Op: op, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "api-key "+c.APIKey)
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &Error{Op: op, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var envelope gqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return &Error{Op: op, Err: err}
	}
	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			messages = append(messages, e.Message)
		}
		return &Error{Op: op, Messages: messages}
	}
	if target != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, target); err != nil {
			return &Error{Op: op, Err: err}
		}
	}
	return nil
}
